package resources

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/adler32"
	"strings"
)

// ChecksumAlgorithm names a supported checksum.
//
// Checksums are written as "algorithm:hexvalue", e.g. "sha256:c0ffee..." or
// "adler32:babe1337".
type ChecksumAlgorithm int

const (
	ChecksumSHA256 ChecksumAlgorithm = iota
	ChecksumAdler32
)

func (c ChecksumAlgorithm) String() string {
	switch c {
	case ChecksumSHA256:
		return "sha256"
	case ChecksumAdler32:
		return "adler32"
	default:
		return "unknown"
	}
}

// ParseChecksum splits a prefixed checksum string.
func ParseChecksum(checksumStr string) (ChecksumAlgorithm, string, error) {
	prefix, value, ok := strings.Cut(checksumStr, ":")
	if !ok || value == "" {
		return ChecksumSHA256, "", fmt.Errorf("invalid checksum format: %s", checksumStr)
	}

	switch prefix {
	case "sha256":
		return ChecksumSHA256, value, nil
	case "adler32":
		return ChecksumAdler32, value, nil
	default:
		return ChecksumSHA256, "", fmt.Errorf("unknown checksum algorithm: %s", prefix)
	}
}

// CalculateChecksum returns the prefixed checksum of data.
func CalculateChecksum(data []byte, algorithm ChecksumAlgorithm) string {
	var h hash.Hash
	switch algorithm {
	case ChecksumAdler32:
		h = adler32.New()
	default:
		algorithm = ChecksumSHA256
		h = sha256.New()
	}

	h.Write(data)
	return algorithm.String() + ":" + hex.EncodeToString(h.Sum(nil))
}

// VerifyChecksum reports whether data matches checksumStr.
func VerifyChecksum(data []byte, checksumStr string) (bool, error) {
	algo, expected, err := ParseChecksum(checksumStr)
	if err != nil {
		return false, err
	}
	return CalculateChecksum(data, algo) == algo.String()+":"+strings.ToLower(expected), nil
}
