package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/provide-io/spellforge/go/spellforge/internal/config"
	"github.com/provide-io/spellforge/go/spellforge/pkg/logging"
)

const version = "0.1.0"

var (
	configPath  string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command

	cfg       config.Config
	logger    hclog.Logger
	logCloser func() error
)

func getBuildTimestamp() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion() {
	fmt.Printf("spellforge %s\n", version)
	fmt.Printf("Built: %s\n", getBuildTimestamp())
}

func init() {
	rootCmd = &cobra.Command{
		Use:               "spellforge",
		Short:             "Inspect and author kernel magic records",
		Long:              `Decode, verify and re-encode the spell section of a kernel file and build per-language text resources.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion()
				return nil
			}
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to spellforge.yaml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	rootCmd.AddCommand(newDumpCmd(), newVerifyCmd(), newExportCmd(), newTextCmd())
}

// setup loads the config and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	level, source := logging.ResolveLevel(logLevel, cfg.LogLevel)
	out, closeLog := logging.Output()
	logCloser = closeLog
	logger = logging.NewLogger("spellforge", level, out)
	logger.Debug("🔧 Log level resolved", "level", level, "source", source)
	if configPath != "" {
		logger.Debug("📋 Loaded config", "path", configPath)
	}
	return nil
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion()
		os.Exit(0)
	}

	err := rootCmd.Execute()
	if err != nil {
		if logger != nil {
			logger.Error("❌ Command failed", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if logCloser != nil {
		_ = logCloser()
	}
	if err != nil {
		os.Exit(1)
	}
}

// kernelPath picks the --kernel flag over the config file's kernel entry.
func kernelPath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.Kernel != "" {
		return cfg.Kernel, nil
	}
	return "", fmt.Errorf("no kernel file given: use --kernel or set kernel in the config")
}

func readKernel(flag string) ([]byte, string, error) {
	path, err := kernelPath(flag)
	if err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read kernel: %w", err)
	}
	logger.Debug("📂 Read kernel", "path", path, "size", len(data))
	return data, path, nil
}
