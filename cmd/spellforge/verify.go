package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provide-io/spellforge/go/spellforge/pkg"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

func newVerifyCmd() *cobra.Command {
	var kernel string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that the spell section survives a decode/encode round trip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, path, err := readKernel(kernel)
			if err != nil {
				return err
			}

			report, err := pkg.VerifySectionAt(data, cfg.SectionOffset, cfg.RecordStride, cfg.RecordCount, magic.WithWorkers(cfg.Workers))
			if err != nil {
				return fmt.Errorf("failed to verify %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:     %s\n", path)
			fmt.Fprintf(out, "records:  %d\n", report.Records)
			fmt.Fprintf(out, "warnings: %d\n", len(report.Warnings))
			fmt.Fprintf(out, "%s\n%s\n", report.SHA256, report.Adler32)

			if !report.Identical {
				logger.Error("❌ Round trip differs", "offset", fmt.Sprintf("0x%04X", report.FirstMismatch))
				return fmt.Errorf("round trip of %s differs at byte 0x%04X", path, report.FirstMismatch)
			}
			logger.Info("✅ Round trip identical", "records", report.Records)
			fmt.Fprintln(out, "round trip: identical")
			return nil
		},
	}

	cmd.Flags().StringVarP(&kernel, "kernel", "k", "", "Path to the kernel file")
	return cmd
}
