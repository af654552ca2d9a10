package main

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

func newDumpCmd() *cobra.Command {
	var (
		kernel string
		format string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print every spell record with names resolved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, path, err := readKernel(kernel)
			if err != nil {
				return err
			}

			opts := []magic.Option{magic.WithWorkers(cfg.Workers)}
			if strict {
				opts = append(opts, magic.WithStrictEnums())
			}
			records, warnings, err := magic.ParseAll(data, cfg.SectionOffset, cfg.RecordStride, cfg.RecordCount, opts...)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", path, err)
			}
			for _, w := range warnings {
				logger.Warn("⚠️ Unknown enum code", "offset", fmt.Sprintf("0x%04X", w.Offset), "field", w.Field, "code", w.Code)
			}
			logger.Info("📖 Parsed spell section", "records", len(records), "warnings", len(warnings))

			views := make([]spellView, len(records))
			for i, r := range records {
				views[i] = newSpellView(i, cfg.SectionOffset+i*cfg.RecordStride, r, data, cfg.TextBase)
			}
			return writeViews(cmd.OutOrStdout(), format, views)
		},
	}

	cmd.Flags().StringVarP(&kernel, "kernel", "k", "", "Path to the kernel file")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml, json)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on unknown attack type or element codes")
	return cmd
}

func writeViews(w io.Writer, format string, views []spellView) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		out, err := sonic.ConfigStd.MarshalIndent(views, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
}
