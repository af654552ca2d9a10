package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/provide-io/spellforge/go/spellforge/internal/config"
	"github.com/provide-io/spellforge/go/spellforge/internal/resources"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/layout"
	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/magic"
)

type exportFlags struct {
	translations string
	kernel       string
	outputDir    string
	basename     string
	primary      string
}

func newExportCmd() *cobra.Command {
	var f exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Lay out translated spell text and write the resource files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(f)
		},
	}

	cmd.Flags().StringVarP(&f.translations, "translations", "t", "", "Path to the translations YAML (required)")
	cmd.Flags().StringVarP(&f.kernel, "kernel", "k", "", "Kernel file whose records receive the planned offsets")
	cmd.Flags().StringVarP(&f.outputDir, "output-dir", "o", "", "Output directory (overrides output_dir)")
	cmd.Flags().StringVar(&f.basename, "basename", "", "Resource file base name (overrides basename)")
	cmd.Flags().StringVar(&f.primary, "primary", "", "Primary language (overrides the translations file and config)")
	if err := cmd.MarkFlagRequired("translations"); err != nil {
		panic(err)
	}
	return cmd
}

func runExport(f exportFlags) error {
	tr, err := config.LoadTranslations(f.translations)
	if err != nil {
		return err
	}

	primary := firstNonEmpty(f.primary, tr.Primary, cfg.PrimaryLanguage)
	basename := firstNonEmpty(f.basename, cfg.Basename)
	outDir := firstNonEmpty(f.outputDir, cfg.OutputDir)

	plan, err := layout.Build(tr.Spells, primary, layout.WithWorkers(cfg.Workers))
	if err != nil {
		return err
	}
	logger.Info("📐 Planned text layout", "spells", len(plan.Spells), "languages", plan.Languages, "size", plan.TotalSize)
	for _, s := range plan.Spells {
		if len(s.Fallbacks) > 0 {
			logger.Warn("⚠️ Missing translations use primary text", "spell", s.Index, "languages", s.Fallbacks)
		}
	}

	w, err := resources.NewWriter(outDir, cfg.Mode(), logger.Named("resources"))
	if err != nil {
		return err
	}

	indices := make([]int, len(plan.Spells))
	for i, s := range plan.Spells {
		indices[i] = s.Index
	}
	manifest := resources.NewManifest(basename, primary, plan.Languages, indices)

	for _, lang := range plan.Languages {
		data, err := plan.LanguageFile(lang)
		if err != nil {
			return err
		}
		name := resources.LanguageName(basename, lang)
		if _, err := w.Write(name, data); err != nil {
			return err
		}
		manifest.Add(name, lang, data)
	}

	if f.kernel != "" || cfg.Kernel != "" {
		section, err := exportSection(f.kernel, plan)
		if err != nil {
			return err
		}
		name := resources.BinaryName(basename)
		if _, err := w.Write(name, section); err != nil {
			return err
		}
		manifest.Add(name, "", section)
	}

	path, err := w.WriteManifest(manifest)
	if err != nil {
		return err
	}
	logger.Info("✅ Export complete", "dir", w.Dir(), "files", len(manifest.Files), "manifest", path)
	return nil
}

// exportSection applies the planned text offsets to the kernel's records and
// returns the re-encoded section bytes.
func exportSection(kernelFlag string, plan *layout.Plan) ([]byte, error) {
	data, path, err := readKernel(kernelFlag)
	if err != nil {
		return nil, err
	}

	opts := magic.WithWorkers(cfg.Workers)
	records, warnings, err := magic.ParseAll(data, cfg.SectionOffset, cfg.RecordStride, cfg.RecordCount, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(warnings) > 0 {
		logger.Warn("⚠️ Unknown enum codes kept as-is", "count", len(warnings))
	}

	byIndex := make(map[int]*magic.Record, len(records))
	for i, r := range records {
		byIndex[i] = r
	}
	for _, s := range plan.Spells {
		if s.Index < 0 || s.Index >= len(records) {
			return nil, fmt.Errorf("spell %d is outside the %d records of %s", s.Index, len(records), path)
		}
	}
	plan.Apply(byIndex)

	out, err := magic.SerializeAll(records, data, cfg.SectionOffset, cfg.RecordStride, opts)
	if err != nil {
		return nil, err
	}
	end := cfg.SectionOffset
	if len(records) > 0 {
		end += (len(records)-1)*cfg.RecordStride + magic.RecordSize
	}
	return out[cfg.SectionOffset:end], nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
