package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/provide-io/spellforge/go/spellforge/pkg/kernel/text"
)

func newTextCmd() *cobra.Command {
	var (
		kernel   string
		offset   string
		absolute bool
	)

	cmd := &cobra.Command{
		Use:   "text",
		Short: "Decipher one string from the kernel text blob",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			off, err := strconv.ParseInt(offset, 0, 32)
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", offset, err)
			}
			data, _, err := readKernel(kernel)
			if err != nil {
				return err
			}

			pos := int(off)
			if !absolute {
				pos += cfg.TextBase
			}
			logger.Debug("🔍 Reading string", "offset", fmt.Sprintf("0x%04X", pos))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text.ReadString(data, pos))
			return err
		},
	}

	cmd.Flags().StringVarP(&kernel, "kernel", "k", "", "Path to the kernel file")
	cmd.Flags().StringVarP(&offset, "offset", "o", "0", "String offset, relative to text_base unless --absolute (decimal or 0x hex)")
	cmd.Flags().BoolVar(&absolute, "absolute", false, "Treat --offset as a file offset")
	return cmd
}
