// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/static-eshop/internal/config"
)

func (c *cli) newExportCmd() *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded site configuration to a file atomically",
		Long: `export writes the loaded configuration to --out. The format defaults to
the one implied by the file extension.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				f   config.Format
				err error
			)
			if format != "" {
				f, err = config.ParseFormat(format)
			} else {
				f, err = config.FormatFromPath(out)
			}
			if err != nil {
				return err
			}

			site, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			if err = config.WriteFile(out, site, f); err != nil {
				return err
			}

			c.logger.Info().Str("path", out).Str("format", string(f)).Msg("site configuration exported")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "destination file")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (json, yaml); defaults to the --out extension")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
