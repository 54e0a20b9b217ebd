// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/static-eshop/internal/config"
)

func (c *cli) newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the loaded site configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := config.ParseFormat(format)
			if err != nil {
				return err
			}

			site, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			return config.Encode(cmd.OutOrStdout(), site, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(config.FormatJSON), "output format (json, yaml)")

	return cmd
}
