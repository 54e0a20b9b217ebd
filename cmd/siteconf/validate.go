// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/static-eshop/internal/app"
)

func (c *cli) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load and validate the site configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			site, err := c.load(cmd.Context())
			if err != nil {
				c.logger.Error().Err(err).Msg(app.MsgSiteInvalid)
				return fmt.Errorf("%s: %w", app.MsgSiteInvalid, err)
			}

			c.logger.Info().
				Str("site_name", site.SiteName()).
				Strs("content_types", site.ContentTypes()).
				Int("plugins", len(site.Plugins())).
				Msg(app.MsgSiteValid)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), app.MsgSiteValid)
			return err
		},
	}
}
