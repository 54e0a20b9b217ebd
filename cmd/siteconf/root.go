// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/static-eshop/internal/adapter"
	"github.com/MKhiriev/static-eshop/internal/config"
	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/models"
)

// cli holds state shared by the subcommands of one invocation.
type cli struct {
	build models.AppBuildInfo

	// flags receives parsed flag values; cfg is the merged result.
	flags *config.StructuredConfig
	cfg   *config.StructuredConfig

	logger *logger.Logger
}

func newRootCmd(build models.AppBuildInfo) *cobra.Command {
	c := &cli{build: build}

	root := &cobra.Command{
		Use:   "siteconf",
		Short: "Site configuration tool for the Static E-Shop",
		Long: `siteconf loads the site configuration of the Static E-Shop from the
built-in defaults, a JSON or YAML file, a remote document, environment
variables and flags, validates it, and prints, exports or serves it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.init(cmd)
		},
	}

	c.flags = config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		c.newValidateCmd(),
		c.newShowCmd(),
		c.newExportCmd(),
		c.newRouteCmd(),
		c.newServeCmd(),
		c.newVersionCmd(),
	)

	return root
}

func (c *cli) init(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(c.flags)
	if err != nil {
		return err
	}
	if cfg.App.Version == "" {
		cfg.App.Version = c.build.BuildVersion()
	}

	role := "siteconf-" + cmd.Name()
	if cmd.Name() == "serve" {
		c.logger = logger.NewLogger(role)
	} else {
		c.logger = logger.NewConsoleLogger(role)
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return err
	}

	c.logger.Debug().Any("config", cfg).Msg("received configs")
	c.cfg = cfg

	return nil
}

func (c *cli) loader() *config.Loader {
	remote := adapter.NewHTTPSiteSource(c.cfg.Adapter, c.logger)
	return config.NewLoader(c.cfg.Site, remote, c.logger)
}

func (c *cli) load(ctx context.Context) (models.SiteConfig, error) {
	return c.loader().Load(ctx)
}
