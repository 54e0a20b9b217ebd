// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/static-eshop/internal/config"
	"github.com/MKhiriev/static-eshop/internal/handler"
	"github.com/MKhiriev/static-eshop/internal/server"
	"github.com/MKhiriev/static-eshop/internal/service"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only inspection API",
		Long: `serve loads the site configuration and exposes it over HTTP. With --watch
the site file is reloaded when it changes; an invalid edit keeps the
previous configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
			defer stop()

			return c.serve(ctx)
		},
	}

	config.BindServerFlags(cmd.Flags(), c.flags)

	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	loader := c.loader()

	site, err := loader.Load(ctx)
	if err != nil {
		c.logger.Error().Err(err).Msg("error loading site configuration")
		return err
	}

	holder := config.NewHolder(site, loader, loader.FilePath(), c.logger)
	if c.cfg.Site.Watch {
		if err = holder.Watch(ctx); err != nil {
			return err
		}
	}

	services, err := service.NewServices(holder, *c.cfg, c.logger)
	if err != nil {
		return err
	}

	handlers, err := handler.NewHandlers(services, c.cfg.Server, c.logger)
	if err != nil {
		return err
	}

	srv, err := server.NewServer(handlers, c.cfg.Server, c.logger)
	if err != nil {
		return err
	}

	return srv.RunContext(ctx)
}
