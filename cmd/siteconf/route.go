// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/static-eshop/internal/service"
)

var errInvalidParam = errors.New("route parameter must look like name=value")

func (c *cli) newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "route <contentType> [name=value...]",
		Short:   "Print the path of a content type node",
		Example: "  siteconf route CommercejsProducts id=prod_42",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(args[1:])
			if err != nil {
				return err
			}

			site, err := c.load(cmd.Context())
			if err != nil {
				return err
			}

			svc := service.NewSiteService(service.StaticSource(site), c.logger)
			resolved, err := svc.ResolveRoute(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), resolved.Path)
			return err
		},
	}
}

func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidParam, pair)
		}
		if _, dup := params[name]; dup {
			return nil, fmt.Errorf("%w: %q given twice", errInvalidParam, name)
		}
		params[name] = value
	}
	return params, nil
}
