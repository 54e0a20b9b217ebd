// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command siteconf loads, validates, prints, exports and serves the site
// configuration of the static e-shop.
package main

import (
	"os"

	"github.com/MKhiriev/static-eshop/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(buildInfo()).Execute(); err != nil {
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
