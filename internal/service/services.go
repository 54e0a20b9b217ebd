// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/static-eshop/internal/config"
	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/models"
)

type Services struct {
	SiteService    SiteService
	AppInfoService AppInfoService
}

func NewServices(source SiteSource, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SiteService:    NewSiteService(source, logger),
		AppInfoService: appInfo,
	}, nil
}

// StaticSource is a [SiteSource] that always returns the same value.
type StaticSource models.SiteConfig

func (s StaticSource) Get() models.SiteConfig {
	return models.SiteConfig(s)
}
