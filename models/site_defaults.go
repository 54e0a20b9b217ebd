// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Plugin identifiers registered by the built-in configuration.
const (
	PluginTailwindCSS     = "gridsome-plugin-tailwindcss"
	PluginCommerceJSource = "gridsome-source-commercejs"

	// OptionPublicKey is the commerce source option carrying the public API key.
	OptionPublicKey = "publicKey"

	// ContentTypeProducts is the content type produced by the commerce source.
	ContentTypeProducts = "CommercejsProducts"
)

const (
	defaultSiteName          = "Static E-Shop"
	defaultProductsTemplate  = "/products/:id"
	defaultCommercePublicKey = "pk_184625ed86f36703d7d233bcf6d519a4f9398f20048ec"
)

// DefaultDocument returns the built-in site configuration in its mutable form.
func DefaultDocument() SiteDocument {
	return SiteDocument{
		SiteName: defaultSiteName,
		Templates: map[string]string{
			ContentTypeProducts: defaultProductsTemplate,
		},
		Plugins: []PluginDocument{
			{Use: PluginTailwindCSS},
			{
				Use: PluginCommerceJSource,
				Options: map[string]any{
					OptionPublicKey: defaultCommercePublicKey,
				},
			},
		},
	}
}

// Default returns the built-in site configuration.
func Default() SiteConfig {
	return NewSiteConfig(DefaultDocument())
}
