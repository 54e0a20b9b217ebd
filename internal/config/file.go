// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/static-eshop/models"
)

// Format is a serialisation format of a site configuration document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied format name to a [Format].
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// LoadFile reads a site document from path. Unknown keys are rejected.
func LoadFile(path string) (models.SiteDocument, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return models.SiteDocument{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return models.SiteDocument{}, fmt.Errorf("error reading a site config file: %w", err)
	}
	defer f.Close()

	doc, err := DecodeSite(f, format)
	if err != nil {
		return models.SiteDocument{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// DecodeSite decodes exactly one site document from r. Unknown keys and any
// input after the document are rejected.
func DecodeSite(r io.Reader, format Format) (models.SiteDocument, error) {
	var doc models.SiteDocument

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return models.SiteDocument{}, fmt.Errorf("error decoding json site config: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return models.SiteDocument{}, fmt.Errorf("error decoding json site config: %w", ErrTrailingData)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return models.SiteDocument{}, nil
			}
			return models.SiteDocument{}, fmt.Errorf("error decoding yaml site config: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return models.SiteDocument{}, fmt.Errorf("error decoding yaml site config: %w", ErrTrailingData)
		}
	default:
		return models.SiteDocument{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return doc, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg models.SiteConfig, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding json site config: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("error encoding yaml site config: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("error encoding yaml site config: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return nil
}

// WriteFile atomically replaces path with cfg encoded in format. Readers see
// either the previous file or the complete new one.
func WriteFile(path string, cfg models.SiteConfig, format Format) (err error) {
	var buf bytes.Buffer
	if err := Encode(&buf, cfg, format); err != nil {
		return err
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending site config file: %w", err)
	}
	defer func() {
		if cleanupErr := pendingFile.Cleanup(); cleanupErr != nil && err == nil {
			err = fmt.Errorf("cleanup pending site config file: %w", cleanupErr)
		}
	}()

	if _, err := pendingFile.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write site config: %w", err)
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace site config file: %w", err)
	}

	return nil
}
