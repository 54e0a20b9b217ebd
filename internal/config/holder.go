// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/MKhiriev/static-eshop/internal/logger"
	"github.com/MKhiriev/static-eshop/models"
)

const reloadDebounce = 500 * time.Millisecond

// SiteLoader produces a site configuration; [*Loader] implements it.
type SiteLoader interface {
	Load(ctx context.Context) (models.SiteConfig, error)
}

// Holder keeps the current site configuration for long-running commands.
// Each reload produces a new immutable value and swaps it in only when it
// loaded and validated successfully.
type Holder struct {
	mu      sync.RWMutex
	current models.SiteConfig

	loader   SiteLoader
	filePath string
	logger   *logger.Logger

	listenersMu sync.RWMutex
	listeners   []chan<- models.SiteConfig
}

// NewHolder creates a Holder around an already loaded configuration.
// filePath is the file watched by [Holder.Watch]; it may be empty.
func NewHolder(initial models.SiteConfig, loader SiteLoader, filePath string, logger *logger.Logger) *Holder {
	return &Holder{
		current:  initial,
		loader:   loader,
		filePath: filePath,
		logger:   logger,
	}
}

// Get returns the current configuration.
func (h *Holder) Get() models.SiteConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Reload loads the configuration again. On failure the previous value stays
// in place and the error is returned.
func (h *Holder) Reload(ctx context.Context) error {
	next, err := h.loader.Load(ctx)
	if err != nil {
		h.logger.Error().Err(err).Str("event", "config.reload_failed").Msg("site configuration reload failed")
		return fmt.Errorf("reload site config: %w", err)
	}

	h.mu.Lock()
	prev := h.current
	h.current = next
	h.mu.Unlock()

	changed := ChangedKeys(prev, next)
	h.logger.Info().
		Str("event", "config.reload_success").
		Strs("changed", changed).
		Msg("site configuration reloaded")

	if len(changed) > 0 {
		h.notify(next)
	}
	return nil
}

// Subscribe registers ch to receive every changed configuration. Sends never
// block: a full channel misses the update.
func (h *Holder) Subscribe(ch chan<- models.SiteConfig) {
	h.listenersMu.Lock()
	defer h.listenersMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notify(cfg models.SiteConfig) {
	h.listenersMu.RLock()
	defer h.listenersMu.RUnlock()

	for _, ch := range h.listeners {
		select {
		case ch <- cfg:
		default:
			h.logger.Warn().Str("event", "config.listener_skip").Msg("listener channel full, update skipped")
		}
	}
}

// Watch reloads the configuration whenever the site file changes, until ctx
// is done. Bursts of events are collapsed into one reload. Without a file
// Watch returns immediately.
func (h *Holder) Watch(ctx context.Context) error {
	if h.filePath == "" {
		h.logger.Info().Str("event", "config.watcher_disabled").Msg("no site file to watch")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	// editors replace files by rename, so the directory is watched
	dir := filepath.Dir(h.filePath)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	h.logger.Info().Str("event", "config.watcher_started").Str("path", h.filePath).Msg("watching site file")
	go h.watchLoop(ctx, watcher)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	target := filepath.Clean(h.filePath)
	var debounce *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			h.logger.Info().Str("event", "config.watcher_stopped").Msg("site file watcher stopped")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			h.logger.Debug().Str("event", "config.file_changed").Str("op", event.Op.String()).Msg("site file changed")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				h.reloadIfActive(ctx)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).Str("event", "config.watcher_error").Msg("site file watcher error")
		}
	}
}

// reloadIfActive reloads unless ctx ended while the debounce timer was pending.
func (h *Holder) reloadIfActive(ctx context.Context) {
	if ctx.Err() != nil {
		h.logger.Debug().Str("event", "config.reload_skipped").Msg("watcher stopped, pending reload skipped")
		return
	}
	_ = h.Reload(ctx)
}

// ChangedKeys lists the top-level keys whose values differ between a and b.
func ChangedKeys(a, b models.SiteConfig) []string {
	da, db := a.Document(), b.Document()

	var changed []string
	if da.SiteName != db.SiteName {
		changed = append(changed, "siteName")
	}
	if !cmp.Equal(da.Templates, db.Templates, cmpopts.EquateEmpty()) {
		changed = append(changed, "templates")
	}
	if !cmp.Equal(da.Plugins, db.Plugins, cmpopts.EquateEmpty()) {
		changed = append(changed, "plugins")
	}
	return changed
}
