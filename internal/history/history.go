// Package history persists the client's durable entities as JSON values in a
// store.KV. Loads never fail: a missing or unreadable value yields the default.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"director/server/internal/model"
	"director/server/internal/store"
)

const (
	HistoryKey      = "directorAI_history"
	ImageHistoryKey = "directorAI_imageHistory"
	SettingsKey     = "directorAI_settings"
	ComposerKey     = "directorAI_composer"
)

type Store struct {
	kv store.KV
}

func New(kv store.KV) *Store {
	return &Store{kv: kv}
}

// Prepend puts item first and truncates the list to limit entries.
func Prepend[T any](list []T, item T, limit int) []T {
	out := make([]T, 0, min(len(list)+1, limit))
	out = append(out, item)
	for _, v := range list {
		if len(out) >= limit {
			break
		}
		out = append(out, v)
	}
	return out
}

func (s *Store) LoadHistory(ctx context.Context) []model.HistoryEntry {
	var entries []model.HistoryEntry
	if !s.load(ctx, HistoryKey, &entries) {
		return []model.HistoryEntry{}
	}
	if len(entries) > model.MaxHistoryEntries {
		entries = entries[:model.MaxHistoryEntries]
	}
	return entries
}

func (s *Store) SaveHistory(ctx context.Context, entries []model.HistoryEntry) error {
	return s.save(ctx, HistoryKey, capped(entries, model.MaxHistoryEntries))
}

func (s *Store) LoadImageHistory(ctx context.Context) []model.ImageAnalysisEntry {
	var entries []model.ImageAnalysisEntry
	if !s.load(ctx, ImageHistoryKey, &entries) {
		return []model.ImageAnalysisEntry{}
	}
	if len(entries) > model.MaxImageHistoryEntries {
		entries = entries[:model.MaxImageHistoryEntries]
	}
	return entries
}

func (s *Store) SaveImageHistory(ctx context.Context, entries []model.ImageAnalysisEntry) error {
	return s.save(ctx, ImageHistoryKey, capped(entries, model.MaxImageHistoryEntries))
}

// LoadSettings overlays the stored settings on the defaults. An empty default
// model falls back to the default video model.
func (s *Store) LoadSettings(ctx context.Context) model.AppSettings {
	settings := model.DefaultSettings()
	if !s.load(ctx, SettingsKey, &settings) {
		return model.DefaultSettings()
	}
	if settings.DefaultModel == "" {
		settings.DefaultModel = model.DefaultVideoModel
	}
	return settings
}

func (s *Store) SaveSettings(ctx context.Context, settings model.AppSettings) error {
	return s.save(ctx, SettingsKey, settings)
}

// LoadComposer returns the last saved composer state, if any.
func (s *Store) LoadComposer(ctx context.Context) (model.ComposerState, bool) {
	var state model.ComposerState
	if !s.load(ctx, ComposerKey, &state) {
		return model.ComposerState{}, false
	}
	return state, true
}

func (s *Store) SaveComposer(ctx context.Context, state model.ComposerState) error {
	return s.save(ctx, ComposerKey, state)
}

func capped[T any](list []T, limit int) []T {
	if list == nil {
		return []T{}
	}
	if len(list) > limit {
		return slices.Clone(list[:limit])
	}
	return list
}

func (s *Store) load(ctx context.Context, key string, dst any) bool {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Warn("history_load_failed", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("history_value_malformed", "key", key, "error", err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
