package studio

import (
	"context"
	"fmt"
	"slices"

	"director/server/internal/composer"
	"director/server/internal/export"
	"director/server/internal/i18n"
	"director/server/internal/model"
)

func (s *Session) FindHistoryEntry(id string) (model.HistoryEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.entries, func(e model.HistoryEntry) bool { return e.ID == id })
	if i < 0 {
		return model.HistoryEntry{}, false
	}
	return s.entries[i], true
}

func (s *Session) DeleteHistoryEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.entries), func(e model.HistoryEntry) bool { return e.ID == id })
	if len(next) == len(s.entries) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	s.entries = next
	err := s.history.SaveHistory(ctx, s.entries)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notifier.Success(s.lang.T("toastDeleted"), "")
	return nil
}

func (s *Session) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	s.entries = []model.HistoryEntry{}
	err := s.history.SaveHistory(ctx, s.entries)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.notifier.Success(s.lang.T("toastHistoryCleared"), "")
	return nil
}

// LoadFromHistory restores an entry into the composer and the display fields.
func (s *Session) LoadFromHistory(id string) (model.ComposerState, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.entries, func(e model.HistoryEntry) bool { return e.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return model.ComposerState{}, fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	entry := s.entries[i]
	s.composer = composer.ApplySnapshot(s.composer, entry)
	s.display.Prompt = entry.GeneratedPrompt
	s.display.Analysis = entry.Analysis
	state := cloneState(s.composer)
	s.mu.Unlock()

	s.notifier.Success(s.lang.T("toastLoaded"), s.lang.T("toastLoadedDescription"))
	return state, nil
}

// UpdateSettings persists settings as a whole. An unknown default model is
// replaced by the default video model.
func (s *Session) UpdateSettings(ctx context.Context, settings model.AppSettings) (model.AppSettings, error) {
	if _, ok := model.FindVideoModel(settings.DefaultModel); !ok {
		settings.DefaultModel = model.DefaultVideoModel
	}
	s.mu.Lock()
	err := s.history.SaveSettings(ctx, settings)
	if err == nil {
		s.settings = settings
	}
	s.mu.Unlock()
	if err != nil {
		return model.AppSettings{}, err
	}
	s.notifier.Success(s.lang.T("toastSettingsSaved"), "")
	return settings, nil
}

func (s *Session) SetLanguage(ctx context.Context, lang i18n.Language) error {
	return s.lang.SetLanguage(ctx, lang)
}

// DownloadText is the text export of the current display fields.
func (s *Session) DownloadText() (name, content string) {
	d := s.Display()
	return export.FileName(s.now()), export.Text(d.Analysis, d.Prompt)
}

// ExportHTML renders a history entry as a standalone HTML page.
func (s *Session) ExportHTML(id string) (string, error) {
	entry, ok := s.FindHistoryEntry(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEntryNotFound, id)
	}
	return export.HTML(entry)
}
