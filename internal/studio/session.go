// Package studio is the client session: the composer, the latest outputs,
// the histories and settings, and the actions that change them.
package studio

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"sync"
	"time"

	"director/server/internal/composer"
	"director/server/internal/history"
	"director/server/internal/i18n"
	"director/server/internal/model"
	"director/server/internal/notify"
	"director/server/internal/store"
)

var (
	ErrValidation    = errors.New("validation failed")
	ErrEntryNotFound = errors.New("history entry not found")
	ErrNoAnalysis    = errors.New("no analysis result")
	ErrNoPrompt      = errors.New("no prompt in response")
)

// API is the backend as seen by the session.
type API interface {
	Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error)
	AnalyzeImage(ctx context.Context, req model.AnalyzeImageRequest) (model.AnalyzeImageResponse, error)
	GenerateImage(ctx context.Context, req model.GenerateImageRequest) (model.GenerateImageResponse, error)
}

type Options struct {
	API      API
	KV       store.KV
	Lang     *i18n.Context
	Notifier *notify.Hub
	Logger   *slog.Logger
	Now      func() time.Time
}

// Display holds the latest outputs shown to the user.
type Display struct {
	Prompt        string
	Analysis      string
	ImageAnalysis string
	ImagePrompt   string
	ImageURL      *string
}

// Session state is guarded by mu. No lock is held while a backend call is in
// flight, so overlapping dispatches race and the last one to finish wins the
// display fields.
type Session struct {
	api      API
	history  *history.Store
	lang     *i18n.Context
	notifier *notify.Hub
	log      *slog.Logger
	now      func() time.Time

	mu           sync.Mutex
	composer     model.ComposerState
	imageOpts    composer.ImageOptions
	settings     model.AppSettings
	entries      []model.HistoryEntry
	imageEntries []model.ImageAnalysisEntry
	display      Display
}

// New loads the durable state. The composer starts from the saved composer
// state when there is one, else from defaults with the settings' default model.
func New(ctx context.Context, opts Options) *Session {
	s := &Session{
		api:      opts.API,
		history:  history.New(opts.KV),
		lang:     opts.Lang,
		notifier: opts.Notifier,
		log:      opts.Logger,
		now:      opts.Now,
	}
	if s.lang == nil {
		s.lang = i18n.NewContext(ctx, opts.KV, i18n.SystemLocale())
	}
	if s.notifier == nil {
		s.notifier = notify.NewHub()
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.entries = s.history.LoadHistory(ctx)
	s.imageEntries = s.history.LoadImageHistory(ctx)
	s.settings = s.history.LoadSettings(ctx)
	s.imageOpts = composer.DefaultImageOptions()

	s.composer = composer.DefaultState()
	if _, ok := model.FindVideoModel(s.settings.DefaultModel); ok {
		s.composer.Model = s.settings.DefaultModel
	}
	if saved, ok := s.history.LoadComposer(ctx); ok {
		s.composer = sanitize(saved)
	}
	return s
}

// sanitize repairs a composer state read from storage.
func sanitize(st model.ComposerState) model.ComposerState {
	entry := model.HistoryEntry{UserInput: st.UserInput, Model: model.VideoModelName(st.Model), Options: model.HistoryOptions{
		Styles: st.Styles, Moods: st.Moods, Cameras: st.Cameras, Lighting: st.Lighting,
		Duration: st.Duration, Format: st.Format, Resolution: st.Resolution, FPS: st.FPS,
		MovementIntensity: st.MovementIntensity, DepthOfField: st.DepthOfField,
		Multiplan: st.MultiplanEnabled, Shots: st.Shots,
		AudioDescription: st.AudioDescription, AdditionalContext: st.AdditionalContext,
		ColorPalette: st.ColorPalette, StartFrameDescription: st.StartFrameDescription,
		EndFrameDescription: st.EndFrameDescription,
	}}
	return composer.ApplySnapshot(composer.DefaultState(), entry)
}

func (s *Session) Notifier() *notify.Hub { return s.notifier }

func (s *Session) Lang() *i18n.Context { return s.lang }

func (s *Session) Composer() model.ComposerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.composer)
}

// UpdateComposer applies fn to a copy of the composer and keeps the result.
func (s *Session) UpdateComposer(fn func(*model.ComposerState)) model.ComposerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := cloneState(s.composer)
	fn(&next)
	if len(next.Shots) == 0 {
		next.Shots = composer.AddShot(nil, next.Duration)
	}
	s.composer = next
	return cloneState(next)
}

// SaveComposer persists the composer so a later session starts from it.
func (s *Session) SaveComposer(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.SaveComposer(ctx, s.composer)
}

func (s *Session) ImageOptions() composer.ImageOptions {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.imageOpts
}

func (s *Session) SetImageOptions(opts composer.ImageOptions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imageOpts = opts
}

func (s *Session) Display() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.display
	if d.ImageURL != nil {
		url := *d.ImageURL
		d.ImageURL = &url
	}
	return d
}

func (s *Session) History() []model.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

func (s *Session) ImageHistory() []model.ImageAnalysisEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.imageEntries)
}

func (s *Session) Settings() model.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func cloneState(st model.ComposerState) model.ComposerState {
	st.Styles = slices.Clone(st.Styles)
	st.Moods = slices.Clone(st.Moods)
	st.Cameras = slices.Clone(st.Cameras)
	st.Lighting = slices.Clone(st.Lighting)
	st.Shots = slices.Clone(st.Shots)
	st.ColorPalette = slices.Clone(st.ColorPalette)
	return st
}

func (s *Session) fail(titleKey, descKey string) {
	s.notifier.Error(s.lang.T(titleKey), s.lang.T(descKey))
}
