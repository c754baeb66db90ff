package studio

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"director/server/internal/apiclient"
	"director/server/internal/composer"
	"director/server/internal/history"
	"director/server/internal/i18n"
	"director/server/internal/model"
	"director/server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingKV counts writes to the wrapped store.
type countingKV struct {
	store.KV
	sets atomic.Int32
}

func (c *countingKV) Set(ctx context.Context, key, value string) error {
	c.sets.Add(1)
	return c.KV.Set(ctx, key, value)
}

type fakeAPI struct {
	generateCalls atomic.Int32
	analyzeCalls  atomic.Int32
	imageCalls    atomic.Int32

	generate func(req model.GenerateRequest) (model.GenerateResponse, error)
	analyze  func(req model.AnalyzeImageRequest) (model.AnalyzeImageResponse, error)
	image    func(req model.GenerateImageRequest) (model.GenerateImageResponse, error)
}

func (f *fakeAPI) Generate(_ context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	f.generateCalls.Add(1)
	if f.generate != nil {
		return f.generate(req)
	}
	return model.GenerateResponse{
		Success: true,
		Prompt:  "## Logical Reasoning & Analysis\nreasoning for " + req.UserInput + "\n## FINAL VIDEO GENERATION PROMPT\nprompt for " + req.UserInput,
		Model:   req.Model,
	}, nil
}

func (f *fakeAPI) AnalyzeImage(_ context.Context, req model.AnalyzeImageRequest) (model.AnalyzeImageResponse, error) {
	f.analyzeCalls.Add(1)
	if f.analyze != nil {
		return f.analyze(req)
	}
	return model.AnalyzeImageResponse{Success: true, Analysis: "analysis of " + req.MimeType}, nil
}

func (f *fakeAPI) GenerateImage(_ context.Context, req model.GenerateImageRequest) (model.GenerateImageResponse, error) {
	f.imageCalls.Add(1)
	if f.image != nil {
		return f.image(req)
	}
	url := "data:image/png;base64,AAAA"
	return model.GenerateImageResponse{Success: true, Prompt: "full " + req.UserInput, FinalPrompt: req.UserInput, ImageURL: &url}, nil
}

func newSession(t *testing.T, api API) (*Session, store.KV) {
	t.Helper()
	ctx := context.Background()
	kv := store.NewMemoryStore()
	s := New(ctx, Options{
		API:  api,
		KV:   kv,
		Lang: i18n.NewContext(ctx, kv, "en_US.UTF-8"),
		Now:  func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) },
	})
	return s, kv
}

func pngURI() string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("\x89PNG\r\n\x1a\n"))
}

func TestGenerateRequiresInput(t *testing.T) {
	api := &fakeAPI{}
	s, _ := newSession(t, api)
	_, ch, unsubscribe := s.Notifier().Subscribe(4)
	defer unsubscribe()

	_, err := s.Generate(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.generateCalls.Load())
	assert.Empty(t, s.History())

	n := <-ch
	assert.Equal(t, model.NotifyError, n.Level)
	assert.Equal(t, i18n.Lookup(i18n.English, "toastInputRequired"), n.Title)
}

func TestGenerateRecordsHistory(t *testing.T) {
	api := &fakeAPI{}
	s, kv := newSession(t, api)
	s.UpdateComposer(func(st *model.ComposerState) {
		st.UserInput = "a lighthouse at dusk"
		st.Styles = []string{"styleFilmNoir"}
	})

	res, err := s.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "prompt for a lighthouse at dusk", res.Prompt)
	assert.Equal(t, "reasoning for a lighthouse at dusk", res.Analysis)
	assert.False(t, res.Multiplan)

	d := s.Display()
	assert.Equal(t, res.Prompt, d.Prompt)
	assert.Equal(t, res.Analysis, d.Analysis)

	entries := s.History()
	require.Len(t, entries, 1)
	assert.Equal(t, "VEO", entries[0].Model)
	assert.Equal(t, []string{"styleFilmNoir"}, entries[0].Options.Styles)

	persisted := history.New(kv).LoadHistory(context.Background())
	require.Len(t, persisted, 1)
	assert.Equal(t, entries[0].ID, persisted[0].ID)
}

func TestGenerateHistoryIsCapped(t *testing.T) {
	s, _ := newSession(t, &fakeAPI{})
	for i := range model.MaxHistoryEntries + 5 {
		s.UpdateComposer(func(st *model.ComposerState) { st.UserInput = fmt.Sprintf("shot %d", i) })
		_, err := s.Generate(context.Background())
		require.NoError(t, err)
	}
	entries := s.History()
	require.Len(t, entries, model.MaxHistoryEntries)
	assert.Equal(t, fmt.Sprintf("shot %d", model.MaxHistoryEntries+4), entries[0].UserInput)
}

func TestGenerateFailureKeepsState(t *testing.T) {
	api := &fakeAPI{generate: func(model.GenerateRequest) (model.GenerateResponse, error) {
		return model.GenerateResponse{}, &apiclient.Error{Status: 500, Message: "Error generating prompt."}
	}}
	s, _ := newSession(t, api)
	_, ch, unsubscribe := s.Notifier().Subscribe(4)
	defer unsubscribe()
	s.UpdateComposer(func(st *model.ComposerState) { st.UserInput = "storm" })

	_, err := s.Generate(context.Background())
	require.Error(t, err)
	assert.Empty(t, s.History())
	assert.Empty(t, s.Display().Prompt)

	n := <-ch
	assert.Equal(t, model.NotifyError, n.Level)
	assert.Equal(t, "Error generating prompt.", n.Description)
}

func TestGenerateEmptyPromptIsFailure(t *testing.T) {
	api := &fakeAPI{generate: func(model.GenerateRequest) (model.GenerateResponse, error) {
		return model.GenerateResponse{Success: true}, nil
	}}
	s, kv := newSession(t, api)
	_, ch, unsubscribe := s.Notifier().Subscribe(4)
	defer unsubscribe()
	s.UpdateComposer(func(st *model.ComposerState) { st.UserInput = "a fox" })

	_, err := s.Generate(context.Background())
	require.ErrorIs(t, err, ErrNoPrompt)
	assert.Empty(t, s.History())
	assert.Empty(t, history.New(kv).LoadHistory(context.Background()))
	assert.Equal(t, Display{}, s.Display())

	n := <-ch
	assert.Equal(t, model.NotifyError, n.Level)
	assert.Equal(t, i18n.Lookup(i18n.English, "errorGeneric"), n.Description)
}

func TestConcurrentGenerateKeepsBothEntries(t *testing.T) {
	release := make(chan struct{})
	api := &fakeAPI{}
	api.generate = func(req model.GenerateRequest) (model.GenerateResponse, error) {
		<-release
		return model.GenerateResponse{Success: true, Prompt: req.UserInput, Model: req.Model}, nil
	}
	s, _ := newSession(t, api)

	var wg sync.WaitGroup
	for i, input := range []string{"first", "second"} {
		s.UpdateComposer(func(st *model.ComposerState) { st.UserInput = input })
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Generate(context.Background())
			assert.NoError(t, err)
		}()
		// Generate snapshots the composer before the call blocks.
		require.Eventually(t, func() bool { return api.generateCalls.Load() == int32(i+1) }, time.Second, time.Millisecond)
	}
	close(release)
	wg.Wait()

	entries := s.History()
	require.Len(t, entries, 2)
	inputs := []string{entries[0].UserInput, entries[1].UserInput}
	assert.ElementsMatch(t, []string{"first", "second"}, inputs)
	assert.Contains(t, inputs, s.Display().Prompt)
}

func TestAnalyzeImageRejectsBeforeCall(t *testing.T) {
	api := &fakeAPI{}
	s, _ := newSession(t, api)

	for _, uri := range []string{
		"data:image/bmp;base64,Qk0=",
		"not a data uri",
		"data:image/png;base64,",
	} {
		_, err := s.AnalyzeImage(context.Background(), AnalyzeInput{DataURI: uri})
		require.ErrorIs(t, err, ErrValidation, uri)
	}
	assert.Zero(t, api.analyzeCalls.Load())
	assert.Empty(t, s.ImageHistory())
}

func TestAnalyzeImage(t *testing.T) {
	var got model.AnalyzeImageRequest
	api := &fakeAPI{analyze: func(req model.AnalyzeImageRequest) (model.AnalyzeImageResponse, error) {
		got = req
		return model.AnalyzeImageResponse{Success: true, Analysis: "a red door"}, nil
	}}
	s, _ := newSession(t, api)

	entry, err := s.AnalyzeImage(context.Background(), AnalyzeInput{DataURI: pngURI(), TargetModel: "kling", CustomInstructions: "  focus on color "})
	require.NoError(t, err)
	assert.Equal(t, "image/png", got.MimeType)
	assert.Equal(t, "KLING", got.TargetModel)
	assert.Equal(t, "focus on color", got.CustomInstructions)
	assert.Equal(t, "a red door", entry.Analysis)
	assert.Equal(t, pngURI(), entry.ImagePreview)
	assert.Equal(t, "a red door", s.Display().ImageAnalysis)
}

func TestAnalyzeImageEmptyResult(t *testing.T) {
	api := &fakeAPI{analyze: func(model.AnalyzeImageRequest) (model.AnalyzeImageResponse, error) {
		return model.AnalyzeImageResponse{Success: true}, nil
	}}
	s, _ := newSession(t, api)
	_, ch, unsubscribe := s.Notifier().Subscribe(4)
	defer unsubscribe()

	_, err := s.AnalyzeImage(context.Background(), AnalyzeInput{DataURI: pngURI()})
	require.ErrorIs(t, err, ErrNoAnalysis)
	assert.Empty(t, s.ImageHistory())
	n := <-ch
	assert.Equal(t, i18n.Lookup(i18n.English, "errorNoAnalysis"), n.Description)
}

func TestImageHistoryIsCapped(t *testing.T) {
	s, _ := newSession(t, &fakeAPI{})
	for range model.MaxImageHistoryEntries + 3 {
		_, err := s.AnalyzeImage(context.Background(), AnalyzeInput{DataURI: pngURI()})
		require.NoError(t, err)
	}
	assert.Len(t, s.ImageHistory(), model.MaxImageHistoryEntries)
}

func TestGenerateImage(t *testing.T) {
	api := &fakeAPI{}
	s, _ := newSession(t, api)

	_, err := s.GenerateImage(context.Background())
	require.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, api.imageCalls.Load())

	opts := composer.DefaultImageOptions()
	opts.UserInput = "a paper crane"
	s.SetImageOptions(opts)
	resp, err := s.GenerateImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "full a paper crane", resp.Prompt)
	d := s.Display()
	require.NotNil(t, d.ImageURL)
	assert.Equal(t, "data:image/png;base64,AAAA", *d.ImageURL)
}

func TestGenerateImagePromptOnly(t *testing.T) {
	api := &fakeAPI{image: func(req model.GenerateImageRequest) (model.GenerateImageResponse, error) {
		return model.GenerateImageResponse{Success: true, Prompt: "only text", FinalPrompt: req.UserInput}, nil
	}}
	s, _ := newSession(t, api)
	_, ch, unsubscribe := s.Notifier().Subscribe(4)
	defer unsubscribe()

	opts := composer.DefaultImageOptions()
	opts.UserInput = "fog"
	s.SetImageOptions(opts)
	_, err := s.GenerateImage(context.Background())
	require.NoError(t, err)

	d := s.Display()
	assert.Nil(t, d.ImageURL)
	assert.Equal(t, "only text", d.ImagePrompt)
	n := <-ch
	assert.Equal(t, model.NotifySuccess, n.Level)
	assert.Equal(t, i18n.Lookup(i18n.English, "toastImagePromptOnly"), n.Title)
}

func TestHistoryActions(t *testing.T) {
	ctx := context.Background()
	s, kv := newSession(t, &fakeAPI{})
	for _, input := range []string{"one", "two", "three"} {
		s.UpdateComposer(func(st *model.ComposerState) {
			st.UserInput = input
			st.Model = "kling"
		})
		_, err := s.Generate(ctx)
		require.NoError(t, err)
	}
	entries := s.History()
	require.Len(t, entries, 3)

	s.UpdateComposer(func(st *model.ComposerState) {
		st.UserInput = ""
		st.Model = "veo"
	})
	state, err := s.LoadFromHistory(entries[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "one", state.UserInput)
	assert.Equal(t, "kling", state.Model)
	assert.Equal(t, entries[2].GeneratedPrompt, s.Display().Prompt)

	_, err = s.LoadFromHistory("missing")
	require.ErrorIs(t, err, ErrEntryNotFound)

	require.NoError(t, s.DeleteHistoryEntry(ctx, entries[1].ID))
	require.ErrorIs(t, s.DeleteHistoryEntry(ctx, entries[1].ID), ErrEntryNotFound)
	assert.Len(t, s.History(), 2)
	assert.Len(t, history.New(kv).LoadHistory(ctx), 2)

	page, err := s.ExportHTML(entries[0].ID)
	require.NoError(t, err)
	assert.Contains(t, page, "three")

	require.NoError(t, s.ClearHistory(ctx))
	assert.Empty(t, s.History())
	assert.Empty(t, history.New(kv).LoadHistory(ctx))
}

func TestSettingsAndStartup(t *testing.T) {
	ctx := context.Background()
	s, kv := newSession(t, &fakeAPI{})

	saved, err := s.UpdateSettings(ctx, model.AppSettings{DefaultModel: "nope", AutoSave: true})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultVideoModel, saved.DefaultModel)

	_, err = s.UpdateSettings(ctx, model.AppSettings{DefaultModel: "seedance"})
	require.NoError(t, err)

	next := New(ctx, Options{API: &fakeAPI{}, KV: kv})
	assert.Equal(t, "seedance", next.Composer().Model)

	next.UpdateComposer(func(st *model.ComposerState) {
		st.Model = "higgsfield"
		st.Shots = nil
	})
	require.NoError(t, next.SaveComposer(ctx))
	restored := New(ctx, Options{API: &fakeAPI{}, KV: kv})
	assert.Equal(t, "higgsfield", restored.Composer().Model)
	assert.Len(t, restored.Composer().Shots, 1)
}

func TestSetLanguage(t *testing.T) {
	s, _ := newSession(t, &fakeAPI{})
	require.NoError(t, s.SetLanguage(context.Background(), i18n.French))
	assert.Equal(t, i18n.French, s.Lang().Language())
	require.Error(t, s.SetLanguage(context.Background(), "de"))
}

func TestDownloadText(t *testing.T) {
	s, _ := newSession(t, &fakeAPI{})
	s.UpdateComposer(func(st *model.ComposerState) { st.UserInput = "rain" })
	_, err := s.Generate(context.Background())
	require.NoError(t, err)

	name, content := s.DownloadText()
	assert.Equal(t, "director-ai-prompt-1772366400000.txt", name)
	assert.Equal(t, "=== ANALYSIS ===\nreasoning for rain\n\n=== FINAL PROMPT ===\nprompt for rain", content)
}

func TestDataURI(t *testing.T) {
	mime, body, err := ParseDataURI("data:Image/PNG;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, "AAAA", body)

	_, _, err = ParseDataURI("data:image/png;base64")
	assert.True(t, errors.Is(err, ErrMalformedDataURI))

	uri, err := EncodeDataURI("frame.JPG", []byte{0xff, 0xd8, 0xff})
	require.NoError(t, err)
	assert.Equal(t, "data:image/jpeg;base64,/9j/", uri)

	uri, err = EncodeDataURI("frame", []byte("\x89PNG\r\n\x1a\n0000"))
	require.NoError(t, err)
	assert.Contains(t, uri, "data:image/png;base64,")

	_, err = EncodeDataURI("empty.png", nil)
	require.Error(t, err)
}

func TestDeleteUnknownEntryDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	kv := &countingKV{KV: store.NewMemoryStore()}
	s := New(ctx, Options{API: &fakeAPI{}, KV: kv, Lang: i18n.NewContext(ctx, kv, "en")})
	s.UpdateComposer(func(st *model.ComposerState) { st.UserInput = "dune" })
	_, err := s.Generate(ctx)
	require.NoError(t, err)
	writes := kv.sets.Load()

	require.ErrorIs(t, s.DeleteHistoryEntry(ctx, "missing"), ErrEntryNotFound)
	assert.Equal(t, writes, kv.sets.Load())
	assert.Len(t, s.History(), 1)
}
