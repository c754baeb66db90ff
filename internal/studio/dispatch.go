package studio

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"director/server/internal/apiclient"
	"director/server/internal/composer"
	"director/server/internal/history"
	"director/server/internal/model"
	"director/server/internal/parser"

	"github.com/google/uuid"
)

type GenerateResult struct {
	Prompt    string
	Analysis  string
	Multiplan bool
	Entry     model.HistoryEntry
}

// Generate submits the composer to /api/generate. On success the display
// fields are overwritten and a history entry is prepended and persisted.
func (s *Session) Generate(ctx context.Context) (GenerateResult, error) {
	state := s.Composer()
	if strings.TrimSpace(state.UserInput) == "" {
		s.fail("toastInputRequired", "toastInputRequiredDescription")
		return GenerateResult{}, fmt.Errorf("%w: description is empty", ErrValidation)
	}

	req := composer.BuildRequestPayload(state, s.lang)
	resp, err := s.api.Generate(ctx, req)
	if err == nil && strings.TrimSpace(resp.Prompt) == "" {
		err = ErrNoPrompt
	}
	if err != nil {
		s.log.Error("generation_failed", "error", err)
		msg := apiclient.Message(err)
		if errors.Is(err, ErrNoPrompt) {
			msg = s.lang.T("errorGeneric")
		}
		s.notifier.Error(s.lang.T("toastError"), msg)
		return GenerateResult{}, err
	}

	multiplan := parser.IsMultiShot(resp.Multiplan, resp.Prompt)
	parsed := parser.ForGeneration(resp.Multiplan, resp.Prompt)
	entry := model.HistoryEntry{
		ID:              uuid.NewString(),
		UserInput:       state.UserInput,
		GeneratedPrompt: parsed.Prompt,
		Analysis:        parsed.Analysis,
		Model:           req.Model,
		Timestamp:       s.now().UTC(),
		Options:         composer.Snapshot(state),
	}

	s.mu.Lock()
	s.display.Prompt = parsed.Prompt
	s.display.Analysis = parsed.Analysis
	s.entries = history.Prepend(s.entries, entry, model.MaxHistoryEntries)
	saveErr := s.history.SaveHistory(ctx, s.entries)
	s.mu.Unlock()
	if saveErr != nil {
		s.log.Warn("history_save_failed", "error", saveErr)
	}

	s.notifier.Success(s.lang.T("toastPromptGenerated"), s.lang.T("toastPromptDescription"))
	return GenerateResult{Prompt: parsed.Prompt, Analysis: parsed.Analysis, Multiplan: multiplan, Entry: entry}, nil
}

type AnalyzeInput struct {
	// DataURI is the image as read from disk: data:<mime>;base64,<body>.
	DataURI            string
	CustomInstructions string
	TargetModel        string
}

// AnalyzeImage submits an image to /api/analyze-image. Malformed data URIs
// and unsupported types are rejected before any network call.
func (s *Session) AnalyzeImage(ctx context.Context, in AnalyzeInput) (model.ImageAnalysisEntry, error) {
	mime, body, err := ParseDataURI(in.DataURI)
	if err == nil && !model.IsSupportedImageMime(mime) {
		err = fmt.Errorf("%w: %s", ErrUnsupportedImage, mime)
	}
	if err != nil {
		s.fail("toastInvalidFormat", "toastInvalidFormatDescription")
		return model.ImageAnalysisEntry{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	s.mu.Lock()
	s.display.ImageAnalysis = ""
	s.mu.Unlock()

	req := model.AnalyzeImageRequest{
		ImageBase64:        body,
		MimeType:           mime,
		CustomInstructions: strings.TrimSpace(in.CustomInstructions),
	}
	if m, ok := model.FindVideoModel(in.TargetModel); ok {
		req.TargetModel = m.Name
	}

	resp, err := s.api.AnalyzeImage(ctx, req)
	if err == nil && resp.Analysis == "" {
		err = ErrNoAnalysis
	}
	if err != nil {
		s.log.Error("image_analysis_failed", "error", err)
		msg := apiclient.Message(err)
		if errors.Is(err, ErrNoAnalysis) {
			msg = s.lang.T("errorNoAnalysis")
		}
		s.notifier.Error(s.lang.T("toastError"), msg)
		return model.ImageAnalysisEntry{}, err
	}

	entry := model.ImageAnalysisEntry{
		ID:           uuid.NewString(),
		ImagePreview: in.DataURI,
		Analysis:     resp.Analysis,
		Timestamp:    s.now().UTC(),
	}

	s.mu.Lock()
	s.display.ImageAnalysis = resp.Analysis
	s.imageEntries = history.Prepend(s.imageEntries, entry, model.MaxImageHistoryEntries)
	saveErr := s.history.SaveImageHistory(ctx, s.imageEntries)
	s.mu.Unlock()
	if saveErr != nil {
		s.log.Warn("image_history_save_failed", "error", saveErr)
	}

	s.notifier.Success(s.lang.T("toastImageAnalyzed"), s.lang.T("toastImageAnalyzedDescription"))
	return entry, nil
}

// GenerateImage submits the image generator options to /api/generate-image.
// The previous image output is cleared when the call starts.
func (s *Session) GenerateImage(ctx context.Context) (model.GenerateImageResponse, error) {
	opts := s.ImageOptions()
	if strings.TrimSpace(opts.UserInput) == "" {
		s.fail("toastImageDescriptionRequired", "toastImageDescribe")
		return model.GenerateImageResponse{}, fmt.Errorf("%w: description is empty", ErrValidation)
	}

	s.mu.Lock()
	s.display.ImagePrompt = ""
	s.display.ImageURL = nil
	s.mu.Unlock()

	resp, err := s.api.GenerateImage(ctx, composer.BuildImagePayload(opts))
	if err != nil {
		s.log.Error("image_generation_failed", "error", err)
		s.notifier.Error(s.lang.T("toastError"), apiclient.Message(err))
		return model.GenerateImageResponse{}, err
	}

	hasImage := resp.ImageURL != nil && *resp.ImageURL != ""
	s.mu.Lock()
	s.display.ImagePrompt = resp.Prompt
	if hasImage {
		url := *resp.ImageURL
		s.display.ImageURL = &url
	}
	s.mu.Unlock()

	if hasImage {
		s.notifier.Success(s.lang.T("toastImageGenerated"), "")
	} else {
		s.notifier.Success(s.lang.T("toastImagePromptOnly"), "")
	}
	return resp, nil
}
