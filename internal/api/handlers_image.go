package api

import (
	"encoding/base64"
	"net/http"
	"strings"

	"director/server/internal/model"
	"director/server/internal/parser"
	"director/server/internal/prompt"
	"director/server/internal/provider"

	"github.com/gin-gonic/gin"
)

func (s *Server) analyzeImage(c *gin.Context) {
	if !requireJSON(c) {
		return
	}
	var req model.AnalyzeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if req.ImageBase64 == "" {
		writeError(c, http.StatusBadRequest, msgImageRequired)
		return
	}
	if !model.IsSupportedImageMime(req.MimeType) {
		writeError(c, http.StatusBadRequest, msgUnsupportedImage)
		return
	}
	image, err := decodeBase64(req.ImageBase64)
	if err != nil || len(image) == 0 {
		writeError(c, http.StatusBadRequest, msgImageRequired)
		return
	}

	analysis, perr := s.provider.Vision(c.Request.Context(), provider.VisionInput{
		TraceID:  traceIDFromContext(c),
		Prompt:   prompt.Analysis(req),
		MimeType: req.MimeType,
		Image:    image,
	})
	if perr != nil {
		s.logProviderError(c, "vision", perr)
		writeError(c, http.StatusInternalServerError, msgAnalysisUnexpected)
		return
	}
	if analysis == "" {
		s.log.Warn("provider_empty_result", "trace_id", traceIDFromContext(c), "route", c.FullPath())
		writeError(c, http.StatusInternalServerError, msgAnalysisEmpty)
		return
	}

	writeJSON(c, http.StatusOK, model.AnalyzeImageResponse{
		Success:   true,
		Analysis:  analysis,
		Timestamp: model.Timestamp(s.now()),
	})
}

func decodeBase64(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(raw, "="))
}

func (s *Server) generateImage(c *gin.Context) {
	if !requireJSON(c) {
		return
	}
	var req model.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		writeError(c, http.StatusBadRequest, msgDescriptionRequired)
		return
	}

	traceID := traceIDFromContext(c)
	chat := prompt.Image(req)
	text, perr := s.provider.Complete(c.Request.Context(), provider.ChatInput{
		TraceID:     traceID,
		System:      chat.System,
		User:        chat.User,
		Temperature: chat.Temperature,
		MaxTokens:   chat.MaxTokens,
	})
	if perr != nil {
		s.logProviderError(c, "complete", perr)
		writeError(c, http.StatusInternalServerError, msgUnexpected)
		return
	}
	if text == "" {
		s.log.Warn("provider_empty_result", "trace_id", traceID, "route", c.FullPath())
		writeError(c, http.StatusInternalServerError, msgGenerateFailed)
		return
	}

	finalPrompt, ok := parser.FinalImagePrompt(text)
	if !ok {
		finalPrompt = req.UserInput
	}

	// image bytes are optional; a failure here degrades to prompt only
	var imageURL *string
	img, perr := s.provider.GenerateImage(c.Request.Context(), provider.ImageInput{
		TraceID:     traceID,
		Prompt:      finalPrompt,
		AspectRatio: prompt.AspectRatioFor(req.AspectRatio),
		Size:        prompt.SizeFor(req.AspectRatio).String(),
	})
	switch {
	case perr != nil:
		s.logProviderError(c, "generate_image", perr)
	case len(img.Data) > 0:
		mime := img.MimeType
		if mime == "" {
			mime = "image/png"
		}
		url := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
		imageURL = &url
	}

	modelID := req.Model
	if modelID == "" {
		modelID = model.DefaultImageModel
	}
	writeJSON(c, http.StatusOK, model.GenerateImageResponse{
		Success:     true,
		Prompt:      text,
		FinalPrompt: finalPrompt,
		ImageURL:    imageURL,
		Model:       modelID,
		Timestamp:   model.Timestamp(s.now()),
	})
}

func (s *Server) imageModels(c *gin.Context) {
	writeJSON(c, http.StatusOK, model.ImageModelsResponse{Models: model.ImageModels})
}
