package api

import (
	"net/http"
	"strings"

	"director/server/internal/model"
	"director/server/internal/prompt"
	"director/server/internal/provider"

	"github.com/gin-gonic/gin"
)

func (s *Server) generate(c *gin.Context) {
	if !requireJSON(c) {
		return
	}
	var req model.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, msgInvalidBody)
		return
	}
	if strings.TrimSpace(req.UserInput) == "" {
		writeError(c, http.StatusBadRequest, msgDescriptionRequired)
		return
	}

	chat := prompt.Video(req)
	text, perr := s.provider.Complete(c.Request.Context(), provider.ChatInput{
		TraceID:     traceIDFromContext(c),
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
		s.log.Warn("provider_empty_result", "trace_id", traceIDFromContext(c), "route", c.FullPath())
		writeError(c, http.StatusInternalServerError, msgGenerateFailed)
		return
	}

	writeJSON(c, http.StatusOK, model.GenerateResponse{
		Success:   true,
		Prompt:    text,
		Model:     req.Model,
		Multiplan: req.Multiplan,
		Timestamp: model.Timestamp(s.now()),
	})
}

func (s *Server) logProviderError(c *gin.Context, op string, perr *provider.Error) {
	s.log.Error("provider_call_failed",
		"trace_id", traceIDFromContext(c),
		"route", c.FullPath(),
		"op", op,
		"category", perr.Category,
		"code", perr.Code,
		"retryable", perr.Retryable,
		"error", perr.InternalMessage,
	)
}
