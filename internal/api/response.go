package api

import (
	"director/server/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	msgDescriptionRequired = "Please provide a description."
	msgImageRequired       = "Please provide an image."
	msgUnsupportedImage    = "Unsupported image format."
	msgInvalidBody         = "Invalid request body."
	msgGenerateFailed      = "Error generating prompt."
	msgAnalysisEmpty       = "Analysis returned no result."
	msgUnexpected          = "An error occurred."
	msgAnalysisUnexpected  = "An error occurred during analysis."
)

func unexpectedMessage(route string) string {
	if route == "/api/analyze-image" {
		return msgAnalysisUnexpected
	}
	return msgUnexpected
}

func writeJSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, model.ErrorResponse{Error: message})
}
