package model

// Wire shapes of the three backend routes. Field names follow the public
// JSON contract.

type ShotPayload struct {
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type GenerateRequest struct {
	UserInput             string        `json:"userInput"`
	Model                 string        `json:"model"`
	Multiplan             bool          `json:"multiplan"`
	MultiplanShots        []ShotPayload `json:"multiplanShots,omitempty"`
	StartFrameDescription string        `json:"startFrameDescription,omitempty"`
	EndFrameDescription   string        `json:"endFrameDescription,omitempty"`
	StyleVisuel           []string      `json:"styleVisuel,omitempty"`
	Ambiance              []string      `json:"ambiance,omitempty"`
	CameraMovement        []string      `json:"cameraMovement,omitempty"`
	Lighting              []string      `json:"lighting,omitempty"`
	Duration              string        `json:"duration,omitempty"`
	Format                string        `json:"format,omitempty"`
	Resolution            string        `json:"resolution,omitempty"`
	FPS                   string        `json:"fps,omitempty"`
	MovementIntensity     *int          `json:"movementIntensity,omitempty"`
	DepthOfField          *int          `json:"depthOfField,omitempty"`
	AudioDescription      string        `json:"audioDescription,omitempty"`
	AdditionalContext     string        `json:"additionalContext,omitempty"`
	ColorPalette          []string      `json:"colorPalette,omitempty"`
}

type GenerateResponse struct {
	Success   bool   `json:"success"`
	Prompt    string `json:"prompt"`
	Model     string `json:"model"`
	Multiplan bool   `json:"multiplan"`
	Timestamp string `json:"timestamp"`
}

type AnalyzeImageRequest struct {
	ImageBase64        string `json:"imageBase64"`
	MimeType           string `json:"mimeType"`
	CustomInstructions string `json:"customInstructions,omitempty"`
	TargetModel        string `json:"targetModel,omitempty"`
}

type AnalyzeImageResponse struct {
	Success   bool   `json:"success"`
	Analysis  string `json:"analysis"`
	Timestamp string `json:"timestamp"`
}

type GenerateImageRequest struct {
	UserInput      string    `json:"userInput"`
	Model          string    `json:"model,omitempty"`
	Style          string    `json:"style,omitempty"`
	AspectRatio    string    `json:"aspectRatio,omitempty"`
	Quality        string    `json:"quality,omitempty"`
	NegativePrompt string    `json:"negativePrompt,omitempty"`
	Mode           ImageMode `json:"mode,omitempty"`
}

type GenerateImageResponse struct {
	Success     bool    `json:"success"`
	Prompt      string  `json:"prompt"`
	FinalPrompt string  `json:"finalPrompt"`
	ImageURL    *string `json:"imageUrl"`
	Model       string  `json:"model"`
	Timestamp   string  `json:"timestamp"`
}

type ImageModelsResponse struct {
	Models []ImageModel `json:"models"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
