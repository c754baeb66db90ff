package model

import "time"

const (
	MaxHistoryEntries      = 100
	MaxImageHistoryEntries = 20
)

type Shot struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
}

// ComposerState is the editable, not yet submitted generation request.
// Option fields hold vocabulary keys, never localized labels.
type ComposerState struct {
	UserInput string `json:"userInput"`
	Model     string `json:"model"`

	Styles   []string `json:"styles"`
	Moods    []string `json:"moods"`
	Cameras  []string `json:"cameras"`
	Lighting []string `json:"lighting"`

	Duration          string `json:"duration"`
	Format            string `json:"format"`
	Resolution        string `json:"resolution"`
	FPS               string `json:"fps"`
	MovementIntensity int    `json:"movementIntensity"`
	DepthOfField      int    `json:"depthOfField"`

	MultiplanEnabled bool   `json:"multiplanEnabled"`
	Shots            []Shot `json:"shots"`

	StartFrameDescription string `json:"startFrameDescription"`
	EndFrameDescription   string `json:"endFrameDescription"`

	AudioDescription  string   `json:"audioDescription"`
	AdditionalContext string   `json:"additionalContext"`
	ColorPalette      []string `json:"colorPalette"`
}

type HistoryOptions struct {
	Styles                []string `json:"styleVisuel"`
	Moods                 []string `json:"ambiance"`
	Cameras               []string `json:"cameraMovement"`
	Lighting              []string `json:"lighting"`
	Duration              string   `json:"duration"`
	Format                string   `json:"format"`
	Resolution            string   `json:"resolution"`
	FPS                   string   `json:"fps"`
	MovementIntensity     int      `json:"movementIntensity"`
	DepthOfField          int      `json:"depthOfField"`
	Multiplan             bool     `json:"multiplan"`
	Shots                 []Shot   `json:"multiplanShots"`
	AudioDescription      string   `json:"audioDescription"`
	AdditionalContext     string   `json:"additionalContext"`
	ColorPalette          []string `json:"colorPalette,omitempty"`
	StartFrameDescription string   `json:"startFrameDescription,omitempty"`
	EndFrameDescription   string   `json:"endFrameDescription,omitempty"`
}

// HistoryEntry is written once per successful generation and never mutated.
type HistoryEntry struct {
	ID              string         `json:"id"`
	UserInput       string         `json:"userInput"`
	GeneratedPrompt string         `json:"generatedPrompt"`
	Analysis        string         `json:"analysis"`
	Model           string         `json:"model"`
	Timestamp       time.Time      `json:"timestamp"`
	Options         HistoryOptions `json:"options"`
}

type ImageAnalysisEntry struct {
	ID           string    `json:"id"`
	ImagePreview string    `json:"imagePreview"`
	Analysis     string    `json:"analysis"`
	Timestamp    time.Time `json:"timestamp"`
}

type AppSettings struct {
	DefaultModel string `json:"defaultModel"`
	DarkMode     bool   `json:"darkMode"`
	AutoSave     bool   `json:"autoSave"`
}

func DefaultSettings() AppSettings {
	return AppSettings{
		DefaultModel: DefaultVideoModel,
		DarkMode:     true,
		AutoSave:     true,
	}
}

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyError   NotificationLevel = "error"
)

type Notification struct {
	Level       NotificationLevel `json:"level"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	TS          time.Time         `json:"ts"`
}

// Timestamp formats t the way the routes report it: UTC, millisecond precision.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
