package model

type VideoModel struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Version        string `json:"version"`
	DescriptionKey string `json:"-"`
}

var VideoModels = []VideoModel{
	{ID: "veo", Name: "VEO", Version: "3", DescriptionKey: "modelVeo"},
	{ID: "seedance", Name: "SEEDANCE", Version: "2.0", DescriptionKey: "modelSeedance"},
	{ID: "kling", Name: "KLING", Version: "3.0", DescriptionKey: "modelKling"},
	{ID: "higgsfield", Name: "HIGGSFIELD STUDIO", Version: "2.0", DescriptionKey: "modelHiggsfield"},
}

const DefaultVideoModel = "veo"

func FindVideoModel(id string) (VideoModel, bool) {
	for _, m := range VideoModels {
		if m.ID == id {
			return m, true
		}
	}
	return VideoModel{}, false
}

func FindVideoModelByName(name string) (VideoModel, bool) {
	for _, m := range VideoModels {
		if m.Name == name {
			return m, true
		}
	}
	return VideoModel{}, false
}

// VideoModelName resolves the display name sent to the provider. Unknown ids
// are passed through unchanged.
func VideoModelName(id string) string {
	if m, ok := FindVideoModel(id); ok {
		return m.Name
	}
	return id
}

// SupportsMultiplan is the single source of truth for multi-shot eligibility.
func SupportsMultiplan(modelID string) bool {
	return modelID == "kling" || modelID == "higgsfield"
}

// SupportsAudio reports whether the model accepts an audio description.
func SupportsAudio(modelID string) bool {
	return modelID == "veo"
}

// Vocabulary is a closed, ordered list of option keys. Keys double as
// translation keys.
type Vocabulary struct {
	Name    string
	Keys    []string
	Default string
}

func (v Vocabulary) Has(key string) bool {
	for _, k := range v.Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Normalize returns key when it belongs to the vocabulary, the default otherwise.
func (v Vocabulary) Normalize(key string) string {
	if v.Has(key) {
		return key
	}
	return v.Default
}

var (
	Durations = Vocabulary{
		Name:    "duration",
		Keys:    []string{"duration3s", "duration5s", "duration8s", "duration10s", "duration15s"},
		Default: "duration5s",
	}
	Formats = Vocabulary{
		Name:    "format",
		Keys:    []string{"format16_9", "format9_16", "format1_1", "format21_9", "format4_3"},
		Default: "format16_9",
	}
	Resolutions = Vocabulary{
		Name:    "resolution",
		Keys:    []string{"res720p", "res1080p", "res4K", "res8K"},
		Default: "res4K",
	}
	FrameRates = Vocabulary{
		Name:    "fps",
		Keys:    []string{"fps24", "fps25", "fps30", "fps60"},
		Default: "fps24",
	}
	Styles = Vocabulary{
		Name: "style",
		Keys: []string{
			"styleCinematic4K", "styleHyperrealistic", "styleFilmGrain", "styleFilmNoir",
			"styleNeoNoir", "styleAnime", "style3DAnimation", "styleStopMotion",
			"styleDocumentary", "styleVintageSuper8", "styleFuturistic", "styleExpressionist",
			"styleSurrealist", "styleMinimalist",
		},
	}
	Moods = Vocabulary{
		Name: "mood",
		Keys: []string{
			"moodMelancholic", "moodEpic", "moodMysterious", "moodRomantic",
			"moodAnguishing", "moodContemplative", "moodNostalgic", "moodDramatic",
			"moodDreamy", "moodTense", "moodPoetic", "moodJoyful",
		},
	}
	CameraMovements = Vocabulary{
		Name: "camera",
		Keys: []string{
			"cameraWideShot", "cameraCloseUp", "cameraAmericanShot", "cameraHighAngle",
			"cameraLowAngle", "cameraDollyIn", "cameraDollyOut", "cameraOrbitalPan",
			"cameraTracking", "cameraSteadicam", "cameraHandheld", "cameraDrone",
			"cameraPOV", "cameraRackFocus", "cameraWhipPan", "cameraDutchAngle", "cameraBirdsEye",
		},
	}
	LightingOptions = Vocabulary{
		Name: "lighting",
		Keys: []string{
			"lightGoldenHour", "lightBlueHour", "lightHard", "lightSoft",
			"lightBacklight", "lightCandlelight", "lightNeon", "lightMoonlight",
			"lightChiaroscuro", "lightStrobe",
		},
	}
	ColorSwatches = Vocabulary{
		Name: "color",
		Keys: []string{
			"#1a1a2e", "#16213e", "#0f3460", "#e94560", "#ff6b6b",
			"#feca57", "#48dbfb", "#1dd1a1", "#FF6B6B", "#4ECDC4",
			"#45B7D1", "#96CEB4", "#FFEAA7", "#DDA0DD", "#F39C12", "#3498DB",
		},
	}
)

const (
	SliderMin = 0
	SliderMax = 10

	DefaultMovementIntensity = 6
	DefaultDepthOfField      = 7
)

func ClampSlider(v int) int {
	if v < SliderMin {
		return SliderMin
	}
	if v > SliderMax {
		return SliderMax
	}
	return v
}

var SupportedImageMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

func IsSupportedImageMime(mime string) bool {
	for _, m := range SupportedImageMimeTypes {
		if m == mime {
			return true
		}
	}
	return false
}

type ImageMode string

const (
	ImageModeCreate    ImageMode = "create"
	ImageModeTransform ImageMode = "transform"
)

type ImageModel struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var ImageModels = []ImageModel{
	{ID: "default", Name: "Default"},
	{ID: "nano-banana-pro", Name: "Nano Banana Pro"},
}

const DefaultImageModel = "default"
