package i18n

type Language string

const (
	French  Language = "fr"
	English Language = "en"

	DefaultLanguage = French
)

var Supported = []Language{French, English}

func (l Language) Valid() bool {
	return l == French || l == English
}

var translations = map[Language]map[string]string{
	French: {
		"modelVeo":        "Réalisme cinématographique avec audio natif",
		"modelSeedance":   "Mouvements fluides et chorégraphies",
		"modelKling":      "Narration multi-plans et physique réaliste",
		"modelHiggsfield": "Contrôle caméra de niveau studio",

		"styleCinematic4K":    "Cinématique 4K",
		"styleHyperrealistic": "Hyperréaliste",
		"styleFilmGrain":      "Grain pellicule",
		"styleFilmNoir":       "Film noir",
		"styleNeoNoir":        "Néo-noir",
		"styleAnime":          "Anime",
		"style3DAnimation":    "Animation 3D",
		"styleStopMotion":     "Stop motion",
		"styleDocumentary":    "Documentaire",
		"styleVintageSuper8":  "Vintage Super 8",
		"styleFuturistic":     "Futuriste",
		"styleExpressionist":  "Expressionniste",
		"styleSurrealist":     "Surréaliste",
		"styleMinimalist":     "Minimaliste",

		"moodMelancholic":   "Mélancolique",
		"moodEpic":          "Épique",
		"moodMysterious":    "Mystérieux",
		"moodRomantic":      "Romantique",
		"moodAnguishing":    "Angoissant",
		"moodContemplative": "Contemplatif",
		"moodNostalgic":     "Nostalgique",
		"moodDramatic":      "Dramatique",
		"moodDreamy":        "Onirique",
		"moodTense":         "Tendu",
		"moodPoetic":        "Poétique",
		"moodJoyful":        "Joyeux",

		"cameraWideShot":     "Plan large",
		"cameraCloseUp":      "Gros plan",
		"cameraAmericanShot": "Plan américain",
		"cameraHighAngle":    "Plongée",
		"cameraLowAngle":     "Contre-plongée",
		"cameraDollyIn":      "Travelling avant",
		"cameraDollyOut":     "Travelling arrière",
		"cameraOrbitalPan":   "Panoramique orbital",
		"cameraTracking":     "Plan de suivi",
		"cameraSteadicam":    "Steadicam",
		"cameraHandheld":     "Caméra à l'épaule",
		"cameraDrone":        "Drone",
		"cameraPOV":          "Caméra subjective",
		"cameraRackFocus":    "Bascule de point",
		"cameraWhipPan":      "Panoramique filé",
		"cameraDutchAngle":   "Plan débullé",
		"cameraBirdsEye":     "Vue aérienne",

		"lightGoldenHour":  "Heure dorée",
		"lightBlueHour":    "Heure bleue",
		"lightHard":        "Lumière dure",
		"lightSoft":        "Lumière douce",
		"lightBacklight":   "Contre-jour",
		"lightCandlelight": "Bougie",
		"lightNeon":        "Néon",
		"lightMoonlight":   "Clair de lune",
		"lightChiaroscuro": "Clair-obscur",
		"lightStrobe":      "Stroboscope",

		"duration3s":  "3 secondes",
		"duration5s":  "5 secondes",
		"duration8s":  "8 secondes",
		"duration10s": "10 secondes",
		"duration15s": "15 secondes",

		"format16_9": "16:9 Paysage",
		"format9_16": "9:16 Portrait",
		"format1_1":  "1:1 Carré",
		"format21_9": "21:9 Cinémascope",
		"format4_3":  "4:3 Classique",

		"res720p":  "720p HD",
		"res1080p": "1080p Full HD",
		"res4K":    "4K UHD",
		"res8K":    "8K",

		"fps24": "24fps (Cinéma)",
		"fps25": "25fps (PAL)",
		"fps30": "30fps (Standard)",
		"fps60": "60fps (Fluide)",

		"toastInputRequired":            "Description requise",
		"toastInputRequiredDescription": "Veuillez décrire votre vidéo.",
		"toastPromptGenerated":          "Prompt généré !",
		"toastPromptDescription":        "Votre prompt cinématographique est prêt.",
		"toastInvalidFormat":            "Format invalide",
		"toastInvalidFormatDescription": "Veuillez choisir une image JPEG, PNG, GIF ou WebP.",
		"toastImageAnalyzed":            "Image analysée !",
		"toastImageAnalyzedDescription": "Prompt vidéo généré à partir de votre image.",
		"toastImageDescriptionRequired": "Description requise",
		"toastImageDescribe":            "Veuillez décrire l'image.",
		"toastImageGenerated":           "Image générée !",
		"toastImagePromptOnly":          "Prompt généré !",
		"toastCopied":                   "Copié !",
		"toastCopiedDescription":        "Prompt copié dans le presse-papiers.",
		"toastDeleted":                  "Supprimé",
		"toastHistoryCleared":           "Historique effacé",
		"toastLoaded":                   "Chargé",
		"toastLoadedDescription":        "Prompt chargé dans l'éditeur.",
		"toastSettingsSaved":            "Paramètres enregistrés",
		"toastError":                    "Erreur",
		"errorGeneric":                  "Une erreur est survenue.",
		"errorNoAnalysis":               "Aucun résultat d'analyse.",
	},
	English: {
		"modelVeo":        "Cinematic realism with native audio",
		"modelSeedance":   "Fluid motion and choreography",
		"modelKling":      "Multi-shot storytelling and realistic physics",
		"modelHiggsfield": "Studio-grade camera control",

		"styleCinematic4K":    "Cinematic 4K",
		"styleHyperrealistic": "Hyperrealistic",
		"styleFilmGrain":      "Film grain",
		"styleFilmNoir":       "Film noir",
		"styleNeoNoir":        "Neo-noir",
		"styleAnime":          "Anime",
		"style3DAnimation":    "3D animation",
		"styleStopMotion":     "Stop motion",
		"styleDocumentary":    "Documentary",
		"styleVintageSuper8":  "Vintage Super 8",
		"styleFuturistic":     "Futuristic",
		"styleExpressionist":  "Expressionist",
		"styleSurrealist":     "Surrealist",
		"styleMinimalist":     "Minimalist",

		"moodMelancholic":   "Melancholic",
		"moodEpic":          "Epic",
		"moodMysterious":    "Mysterious",
		"moodRomantic":      "Romantic",
		"moodAnguishing":    "Anguishing",
		"moodContemplative": "Contemplative",
		"moodNostalgic":     "Nostalgic",
		"moodDramatic":      "Dramatic",
		"moodDreamy":        "Dreamy",
		"moodTense":         "Tense",
		"moodPoetic":        "Poetic",
		"moodJoyful":        "Joyful",

		"cameraWideShot":     "Wide shot",
		"cameraCloseUp":      "Close-up",
		"cameraAmericanShot": "American shot",
		"cameraHighAngle":    "High angle",
		"cameraLowAngle":     "Low angle",
		"cameraDollyIn":      "Dolly in",
		"cameraDollyOut":     "Dolly out",
		"cameraOrbitalPan":   "Orbital pan",
		"cameraTracking":     "Tracking shot",
		"cameraSteadicam":    "Steadicam",
		"cameraHandheld":     "Handheld",
		"cameraDrone":        "Drone",
		"cameraPOV":          "POV",
		"cameraRackFocus":    "Rack focus",
		"cameraWhipPan":      "Whip pan",
		"cameraDutchAngle":   "Dutch angle",
		"cameraBirdsEye":     "Bird's eye view",

		"lightGoldenHour":  "Golden hour",
		"lightBlueHour":    "Blue hour",
		"lightHard":        "Hard light",
		"lightSoft":        "Soft light",
		"lightBacklight":   "Backlight",
		"lightCandlelight": "Candlelight",
		"lightNeon":        "Neon",
		"lightMoonlight":   "Moonlight",
		"lightChiaroscuro": "Chiaroscuro",
		"lightStrobe":      "Strobe",

		"duration3s":  "3 seconds",
		"duration5s":  "5 seconds",
		"duration8s":  "8 seconds",
		"duration10s": "10 seconds",
		"duration15s": "15 seconds",

		"format16_9": "16:9 Landscape",
		"format9_16": "9:16 Portrait",
		"format1_1":  "1:1 Square",
		"format21_9": "21:9 Cinemascope",
		"format4_3":  "4:3 Classic",

		"res720p":  "720p HD",
		"res1080p": "1080p Full HD",
		"res4K":    "4K UHD",
		"res8K":    "8K",

		"fps24": "24fps (Cinema)",
		"fps25": "25fps (PAL)",
		"fps30": "30fps (Standard)",
		"fps60": "60fps (Smooth)",

		"toastInputRequired":            "Description required",
		"toastInputRequiredDescription": "Please describe your video.",
		"toastPromptGenerated":          "Prompt generated!",
		"toastPromptDescription":        "Your cinematic prompt is ready.",
		"toastInvalidFormat":            "Invalid format",
		"toastInvalidFormatDescription": "Please choose a JPEG, PNG, GIF or WebP image.",
		"toastImageAnalyzed":            "Image analyzed!",
		"toastImageAnalyzedDescription": "Video prompt generated from your image.",
		"toastImageDescriptionRequired": "Description required",
		"toastImageDescribe":            "Please describe the image.",
		"toastImageGenerated":           "Image generated!",
		"toastImagePromptOnly":          "Prompt generated!",
		"toastCopied":                   "Copied!",
		"toastCopiedDescription":        "Prompt copied to clipboard.",
		"toastDeleted":                  "Deleted",
		"toastHistoryCleared":           "History cleared",
		"toastLoaded":                   "Loaded",
		"toastLoadedDescription":        "Prompt loaded in editor.",
		"toastSettingsSaved":            "Settings saved",
		"toastError":                    "Error",
		"errorGeneric":                  "An error occurred.",
		"errorNoAnalysis":               "No analysis result.",
	},
}

// Lookup returns the display text for key, or key itself when the language
// has no entry for it.
func Lookup(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if v, ok := table[key]; ok && v != "" {
			return v
		}
	}
	return key
}

// Translator turns a string key into display text.
type Translator interface {
	T(key string) string
}

// Static is a fixed-language Translator.
type Static Language

func (s Static) T(key string) string {
	return Lookup(Language(s), key)
}
