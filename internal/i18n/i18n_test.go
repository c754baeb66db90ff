package i18n

import (
	"context"
	"testing"

	"director/server/internal/model"
	"director/server/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupFallsBackToKey(t *testing.T) {
	assert.Equal(t, "Épique", Lookup(French, "moodEpic"))
	assert.Equal(t, "Epic", Lookup(English, "moodEpic"))
	assert.Equal(t, "noSuchKey", Lookup(English, "noSuchKey"))
	assert.Equal(t, "moodEpic", Lookup(Language("de"), "moodEpic"))
}

func TestEveryVocabularyKeyIsTranslated(t *testing.T) {
	vocabs := []model.Vocabulary{
		model.Durations, model.Formats, model.Resolutions, model.FrameRates,
		model.Styles, model.Moods, model.CameraMovements, model.LightingOptions,
	}
	for _, lang := range Supported {
		for _, v := range vocabs {
			for _, key := range v.Keys {
				_, ok := translations[lang][key]
				assert.Truef(t, ok, "%s: missing %s key %q", lang, v.Name, key)
			}
		}
		for _, m := range model.VideoModels {
			_, ok := translations[lang][m.DescriptionKey]
			assert.Truef(t, ok, "%s: missing model description %q", lang, m.DescriptionKey)
		}
	}
}

func TestMatchLocale(t *testing.T) {
	cases := map[string]Language{
		"":            French,
		"C":           French,
		"en_US.UTF-8": English,
		"en-GB":       English,
		"en":          English,
		"fr_CA.UTF-8": French,
		"de_DE":       French,
		"ja":          French,
	}
	for in, want := range cases {
		assert.Equalf(t, want, MatchLocale(in), "locale %q", in)
	}
}

func TestNewContextFallbackChain(t *testing.T) {
	ctx := context.Background()

	kv := store.NewMemoryStore()
	assert.Equal(t, French, NewContext(ctx, kv, "").Language())
	assert.Equal(t, English, NewContext(ctx, kv, "en_US.UTF-8").Language())

	require.NoError(t, kv.Set(ctx, StorageKey, `"fr"`))
	assert.Equal(t, French, NewContext(ctx, kv, "en_US.UTF-8").Language())

	require.NoError(t, kv.Set(ctx, StorageKey, `"de"`))
	assert.Equal(t, English, NewContext(ctx, kv, "en").Language())

	require.NoError(t, kv.Set(ctx, StorageKey, "en"))
	assert.Equal(t, English, NewContext(ctx, kv, "").Language())

	assert.Equal(t, French, NewContext(ctx, nil, "").Language())
}

func TestSetLanguagePersists(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()

	c := NewContext(ctx, kv, "")
	require.NoError(t, c.SetLanguage(ctx, English))
	assert.Equal(t, "Epic", c.T("moodEpic"))

	raw, err := kv.Get(ctx, StorageKey)
	require.NoError(t, err)
	assert.Equal(t, `"en"`, raw)

	reopened := NewContext(ctx, kv, "fr_FR")
	assert.Equal(t, English, reopened.Language())

	err = c.SetLanguage(ctx, Language("es"))
	require.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, English, c.Language())
}

func TestStaticTranslator(t *testing.T) {
	var tr Translator = Static(English)
	assert.Equal(t, "Golden hour", tr.T("lightGoldenHour"))
	assert.Equal(t, "#1a1a2e", tr.T("#1a1a2e"))
}
