package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"director/server/internal/store"

	"golang.org/x/text/language"
)

const StorageKey = "directorAI_language"

var ErrUnsupportedLanguage = errors.New("unsupported language")

var matcher = language.NewMatcher([]language.Tag{language.French, language.English})

// Context holds the process-wide active language. It is created once at
// startup and shared by every consumer of display text.
type Context struct {
	mu   sync.RWMutex
	lang Language
	kv   store.KV
}

// NewContext resolves the initial language: stored value, then the system
// locale, then DefaultLanguage. A foreign stored value counts as absent.
func NewContext(ctx context.Context, kv store.KV, locale string) *Context {
	c := &Context{lang: DefaultLanguage, kv: kv}
	if stored, ok := loadStored(ctx, kv); ok {
		c.lang = stored
		return c
	}
	c.lang = MatchLocale(locale)
	return c
}

func loadStored(ctx context.Context, kv store.KV) (Language, bool) {
	if kv == nil {
		return "", false
	}
	raw, err := kv.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Debug("language load failed", "error", err)
		}
		return "", false
	}
	var lang Language
	if err := json.Unmarshal([]byte(raw), &lang); err != nil {
		// older writers stored the bare tag
		lang = Language(strings.TrimSpace(raw))
	}
	if !lang.Valid() {
		return "", false
	}
	return lang, true
}

// MatchLocale maps a locale such as "en_US.UTF-8" or "en-GB" to a supported
// language. Only an English base maps to English; anything else is French.
func MatchLocale(locale string) Language {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return DefaultLanguage
	}
	tag, _, conf := matcher.Match(language.Make(locale))
	if conf == language.No {
		return DefaultLanguage
	}
	base, _ := tag.Base()
	if base.String() == string(English) {
		return English
	}
	return DefaultLanguage
}

// SystemLocale reads the POSIX locale environment in precedence order.
func SystemLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
	}
	return ""
}

func (c *Context) Language() Language {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// SetLanguage persists lang before switching to it.
func (c *Context) SetLanguage(ctx context.Context, lang Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	if c.kv != nil {
		raw, err := json.Marshal(lang)
		if err != nil {
			return fmt.Errorf("marshal language: %w", err)
		}
		if err := c.kv.Set(ctx, StorageKey, string(raw)); err != nil {
			return fmt.Errorf("save language: %w", err)
		}
	}
	c.mu.Lock()
	c.lang = lang
	c.mu.Unlock()
	return nil
}

func (c *Context) T(key string) string {
	return Lookup(c.Language(), key)
}

var _ Translator = (*Context)(nil)
