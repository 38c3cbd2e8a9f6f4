// Package i18n provides the bilingual (English/Arabic) message catalog for
// user-visible notices.
package i18n

import (
	"embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Supported language codes.
const (
	LangEN = "en"
	LangAR = "ar"
)

//go:embed active.*.toml
var translationsFS embed.FS

// Translator resolves message ids to localized text.
type Translator struct {
	bundle *i18n.Bundle
}

// NewTranslator loads the embedded translation files. English is the
// fallback language.
func NewTranslator() (*Translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, name := range []string{"active.en.toml", "active.ar.toml"} {
		if _, err := bundle.LoadMessageFileFS(translationsFS, name); err != nil {
			return nil, fmt.Errorf("load translations %s: %w", name, err)
		}
	}

	return &Translator{bundle: bundle}, nil
}

// T returns the message for id in the given language, falling back to
// English and finally to the id itself.
func (t *Translator) T(lang, id string) string {
	localizer := i18n.NewLocalizer(t.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// IsSupported reports whether the language code is one the UI offers.
func IsSupported(lang string) bool {
	return lang == LangEN || lang == LangAR
}

// IsRTL reports whether the language renders right-to-left.
func IsRTL(lang string) bool {
	return lang == LangAR
}
