package editor

import (
	"fmt"
	"log"

	"github.com/leonelquinteros/gotext"
	"github.com/milk9111/isoroom/assets"
)

const fallbackLanguage = "en"

// Hints translates the editor's status and help lines.
type Hints struct {
	Language string
	po       *gotext.Po
}

// LoadHints reads locales/<lang>.po, falling back to English.
func LoadHints(lang string) (*Hints, error) {
	if lang == "" {
		lang = fallbackLanguage
	}
	data, err := assets.LoadFile("locales/" + lang + ".po")
	if err != nil && lang != fallbackLanguage {
		log.Printf("editor: load locale %s: %v", lang, err)
		lang = fallbackLanguage
		data, err = assets.LoadFile("locales/" + lang + ".po")
	}
	if err != nil {
		return nil, fmt.Errorf("editor: load locale %s: %w", lang, err)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return &Hints{Language: lang, po: po}, nil
}

// Get returns the translation of key. A nil Hints formats the key itself.
func (h *Hints) Get(key string, vars ...any) string {
	if h == nil || h.po == nil {
		if len(vars) == 0 {
			return key
		}
		return fmt.Sprintf("%s %v", key, vars)
	}
	return h.po.Get(key, vars...)
}

// ModeName is the translated label of m.
func (h *Hints) ModeName(m Mode) string {
	return h.Get("mode." + m.String())
}
