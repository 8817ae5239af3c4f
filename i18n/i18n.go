package i18n

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

var translations = make(map[string]map[string]string)
var DefaultLang = "en"

// LoadTranslations reads every <lang>.json catalog in dir.
func LoadTranslations(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return err
		}
		var t map[string]string
		if err := json.Unmarshal(data, &t); err != nil {
			return err
		}
		lang := strings.TrimSuffix(e.Name(), ".json")
		translations[lang] = t
	}
	return nil
}

// T looks a key up for lang, falling back to English and then to the key
// itself. Unloaded catalogs therefore degrade to key strings, not errors.
func T(lang, key string) string {
	if t, ok := translations[lang]; ok {
		if val, ok := t[key]; ok {
			return val
		}
	}
	if lang != DefaultLang {
		return T(DefaultLang, key)
	}
	return key
}

// DetectLanguage picks a loaded language from the Accept-Language header.
func DetectLanguage(r *http.Request) string {
	accept := r.Header.Get("Accept-Language")
	if accept != "" {
		// Example: fr-CH, fr;q=0.9, en;q=0.8, de;q=0.7, *;q=0.5
		parts := strings.Split(accept, ",")
		for _, part := range parts {
			lang := strings.TrimSpace(strings.Split(part, ";")[0])
			if len(lang) >= 2 {
				lang = lang[:2]
				if _, ok := translations[lang]; ok {
					return lang
				}
			}
		}
	}

	return DefaultLang
}
