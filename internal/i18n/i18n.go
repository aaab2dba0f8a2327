// Package i18n holds the display strings of the site and the admin API.
//
// Catalogs are YAML files under locales/, one per language, loaded into an
// x/text message catalog. Missing keys fall back to the default language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// LangParam is the query parameter that overrides Accept-Language.
const LangParam = "lang"

//go:embed locales/*.yaml
var embeddedLocales embed.FS

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle is the set of loaded catalogs.
type Bundle struct {
	catalog   *catalog.Builder
	supported []language.Tag // default first
	matcher   language.Matcher
	keys      map[language.Tag]map[string]struct{}
}

// Load reads the embedded catalogs. defaultLang must be one of them.
func Load(defaultLang string) (*Bundle, error) {
	return LoadFromFS(embeddedLocales, defaultLang)
}

// LoadFromFS reads every locales/*.yaml file of fsys.
func LoadFromFS(fsys fs.FS, defaultLang string) (*Bundle, error) {
	def, err := language.Parse(defaultLang)
	if err != nil {
		return nil, fmt.Errorf("invalid default language %q: %w", defaultLang, err)
	}

	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale catalogs found")
	}
	sort.Strings(paths)

	b := &Bundle{
		catalog: catalog.NewBuilder(catalog.Fallback(def)),
		keys:    make(map[language.Tag]map[string]struct{}),
	}

	var others []language.Tag
	foundDefault := false
	for _, path := range paths {
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", path, err)
		}
		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", path, err)
		}
		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("catalog %s: invalid locale %q: %w", path, file.Locale, err)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: no messages", path)
		}

		keys := make(map[string]struct{}, len(file.Messages))
		for key, msg := range file.Messages {
			if err := b.catalog.SetString(tag, key, msg); err != nil {
				return nil, fmt.Errorf("catalog %s: key %q: %w", path, key, err)
			}
			keys[key] = struct{}{}
		}
		b.keys[tag] = keys

		if tag == def {
			foundDefault = true
		} else {
			others = append(others, tag)
		}
	}
	if !foundDefault {
		return nil, fmt.Errorf("default language %s has no catalog", def)
	}

	// The matcher falls back to its first tag.
	b.supported = append([]language.Tag{def}, others...)
	b.matcher = language.NewMatcher(b.supported)
	return b, nil
}

// Default returns the default language.
func (b *Bundle) Default() language.Tag {
	return b.supported[0]
}

// Supported returns the languages with a catalog, default first.
func (b *Bundle) Supported() []language.Tag {
	return append([]language.Tag(nil), b.supported...)
}

// Missing returns the keys defined for the default language but not for tag.
func (b *Bundle) Missing(tag language.Tag) []string {
	have := b.keys[tag]
	var out []string
	for key := range b.keys[b.Default()] {
		if _, ok := have[key]; !ok {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

// Match picks the best supported language for a list of preferences, each
// either a single tag or an Accept-Language header value. The first
// preference that parses wins.
func (b *Bundle) Match(prefs ...string) language.Tag {
	for _, pref := range prefs {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := b.matcher.Match(tags...)
		if conf == language.No {
			continue
		}
		return b.supported[idx]
	}
	return b.Default()
}

// ForRequest returns a printer for the language requested by r: the lang
// query parameter first, then Accept-Language.
func (b *Bundle) ForRequest(r *http.Request) *Printer {
	if r == nil {
		return b.Printer(b.Default())
	}
	return b.Printer(b.Match(r.URL.Query().Get(LangParam), r.Header.Get("Accept-Language")))
}

// Printer returns a printer for tag.
func (b *Bundle) Printer(tag language.Tag) *Printer {
	return &Printer{
		tag: tag,
		p:   message.NewPrinter(tag, message.Catalog(b.catalog)),
	}
}

// Printer formats catalog messages for one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// T formats the message stored under key. Unknown keys are returned as is.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Lang returns the BCP 47 tag of the printer's language.
func (p *Printer) Lang() string {
	return p.tag.String()
}
