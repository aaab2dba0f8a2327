package i18n

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"golang.org/x/text/language"
)

func mustLoad(t *testing.T, lang string) *Bundle {
	t.Helper()
	b, err := Load(lang)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", lang, err)
	}
	return b
}

func TestLoadEmbedded(t *testing.T) {
	b := mustLoad(t, "en")

	if b.Default() != language.English {
		t.Errorf("Default() = %v, want en", b.Default())
	}
	if got := len(b.Supported()); got != 2 {
		t.Errorf("Supported() has %d languages, want 2", got)
	}
	for _, tag := range b.Supported() {
		if missing := b.Missing(tag); len(missing) > 0 {
			t.Errorf("catalog %s misses keys %v", tag, missing)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		fs   fstest.MapFS
		lang string
	}{
		{name: "no catalogs", fs: fstest.MapFS{}, lang: "en"},
		{
			name: "default without catalog",
			fs:   fstest.MapFS{"locales/id.yaml": {Data: []byte("locale: id\nmessages:\n  a: b\n")}},
			lang: "en",
		},
		{
			name: "malformed yaml",
			fs:   fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: [en")}},
			lang: "en",
		},
		{
			name: "empty messages",
			fs:   fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: en\n")}},
			lang: "en",
		},
		{
			name: "invalid default",
			fs:   fstest.MapFS{"locales/en.yaml": {Data: []byte("locale: en\nmessages:\n  a: b\n")}},
			lang: "not a tag!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadFromFS(tt.fs, tt.lang); err == nil {
				t.Error("LoadFromFS() should fail")
			}
		})
	}
}

func TestMatch(t *testing.T) {
	b := mustLoad(t, "en")
	id := language.MustParse("id")

	tests := []struct {
		name  string
		prefs []string
		want  language.Tag
	}{
		{name: "no preference", prefs: nil, want: language.English},
		{name: "indonesian header", prefs: []string{"", "id-ID,id;q=0.9,en;q=0.8"}, want: id},
		{name: "query wins over header", prefs: []string{"en", "id"}, want: language.English},
		{name: "unsupported falls through", prefs: []string{"fr", "id"}, want: id},
		{name: "unsupported only", prefs: []string{"fr-FR"}, want: language.English},
		{name: "garbage", prefs: []string{"!!"}, want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Match(tt.prefs...); got != tt.want {
				t.Errorf("Match(%v) = %v, want %v", tt.prefs, got, tt.want)
			}
		})
	}
}

func TestPrinter(t *testing.T) {
	b := mustLoad(t, "en")

	en := b.Printer(language.English)
	if got := en.T("notify.highlight_saved", "Space Defender"); got != "Space Defender is now the featured game! Don't forget to export the JSON." {
		t.Errorf("en T() = %q", got)
	}

	id := b.Printer(language.MustParse("id"))
	if got := id.T("admin.export.label_dirty"); got != "Export JSON (Ada Perubahan)" {
		t.Errorf("id T() = %q", got)
	}
	if got := id.T("admin.screenshots", 2); got != "2 gambar" {
		t.Errorf("id T() with args = %q", got)
	}
	if got := en.T("no.such.key"); got != "no.such.key" {
		t.Errorf("unknown key = %q, want the key itself", got)
	}
}

func TestForRequest(t *testing.T) {
	b := mustLoad(t, "en")

	r := httptest.NewRequest("GET", "/games?lang=id", nil)
	r.Header.Set("Accept-Language", "en-US")
	if got := b.ForRequest(r).Lang(); got != "id" {
		t.Errorf("lang param: Lang() = %q, want id", got)
	}

	r = httptest.NewRequest("GET", "/games", nil)
	r.Header.Set("Accept-Language", "id")
	if got := b.ForRequest(r).T("nav.home"); got != "Beranda" {
		t.Errorf("Accept-Language: nav.home = %q, want Beranda", got)
	}

	if got := b.ForRequest(nil).Lang(); got != "en" {
		t.Errorf("nil request: Lang() = %q, want en", got)
	}
}
