package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %q, want :8080", cfg.ListenPort)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout)
	}
	if cfg.CacheKey != "mainra-games" {
		t.Errorf("CacheKey = %q, want mainra-games", cfg.CacheKey)
	}
	if cfg.FeaturedLimit != 3 {
		t.Errorf("FeaturedLimit = %d, want 3", cfg.FeaturedLimit)
	}
	if want := []string{"static", "cache"}; !reflect.DeepEqual(cfg.AdminSources, want) {
		t.Errorf("AdminSources = %v, want %v", cfg.AdminSources, want)
	}
	if want := []string{"static", "cache", "sample"}; !reflect.DeepEqual(cfg.PublicSources, want) {
		t.Errorf("PublicSources = %v, want %v", cfg.PublicSources, want)
	}
	if cfg.UseRedis() {
		t.Error("UseRedis() should be false without SHOWCASE_REDIS_ADDR")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOWCASE_LISTEN_PORT", ":9090")
	t.Setenv("SHOWCASE_RELOAD_INTERVAL", "10m")
	t.Setenv("SHOWCASE_PUBLIC_SOURCES", "cache, sample")
	t.Setenv("SHOWCASE_REDIS_ADDR", "localhost:6379")
	t.Setenv("SHOWCASE_ALLOWED_HOSTS", `"showcase.example.com", admin.example.com`)
	t.Setenv("SHOWCASE_ALLOWED_CIDRS", "10.0.0.0/8,,192.168.1.7")
	t.Setenv("SHOWCASE_ADMIN_SOURCES", "Cache,static,cache")
	t.Setenv("SHOWCASE_DOCUMENT_PATH", "https://cdn.example.com/games-data.json")

	cfg := Load()

	if cfg.ListenPort != ":9090" {
		t.Errorf("ListenPort = %q, want :9090", cfg.ListenPort)
	}
	if cfg.ReloadInterval != 10*time.Minute {
		t.Errorf("ReloadInterval = %v, want 10m", cfg.ReloadInterval)
	}
	if want := []string{"cache", "sample"}; !reflect.DeepEqual(cfg.PublicSources, want) {
		t.Errorf("PublicSources = %v, want %v", cfg.PublicSources, want)
	}
	if !cfg.UseRedis() {
		t.Error("UseRedis() should be true")
	}
	if want := []string{"showcase.example.com", "admin.example.com"}; !reflect.DeepEqual(cfg.AllowedHosts, want) {
		t.Errorf("AllowedHosts = %v, want %v", cfg.AllowedHosts, want)
	}
	if want := []string{"10.0.0.0/8", "192.168.1.7"}; !reflect.DeepEqual(cfg.AllowedCIDRS, want) {
		t.Errorf("AllowedCIDRS = %v, want %v", cfg.AllowedCIDRS, want)
	}
	if want := []string{"cache", "static"}; !reflect.DeepEqual(cfg.AdminSources, want) {
		t.Errorf("AdminSources = %v, want %v", cfg.AdminSources, want)
	}
	if !cfg.IsRemoteDocument() {
		t.Error("IsRemoteDocument() should be true for an https location")
	}
}

func TestLoadPanicsOnInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown source", key: "SHOWCASE_ADMIN_SOURCES", value: "static,database"},
		{name: "empty sources", key: "SHOWCASE_PUBLIC_SOURCES", value: " , "},
		{name: "bad duration", key: "SHOWCASE_SHUTDOWN_TIMEOUT", value: "soon"},
		{name: "zero reload interval", key: "SHOWCASE_RELOAD_INTERVAL", value: "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("Load() should have panicked for %s=%q", tt.key, tt.value)
				}
			}()
			Load()
		})
	}
}

func TestParseSources(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
		wantErr  bool
	}{
		{name: "ordered list", input: []string{"static", "cache", "sample"}, expected: []string{"static", "cache", "sample"}},
		{name: "duplicates dropped", input: []string{"cache", " cache ", "static"}, expected: []string{"cache", "static"}},
		{name: "case insensitive", input: []string{"Static"}, expected: []string{"static"}},
		{name: "unknown", input: []string{"static", "ftp"}, wantErr: true},
		{name: "blank entries only", input: []string{" ", ""}, wantErr: true},
		{name: "empty", input: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSources(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSources() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("parseSources() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCleanList(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil", input: nil, expected: nil},
		{name: "single value", input: []string{"value1"}, expected: []string{"value1"}},
		{name: "values with spaces", input: []string{" value1 ", " value2 "}, expected: []string{"value1", "value2"}},
		{name: "quoted values", input: []string{`"value1"`, ` 'value2'`}, expected: []string{"value1", "value2"}},
		{name: "empty parts skipped", input: []string{"value1", "", "value2"}, expected: []string{"value1", "value2"}},
		{name: "only blanks", input: []string{" ", ""}, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cleanList(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("cleanList() = %v, want %v", got, tt.expected)
			}
		})
	}
}
