package document

import "time"

// sampleFile is the YAML layout of the built-in sample content.
type sampleFile struct {
	Games     []sampleGame     `yaml:"games"`
	Highlight *sampleHighlight `yaml:"highlight"`
}

type sampleGame struct {
	ID          int64    `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Screenshots []string `yaml:"screenshots,omitempty"`
	PlayLink    string   `yaml:"play_link"`
	Category    string   `yaml:"category,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	ReleaseDate string   `yaml:"release_date,omitempty"`
	Featured    bool     `yaml:"featured"`
	Platform    string   `yaml:"platform,omitempty"`
	Rating      string   `yaml:"rating,omitempty"`
}

type sampleHighlight struct {
	GameID            int64             `yaml:"game_id"`
	CustomTitle       string            `yaml:"custom_title"`
	CustomDescription string            `yaml:"custom_description"`
	YoutubeURL        string            `yaml:"youtube_url"`
	Stats             map[string]string `yaml:"stats"`
	Active            bool              `yaml:"active"`
	LastUpdated       time.Time         `yaml:"last_updated"`
}
