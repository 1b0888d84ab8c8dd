package models

const (
	SourceKindHTML = "html"
	SourceKindFeed = "feed"
)

// Source defines a site or feed the scraper pulls notices from.
type Source struct {
	Key      string `mapstructure:"key" json:"key"`
	Name     string `mapstructure:"name" json:"name"`
	URL      string `mapstructure:"url" json:"url"`
	Category string `mapstructure:"category" json:"category"`
	Kind     string `mapstructure:"kind" json:"kind"`
	// Selector picks notice links on html pages.
	Selector string `mapstructure:"selector" json:"selector,omitempty"`
}
