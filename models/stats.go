package models

import "time"

type Stats struct {
	TotalUpdates int64            `json:"total_updates"`
	HotUpdates   int64            `json:"hot_updates"`
	ByCategory   map[string]int64 `json:"by_category"`
	LastUpdated  *time.Time       `json:"last_updated"`
	SourcesCount int              `json:"sources_count"`
	Views        map[string]int64 `json:"views,omitempty"`
}
