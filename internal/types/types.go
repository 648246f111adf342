// Package types defines core domain types used throughout ryu.
package types

import (
	"fmt"
	"time"
)

// StatusUnknown is shown when the catalog does not report a status
const StatusUnknown = "N/A"

// Title holds the title variants reported by the catalog
type Title struct {
	Romaji  string `json:"romaji,omitempty"`
	English string `json:"english,omitempty"`
	Native  string `json:"native,omitempty"`
}

// FuzzyDate is a partial calendar date; any part may be absent
type FuzzyDate struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

// IsKnown reports whether the date has at least a year
func (d FuzzyDate) IsKnown() bool {
	return d.Year != nil
}

// String renders YYYY, YYYY-MM or YYYY-MM-DD depending on which parts are known
func (d FuzzyDate) String() string {
	if d.Year == nil {
		return StatusUnknown
	}
	s := fmt.Sprintf("%04d", *d.Year)
	if d.Month == nil {
		return s
	}
	s += fmt.Sprintf("-%02d", *d.Month)
	if d.Day == nil {
		return s
	}
	return s + fmt.Sprintf("-%02d", *d.Day)
}

// Character is the node referenced by a character edge
type Character struct {
	ID    int    `json:"id"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}

// CharacterEdge is a single character relationship of a media entry
type CharacterEdge struct {
	Role string    `json:"role,omitempty"`
	Node Character `json:"node"`
}

// Media is a catalog entry with every optional field already defaulted
type Media struct {
	ID           int             `json:"id"`
	Title        Title           `json:"title"`
	Description  string          `json:"description,omitempty"`
	CoverImage   string          `json:"cover_image,omitempty"`
	BannerImage  string          `json:"banner_image,omitempty"`
	AverageScore int             `json:"average_score"`
	Genres       []string        `json:"genres"`
	Episodes     int             `json:"episodes"`
	Status       string          `json:"status"`
	StartDate    FuzzyDate       `json:"start_date"`
	EndDate      FuzzyDate       `json:"end_date"`
	Characters   []CharacterEdge `json:"characters"`
}

// GetTitle returns the requested title variant with fallback to romaji,
// then english, then native
func (m *Media) GetTitle(variant string) string {
	switch variant {
	case "NATIVE", "JP":
		if m.Title.Native != "" {
			return m.Title.Native
		}
	case "ENGLISH", "EN":
		if m.Title.English != "" {
			return m.Title.English
		}
	}
	switch {
	case m.Title.Romaji != "":
		return m.Title.Romaji
	case m.Title.English != "":
		return m.Title.English
	}
	return m.Title.Native
}

// CatalogConfig holds catalog client settings
type CatalogConfig struct {
	Endpoint  string  `yaml:"endpoint"`
	RateLimit float64 `yaml:"rate_limit"` // Requests per second
	Timeout   int     `yaml:"timeout"`    // Seconds
}

// PathsConfig holds the directories ryu reads and writes
type PathsConfig struct {
	DataDir      string `yaml:"data_dir"`
	CacheDir     string `yaml:"cache_dir"`
	DownloadsDir string `yaml:"downloads_dir"`
	BackupDir    string `yaml:"backup_dir"`
}

// BackupRecord tracks an exported artifact in the backup registry
type BackupRecord struct {
	ID        string    `json:"id"`
	Path      string    `json:"path"`
	Keys      int       `json:"keys"`
	Timestamp time.Time `json:"timestamp"`
}

// ImportMode selects how a backup artifact is applied to the store
type ImportMode string

const (
	ImportReplace ImportMode = "replace"
	ImportMerge   ImportMode = "merge"
)

// PurgeTarget names the directory a purge operation works on
type PurgeTarget string

const (
	PurgeCache     PurgeTarget = "cache"
	PurgeDownloads PurgeTarget = "downloads"
)

// EventType represents the type of progress event
type EventType string

const (
	EventInfo      EventType = "info"
	EventProgress  EventType = "progress"
	EventSuccess   EventType = "success"
	EventWarning   EventType = "warning"
	EventError     EventType = "error"
	EventDataReset EventType = "data_reset"
)

// Event represents a progress event during operations
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
}

// EventHandler receives progress events during operations
type EventHandler func(Event)
