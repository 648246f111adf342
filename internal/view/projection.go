// Package view maps catalog records to the strings shown on the detail screen.
package view

import (
	"fmt"
	"strings"

	"github.com/mydehq/ryu/internal/types"
)

// Section headers of the detail screen
const (
	SectionInfo       = "Anime Information"
	SectionCharacters = "Characters"
)

// CharacterRow is one entry of the character list
type CharacterRow struct {
	Name  string
	Role  string
	Image string
}

// Detail holds every display string of the detail screen
type Detail struct {
	MediaID     int
	Title       string
	Description string
	CoverImage  string
	BannerImage string
	Genres      string
	Score       string
	Episodes    string
	Status      string
	Aired       string
	Characters  []CharacterRow
}

// Project maps m to display strings, substituting defaults for absent fields
func Project(m *types.Media) Detail {
	d := Detail{
		MediaID:     m.ID,
		Title:       m.GetTitle(""),
		Description: m.Description,
		CoverImage:  m.CoverImage,
		BannerImage: m.BannerImage,
		Genres:      "Genres: " + strings.Join(m.Genres, ", "),
		Score:       fmt.Sprintf("Score: %d", m.AverageScore),
		Episodes:    fmt.Sprintf("Episodes: %d", m.Episodes),
		Status:      "Status: " + statusOrDefault(m.Status),
		Aired:       Aired(m.StartDate, m.EndDate),
		Characters:  make([]CharacterRow, 0, len(m.Characters)),
	}

	for _, e := range m.Characters {
		d.Characters = append(d.Characters, CharacterRow{
			Name:  e.Node.Name,
			Role:  e.Role,
			Image: e.Node.Image,
		})
	}
	return d
}

// Aired renders the airing range; if either bound is absent the range is unknown
func Aired(start, end types.FuzzyDate) string {
	if !start.IsKnown() || !end.IsKnown() {
		return "Aired: " + types.StatusUnknown
	}
	return fmt.Sprintf("Aired: %s to %s", start, end)
}

// InfoLines returns the information section in display order
func (d Detail) InfoLines() []string {
	return []string{d.Genres, d.Score, d.Episodes, d.Status, d.Aired}
}

func statusOrDefault(s string) string {
	if s == "" {
		return types.StatusUnknown
	}
	return s
}
