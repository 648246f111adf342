package catalog

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/mydehq/ryu/internal/types"
)

// errNoMedia is the cause carried by a malformed response without data.Media
var errNoMedia = errors.New("response has no data.Media object")

type graphQLResponse struct {
	Data *struct {
		Media *mediaPayload `json:"Media"`
	} `json:"data"`
	Errors []graphQLError `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type mediaPayload struct {
	ID    *int `json:"id"`
	Title *struct {
		Romaji  *string `json:"romaji"`
		English *string `json:"english"`
		Native  *string `json:"native"`
	} `json:"title"`
	Description *string `json:"description"`
	CoverImage  *struct {
		Large *string `json:"large"`
	} `json:"coverImage"`
	BannerImage  *string      `json:"bannerImage"`
	AverageScore *int         `json:"averageScore"`
	Genres       []string     `json:"genres"`
	Episodes     *int         `json:"episodes"`
	Status       *string      `json:"status"`
	StartDate    *datePayload `json:"startDate"`
	EndDate      *datePayload `json:"endDate"`
	Characters   *struct {
		Edges []struct {
			Role *string `json:"role"`
			Node *struct {
				ID   *int `json:"id"`
				Name *struct {
					Full *string `json:"full"`
				} `json:"name"`
				Image *struct {
					Large *string `json:"large"`
				} `json:"image"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"characters"`
}

type datePayload struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

// Parse decodes a catalog response body into a Media record.
// A body without a data.Media object is malformed and yields no record.
func Parse(body []byte) (*types.Media, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, types.ErrFetch{Kind: types.FetchEmptyResponse}
	}

	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, types.ErrFetch{Kind: types.FetchMalformedResponse, Err: err}
	}
	if resp.Data == nil || resp.Data.Media == nil {
		return nil, types.ErrFetch{Kind: types.FetchMalformedResponse, Err: errNoMedia}
	}

	return resp.Data.Media.toMedia(), nil
}

func (p *mediaPayload) toMedia() *types.Media {
	m := &types.Media{
		ID:           deref(p.ID),
		Description:  StripHTML(deref(p.Description)),
		BannerImage:  deref(p.BannerImage),
		AverageScore: deref(p.AverageScore),
		Genres:       []string{},
		Episodes:     deref(p.Episodes),
		Status:       types.StatusUnknown,
		StartDate:    p.StartDate.toFuzzy(),
		EndDate:      p.EndDate.toFuzzy(),
		Characters:   []types.CharacterEdge{},
	}

	if p.Title != nil {
		m.Title = types.Title{
			Romaji:  deref(p.Title.Romaji),
			English: deref(p.Title.English),
			Native:  deref(p.Title.Native),
		}
	}
	if p.CoverImage != nil {
		m.CoverImage = deref(p.CoverImage.Large)
	}
	if p.Genres != nil {
		m.Genres = append(m.Genres, p.Genres...)
	}
	if p.Status != nil && *p.Status != "" {
		m.Status = *p.Status
	}

	if p.Characters != nil {
		for _, e := range p.Characters.Edges {
			edge := types.CharacterEdge{Role: deref(e.Role)}
			if e.Node != nil {
				edge.Node.ID = deref(e.Node.ID)
				if e.Node.Name != nil {
					edge.Node.Name = deref(e.Node.Name.Full)
				}
				if e.Node.Image != nil {
					edge.Node.Image = deref(e.Node.Image.Large)
				}
			}
			m.Characters = append(m.Characters, edge)
		}
	}

	return m
}

// toFuzzy treats a null date object and a null year alike: the bound is absent
func (d *datePayload) toFuzzy() types.FuzzyDate {
	if d == nil || d.Year == nil {
		return types.FuzzyDate{}
	}
	return types.FuzzyDate{Year: d.Year, Month: d.Month, Day: d.Day}
}

// firstError returns the first GraphQL error message in body, if any
func firstError(body []byte) string {
	var resp graphQLResponse
	if err := json.Unmarshal(body, &resp); err != nil || len(resp.Errors) == 0 {
		return ""
	}
	return resp.Errors[0].Message
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
