package catalog

import "fmt"

// mediaQuery is the GraphQL document for a single anime entry.
// It must not contain digits so the rendered id is the only number in it.
const mediaQuery = `query {
  Media(id: %d, type: ANIME) {
    id
    title {
      romaji
      english
      native
    }
    description(asHtml: false)
    coverImage {
      large
    }
    bannerImage
    averageScore
    genres
    episodes
    status
    startDate {
      year
      month
      day
    }
    endDate {
      year
      month
      day
    }
    characters {
      edges {
        role
        node {
          id
          name {
            full
          }
          image {
            large
          }
        }
      }
    }
  }
}`

// BuildQuery renders the catalog query for mediaID
func BuildQuery(mediaID int) string {
	return fmt.Sprintf(mediaQuery, mediaID)
}
