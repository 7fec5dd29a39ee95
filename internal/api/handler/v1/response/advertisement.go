package response

import "github.com/danceapp/events-api/internal/domain"

type Advertisement struct {
	UUID        string `json:"uuid"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	LinkURL     string `json:"link_url"`
}

func NewAdvertisements(ads []domain.Advertisement) []Advertisement {
	out := make([]Advertisement, 0, len(ads))
	for _, a := range ads {
		out = append(out, Advertisement{
			UUID:        a.UUID,
			Title:       a.Title,
			Category:    a.Category,
			Description: a.Description,
			ImageURL:    a.ImageURL,
			LinkURL:     a.LinkURL,
		})
	}
	return out
}
