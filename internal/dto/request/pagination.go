package request

import "cinema-salles/pkg/utils"

// ListRequest holds the pagination part of a listing query string.
type ListRequest struct {
	Page  *int `query:"page" validate:"omitempty,min=1"`
	Limit *int `query:"limit" validate:"omitempty,min=1"`
}

// Normalize fills absent page and limit with their defaults.
func (l ListRequest) Normalize(defaultLimit int) PageRequest {
	page := PageRequest{Page: 1, Limit: defaultLimit}
	if l.Page != nil {
		page.Page = *l.Page
	}
	if l.Limit != nil {
		page.Limit = *l.Limit
	}
	return page
}

// PageRequest is a validated listing with defaults applied. Max is the
// entity-specific inclusive upper bound, nil when not requested.
type PageRequest struct {
	Page  int
	Limit int
	Max   *int
}

func (p PageRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit)
}
