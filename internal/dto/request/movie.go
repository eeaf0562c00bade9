package request

type MovieRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Duration    *int   `json:"duration" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
}

type MovieUpdateRequest struct {
	ID       int64 `json:"-"`
	Duration *int  `json:"duration,omitempty"`
}

type MovieListRequest struct {
	ListRequest
	DurationMax *int `query:"durationMax" validate:"omitempty,min=1"`
}

func (r MovieListRequest) Normalize(defaultLimit int) PageRequest {
	page := r.ListRequest.Normalize(defaultLimit)
	page.Max = r.DurationMax
	return page
}
