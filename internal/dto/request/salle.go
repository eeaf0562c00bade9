package request

type SalleRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Capacity    *int   `json:"capacity" validate:"required,min=15,max=30"`
}

// SalleUpdateRequest is the merge of the path id and the PATCH body.
// Capacity is only checked for a lower bound here; the [15,30] seating rule
// is applied by the handler.
type SalleUpdateRequest struct {
	ID       int64 `json:"-"`
	Capacity *int  `json:"capacity,omitempty" validate:"omitempty,min=1"`
}

type SalleListRequest struct {
	ListRequest
	CapacityMax *int `query:"capacityMax" validate:"omitempty,min=1"`
}

func (r SalleListRequest) Normalize(defaultLimit int) PageRequest {
	page := r.ListRequest.Normalize(defaultLimit)
	page.Max = r.CapacityMax
	return page
}
