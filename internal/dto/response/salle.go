package response

import "cinema-salles/internal/data/entity"

type SalleResponse struct {
	ID          int64  `json:"salle_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Capacity    int    `json:"capacity"`
}

// SalleListResponse keeps the capitalised "Salles" key existing clients read.
type SalleListResponse struct {
	Salles     []SalleResponse `json:"Salles"`
	TotalCount int64           `json:"totalCount"`
}

func SalleToResponse(salle *entity.Salle) SalleResponse {
	return SalleResponse{
		ID:          salle.ID,
		Name:        salle.Name,
		Description: salle.Description,
		Type:        salle.Type,
		Capacity:    salle.Capacity,
	}
}

func NewSalleListResponse(salles []*entity.Salle, total int64) *SalleListResponse {
	items := make([]SalleResponse, len(salles))
	for i, salle := range salles {
		items[i] = SalleToResponse(salle)
	}
	return &SalleListResponse{Salles: items, TotalCount: total}
}
