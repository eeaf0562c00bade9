package adaptor

import (
	"net/http"

	"cinema-salles/internal/dto/request"
	"cinema-salles/internal/usecase"
	"cinema-salles/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	minSeatingCapacity = 15
	maxSeatingCapacity = 30
)

type SalleHandler struct {
	service      usecase.SalleService
	log          *zap.Logger
	defaultLimit int
	// capacityRuleStatus answers a capacity update outside the seating range.
	capacityRuleStatus int
}

func NewSalleHandler(service usecase.SalleService, config *utils.Config, log *zap.Logger) *SalleHandler {
	status := http.StatusNotFound
	if config.Features.CapacityBadRequest {
		status = http.StatusBadRequest
	}

	return &SalleHandler{
		service:            service,
		log:                log.With(zap.String("handler", "salle")),
		defaultLimit:       config.App.PageLimit,
		capacityRuleStatus: status,
	}
}

// GetSalles handles GET /salles?page&limit&capacityMax
func (h *SalleHandler) GetSalles(w http.ResponseWriter, r *http.Request) {
	var req request.SalleListRequest
	fieldErrors := parseListQuery(r.URL.Query(), &req.ListRequest, "capacityMax", &req.CapacityMax)
	fieldErrors = append(fieldErrors, utils.ValidateStruct(req)...)
	if len(fieldErrors) > 0 {
		utils.ResponseValidation(w, fieldErrors)
		return
	}

	salles, err := h.service.ListSalles(r.Context(), req.Normalize(h.defaultLimit))
	if err != nil {
		handleServiceError(h.log, w, err, "list salles")
		return
	}

	utils.ResponseSuccess(w, salles)
}

// GetSalleByID handles GET /salles/{id}
func (h *SalleHandler) GetSalleByID(w http.ResponseWriter, r *http.Request) {
	salleID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	salle, err := h.service.GetSalleByID(r.Context(), salleID)
	if err != nil {
		handleServiceError(h.log, w, err, "get salle by ID")
		return
	}

	utils.ResponseSuccess(w, salle)
}

// CreateSalle handles POST /salles
func (h *SalleHandler) CreateSalle(w http.ResponseWriter, r *http.Request) {
	var req request.SalleRequest
	if err := decodeBody(r, &req, false); err != nil {
		respondBodyError(w, err)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidation(w, validationErrors)
		return
	}

	salle, err := h.service.CreateSalle(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create salle")
		return
	}

	utils.ResponseCreated(w, salle)
}

// UpdateSalle handles PATCH /salles/{id}
func (h *SalleHandler) UpdateSalle(w http.ResponseWriter, r *http.Request) {
	salleID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	var req request.SalleUpdateRequest
	if err := decodeBody(r, &req, true); err != nil {
		respondBodyError(w, err)
		return
	}
	req.ID = salleID

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidation(w, validationErrors)
		return
	}

	if !h.checkSeatingCapacity(w, req.Capacity) {
		return
	}

	salle, err := h.service.UpdateSalle(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update salle")
		return
	}

	utils.ResponseSuccess(w, salle)
}

// checkSeatingCapacity enforces the [15,30] seating range on updates, the
// same range creation enforces. An absent capacity is left to the service.
func (h *SalleHandler) checkSeatingCapacity(w http.ResponseWriter, capacity *int) bool {
	if capacity == nil || (*capacity >= minSeatingCapacity && *capacity <= maxSeatingCapacity) {
		return true
	}

	if h.capacityRuleStatus == http.StatusBadRequest {
		utils.ResponseValidation(w, []utils.FieldError{{
			Field:   "capacity",
			Message: `"capacity" must be between 15 and 30`,
		}})
		return false
	}

	utils.ResponseNotFound(w, "Capacity not good")
	return false
}

// DeleteSalle handles DELETE /salles/{id}
func (h *SalleHandler) DeleteSalle(w http.ResponseWriter, r *http.Request) {
	salleID, ok := pathID(w, chi.URLParam(r, "id"))
	if !ok {
		return
	}

	salle, err := h.service.DeleteSalle(r.Context(), salleID)
	if err != nil {
		handleServiceError(h.log, w, err, "delete salle")
		return
	}

	utils.ResponseSuccess(w, salle)
}
