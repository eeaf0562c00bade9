package utils

import (
	"encoding/json"
	"net/http"
)

const internalErrorMessage = "Internal error"

// ErrorBody is the payload of every non-2xx response.
type ErrorBody struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

// ResponseJSON writes payload as JSON with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// ------------- Error responses -------------

// ResponseError writes {"error": message} with the given status code.
func ResponseError(w http.ResponseWriter, code int, message string) {
	ResponseJSON(w, code, ErrorBody{Error: message})
}

// returns 400 Bad Request with the field level failures
func ResponseValidation(w http.ResponseWriter, errs []FieldError) {
	ResponseJSON(w, http.StatusBadRequest, ErrorBody{Error: "Validation failed", Details: errs})
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusBadRequest, message)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseError(w, http.StatusNotFound, message)
}

// returns 500 Internal Server Error; the cause never reaches the client
func ResponseInternalError(w http.ResponseWriter) {
	ResponseError(w, http.StatusInternalServerError, internalErrorMessage)
}
