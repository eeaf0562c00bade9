package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"reflect"

	"cinema-salles/internal/dto/request"
	"cinema-salles/internal/usecase"
	"cinema-salles/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Salle *SalleHandler
	Movie *MovieHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Salle: NewSalleHandler(service.Salle, config, log),
		Movie: NewMovieHandler(service.Movie, config, log),
	}
}

const invalidBodyMessage = "Invalid request body"

var errInvalidBody = errors.New("invalid request body")

// decodeBody reads a JSON object into dst. Unknown fields are rejected; an
// empty body leaves dst untouched when allowEmpty is set. A value of the wrong
// JSON type comes back as *json.UnmarshalTypeError.
func decodeBody(r *http.Request, dst any, allowEmpty bool) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return typeErr
		}
		return errInvalidBody
	}
	return nil
}

// respondBodyError answers a decodeBody failure: a mistyped field becomes a
// field error, anything else a plain 400.
func respondBodyError(w http.ResponseWriter, err error) {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		utils.ResponseValidation(w, []utils.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%q must be a %s", typeErr.Field, jsonKind(typeErr.Type)),
		}})
		return
	}
	utils.ResponseBadRequest(w, invalidBodyMessage)
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return "valid " + t.Kind().String()
	}
}

// handleServiceError maps a service outcome to a response. Anything that is
// not a known outcome is logged and hidden behind a generic 500.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	var notFound *usecase.NotFoundError
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &notFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, notFound.Error())

	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseValidation(w, validationErr.Errors)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}

// pathID validates the {id} path parameter, answering 400 itself on failure.
func pathID(w http.ResponseWriter, raw string) (int64, bool) {
	id, fe := utils.ParseID(raw)
	if fe != nil {
		utils.ResponseValidation(w, []utils.FieldError{*fe})
		return 0, false
	}
	return id, true
}

// parseListQuery reads page, limit and the entity's upper-bound filter from
// the query string. Values that are not integers are reported, not dropped.
func parseListQuery(values url.Values, list *request.ListRequest, boundKey string, bound **int) []utils.FieldError {
	var fieldErrors []utils.FieldError

	for _, param := range []struct {
		key string
		dst **int
	}{
		{"page", &list.Page},
		{"limit", &list.Limit},
		{boundKey, bound},
	} {
		value, fe := utils.ParseOptionalInt(values, param.key)
		if fe != nil {
			fieldErrors = append(fieldErrors, *fe)
			continue
		}
		*param.dst = value
	}

	return fieldErrors
}
