package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ParseOptionalInt reads an integer query parameter. A missing or empty
// parameter yields nil; anything that is not an integer is reported as a
// FieldError for key.
func ParseOptionalInt(values url.Values, key string) (*int, *FieldError) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &FieldError{Field: key, Message: fmt.Sprintf("%q must be a number", key)}
	}

	return &n, nil
}

// ParseID reads a numeric path id.
func ParseID(raw string) (int64, *FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, &FieldError{Field: "id", Message: `"id" is required`}
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &FieldError{Field: "id", Message: `"id" must be a number`}
	}

	return id, nil
}
