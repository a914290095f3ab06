package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	apperrors "eventhub/pkg/errors"
	"eventhub/pkg/sanitizer"
)

// LimitNormalizer clamps a requested page size.
type LimitNormalizer interface {
	NormalizeListLimit(limit int) int
}

// ParseLimit reads the "limit" query parameter. A missing or non-positive
// value yields the default; anything non-numeric is rejected.
func ParseLimit(r *http.Request, normalizer LimitNormalizer) (int, error) {
	limit := 0
	if s := strings.TrimSpace(r.URL.Query().Get("limit")); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	return normalizer.NormalizeListLimit(limit), nil
}

// ParseOptionalBool returns nil when the parameter is absent or empty.
func ParseOptionalBool(r *http.Request, name string) (*bool, error) {
	s := strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name)))
	if s == "" {
		return nil, nil
	}

	var v bool
	switch s {
	case "true", "1", "yes", "on":
		v = true
	case "false", "0", "no", "off":
		v = false
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, s))
	}
	return &v, nil
}

// QueryText returns a trimmed, normalized query parameter.
func QueryText(r *http.Request, name string) string {
	return sanitizer.NormalizeQuery(r.URL.Query().Get(name))
}

// DecodeJSON decodes a single JSON object from the request body into dst.
// Unknown fields are ignored.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperrors.InvalidInput("Request body is required")
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			return apperrors.New(apperrors.CodeInvalidInput, "Request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, io.EOF):
			return apperrors.InvalidInput("Request body is required")
		default:
			return apperrors.InvalidInput("Invalid JSON body")
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return apperrors.InvalidInput("Request body must contain a single JSON object")
	}
	return nil
}
