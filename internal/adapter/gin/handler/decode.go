package handler

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "rest-user-service/pkg/errors"
)

// DecodeFields reads a request body and decodes it into a mapping of field
// names to values. Only a JSON object is accepted: anything else (missing
// body, malformed JSON, a bare string or array) is a decode failure. The
// specifics of which fields are expected are up to the caller.
func DecodeFields(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return nil, apperrors.NewDecodeError("Invalid or missing User data", nil)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, apperrors.NewDecodeError("Invalid or missing User data", err)
	}
	if len(body) == 0 {
		return nil, apperrors.NewDecodeError("Invalid or missing User data", nil)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, apperrors.NewDecodeError("Invalid or missing User data", err)
	}

	return fields, nil
}
