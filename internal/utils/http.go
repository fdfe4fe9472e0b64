package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrTrailingJSON = errors.New("unexpected data after JSON value")

// WriteJSON marshals data before touching w, so a value that cannot be
// encoded turns into a plain 500 instead of a half-written response.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// DecodeStrictJSON reads exactly one JSON value into dst. Unknown fields and
// anything after the value are errors.
func DecodeStrictJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("error decoding JSON: %w", ErrTrailingJSON)
	}
	return nil
}
