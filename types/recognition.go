package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Media types reported by the recognition service for a work item.
const (
	MediaTypeMovie = "movie"
	MediaTypeTV    = "tv"
)

// WorkItem is a single movie or show credited to the recognized subject
type WorkItem struct {
	Title      string `json:"title"`
	MediaType  string `json:"media_type"`
	PosterPath string `json:"poster_path,omitempty"`
	Overview   string `json:"overview,omitempty"`
}

// RecognitionResult is the parsed body of a /predict response.
// Every field is optional; absence means "not provided".
type RecognitionResult struct {
	Actor      string     `json:"actor,omitempty"`
	Confidence *float64   `json:"confidence,omitempty"`
	Movies     []WorkItem `json:"movies,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// FieldError reports a response field whose JSON type does not match the contract
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid recognition response: %v", e.Err)
	}
	return fmt.Sprintf("invalid recognition response field %q: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

var (
	errNotObject  = errors.New("expected a JSON object")
	errEmptyTitle = errors.New("work item has no title")
)

// Recognized reports whether the service identified a subject
func (r *RecognitionResult) Recognized() bool {
	return r != nil && strings.TrimSpace(r.Actor) != ""
}

// HasConfidence reports whether a confidence score was provided
func (r *RecognitionResult) HasConfidence() bool {
	return r != nil && r.Confidence != nil
}

// ServerError returns the trimmed error message reported by the service, if any
func (r *RecognitionResult) ServerError() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(r.Error)
}

// UnmarshalJSON decodes a response field by field so that a value of the wrong
// type is reported as a FieldError instead of leaking into the result.
// Unknown fields are ignored and null is treated as absent.
func (r *RecognitionResult) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return &FieldError{Err: errNotObject}
	}
	if fields == nil {
		return &FieldError{Err: errNotObject}
	}

	var out RecognitionResult
	if err := decodeField(fields, "actor", &out.Actor); err != nil {
		return err
	}
	var confidence float64
	if ok, err := decodeOptional(fields, "confidence", &confidence); err != nil {
		return err
	} else if ok {
		out.Confidence = &confidence
	}
	if err := decodeField(fields, "movies", &out.Movies); err != nil {
		return err
	}
	if err := decodeField(fields, "error", &out.Error); err != nil {
		return err
	}

	*r = out
	return nil
}

// UnmarshalJSON accepts either a work item object or a bare title string.
// The latter is what older versions of the service emit.
func (w *WorkItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var title string
		if err := json.Unmarshal(data, &title); err != nil {
			return err
		}
		*w = WorkItem{Title: title}
	} else {
		type workItem WorkItem
		var raw workItem
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		*w = WorkItem(raw)
	}

	if strings.TrimSpace(w.Title) == "" {
		return errEmptyTitle
	}
	return nil
}

func decodeField(fields map[string]json.RawMessage, name string, dst interface{}) error {
	_, err := decodeOptional(fields, name, dst)
	return err
}

func decodeOptional(fields map[string]json.RawMessage, name string, dst interface{}) (bool, error) {
	raw, ok := fields[name]
	if !ok || isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, &FieldError{Field: name, Err: err}
	}
	return true, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
