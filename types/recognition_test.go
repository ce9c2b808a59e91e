package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestWorkItemMediaTypes(t *testing.T) {
	body := `{"movies": [{"title": "Forrest Gump", "media_type": "movie"}, {"title": "Band of Brothers", "media_type": "tv"}]}`

	var r RecognitionResult
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Movies) != 2 || r.Movies[0].MediaType != MediaTypeMovie || r.Movies[1].MediaType != MediaTypeTV {
		t.Fatalf("movies = %+v", r.Movies)
	}
}

func TestRecognitionResultUnmarshal(t *testing.T) {
	body := `{"actor": "Tom Hanks", "confidence": 92.5, "movies": [{"title": "Forrest Gump", "media_type": "movie"}]}`

	var r RecognitionResult
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Actor != "Tom Hanks" || !r.Recognized() {
		t.Fatalf("actor = %q, recognized = %v", r.Actor, r.Recognized())
	}
	if !r.HasConfidence() || *r.Confidence != 92.5 {
		t.Fatalf("confidence = %v", r.Confidence)
	}
	if len(r.Movies) != 1 || r.Movies[0].Title != "Forrest Gump" || r.Movies[0].MediaType != MediaTypeMovie {
		t.Fatalf("movies = %+v", r.Movies)
	}
	if r.ServerError() != "" {
		t.Fatalf("unexpected server error %q", r.ServerError())
	}
}

func TestRecognitionResultOptionalFields(t *testing.T) {
	cases := []struct {
		name           string
		body           string
		wantActor      string
		wantConfidence bool
		wantMovies     int
		wantError      string
	}{
		{"empty object", `{}`, "", false, 0, ""},
		{"error only", `{"error": "No face detected"}`, "", false, 0, "No face detected"},
		{"nulls are absent", `{"actor": null, "confidence": null, "movies": null, "error": null}`, "", false, 0, ""},
		{"zero confidence is present", `{"actor": "Unknown", "movies": [], "confidence": 0.0}`, "Unknown", true, 0, ""},
		{"unknown fields ignored", `{"actor": "A", "extra": {"nested": true}}`, "A", false, 0, ""},
		{"legacy title strings", `{"actor": "A", "movies": ["Big", "Splash"]}`, "A", false, 2, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r RecognitionResult
			if err := json.Unmarshal([]byte(tc.body), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Actor != tc.wantActor {
				t.Errorf("actor = %q, want %q", r.Actor, tc.wantActor)
			}
			if r.HasConfidence() != tc.wantConfidence {
				t.Errorf("has confidence = %v, want %v", r.HasConfidence(), tc.wantConfidence)
			}
			if len(r.Movies) != tc.wantMovies {
				t.Errorf("movies = %d, want %d", len(r.Movies), tc.wantMovies)
			}
			if r.Error != tc.wantError {
				t.Errorf("error = %q, want %q", r.Error, tc.wantError)
			}
		})
	}
}

func TestRecognitionResultLegacyTitlesKeepOrder(t *testing.T) {
	var r RecognitionResult
	if err := json.Unmarshal([]byte(`{"movies": ["Big", "Splash", "Cast Away"]}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Big", "Splash", "Cast Away"}
	for i, title := range want {
		if r.Movies[i].Title != title {
			t.Errorf("movies[%d] = %q, want %q", i, r.Movies[i].Title, title)
		}
		if r.Movies[i].MediaType != "" {
			t.Errorf("movies[%d] media type = %q, want empty", i, r.Movies[i].MediaType)
		}
	}
}

func TestRecognitionResultRejectsWrongTypes(t *testing.T) {
	cases := []struct {
		name      string
		body      string
		wantField string
	}{
		{"actor number", `{"actor": 42}`, "actor"},
		{"confidence string", `{"confidence": "high"}`, "confidence"},
		{"movies object", `{"movies": {"title": "Big"}}`, "movies"},
		{"movie without title", `{"movies": [{"media_type": "movie"}]}`, "movies"},
		{"movie title number", `{"movies": [{"title": 7, "media_type": "movie"}]}`, "movies"},
		{"movie null entry", `{"movies": [null]}`, "movies"},
		{"error bool", `{"error": true}`, "error"},
		{"array body", `[1, 2]`, ""},
		{"string body", `"hello"`, ""},
		{"null body", `null`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r RecognitionResult
			err := r.UnmarshalJSON([]byte(tc.body))
			if err == nil {
				t.Fatalf("expected error, got result %+v", r)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %T: %v", err, err)
			}
			if fe.Field != tc.wantField {
				t.Errorf("field = %q, want %q", fe.Field, tc.wantField)
			}
		})
	}
}

func TestNilResultHelpers(t *testing.T) {
	var r *RecognitionResult
	if r.Recognized() || r.HasConfidence() || r.ServerError() != "" {
		t.Fatal("nil result should report nothing")
	}
}
