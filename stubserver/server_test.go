package stubserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"facerecog/client"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPredictWithClient(t *testing.T) {
	srv := httptest.NewServer(NewRouter(nil, nil))
	defer srv.Close()
	c := client.NewClient(srv.URL, 0, nil)

	cases := []struct {
		filename    string
		wantActor   string
		wantWorks   int
		wantError   string
		wantFailure bool
	}{
		{"tom.jpg", "Tom Hanks", 3, "", false},
		{"ERROR-case.png", "Unknown", 0, "No face detected", false},
		{"unknown_face.jpg", "Unknown", 0, "", false},
		{"garbage.jpg", "", 0, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			result, err := c.Predict(context.Background(), client.Upload{Filename: tc.filename, ContentType: "image/jpeg", Data: []byte("pixels")})
			if tc.wantFailure {
				var me *client.MalformedResponseError
				if !errors.As(err, &me) {
					t.Fatalf("expected malformed response, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Predict: %v", err)
			}
			if result.Actor != tc.wantActor || len(result.Movies) != tc.wantWorks || result.Error != tc.wantError {
				t.Fatalf("result = %+v", result)
			}
		})
	}
}

func TestPredictDefaultKeepsOrder(t *testing.T) {
	srv := httptest.NewServer(NewRouter(DefaultFixtures(), nil))
	defer srv.Close()

	result, err := client.NewClient(srv.URL, 0, nil).Predict(context.Background(), client.Upload{Filename: "a.jpg", Data: []byte("x")})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := []string{"Forrest Gump", "Cast Away", "Band of Brothers"}
	for i, title := range want {
		if result.Movies[i].Title != title {
			t.Errorf("movies[%d] = %q, want %q", i, result.Movies[i].Title, title)
		}
	}
	if result.Confidence == nil || *result.Confidence != 92.5 {
		t.Errorf("confidence = %v", result.Confidence)
	}
}

func TestPredictRequiresFilePart(t *testing.T) {
	r := NewRouter(nil, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	_ = w.WriteField("image", "not a file")
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/predict", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestPredictEmptyUpload(t *testing.T) {
	srv := httptest.NewServer(NewRouter(nil, nil))
	defer srv.Close()

	result, err := client.NewClient(srv.URL, 0, nil).Predict(context.Background(), client.Upload{Filename: "empty.jpg"})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if result.Error != "empty upload" || result.Actor != "Unknown" {
		t.Fatalf("result = %+v", result)
	}
}

func TestHealthReportsServedUploads(t *testing.T) {
	h := &PredictHandler{fixtures: DefaultFixtures(), logger: zap.NewNop()}
	r := gin.New()
	RegisterPredictRoutes(r, h)
	RegisterHealthRoutes(r, h)
	srv := httptest.NewServer(r)
	defer srv.Close()

	c := client.NewClient(srv.URL, 0, nil)
	for _, name := range []string{"a.jpg", "b.jpg"} {
		if _, err := c.Predict(context.Background(), client.Upload{Filename: name, Data: []byte("x")}); err != nil {
			t.Fatalf("Predict(%s): %v", name, err)
		}
	}
	if got := h.Served(); got != 2 {
		t.Fatalf("Served() = %d, want 2", got)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var health struct {
		Status string `json:"status"`
		Served int64  `json:"served"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" || health.Served != 2 {
		t.Fatalf("health = %+v", health)
	}
}

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.json")
	data := `{"rules": [{"match": "meryl", "status": 503, "body": {"error": "model warming up"}}]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	fx, err := LoadFixtures(path)
	if err != nil {
		t.Fatalf("LoadFixtures: %v", err)
	}
	got := fx.Pick("Meryl.JPG")
	if got.StatusCode() != 503 || string(got.Body) != `{"error": "model warming up"}` {
		t.Fatalf("fixture = %+v", got)
	}
	if fallback := fx.Pick("other.jpg"); len(fallback.Body) == 0 || fallback.StatusCode() != http.StatusOK {
		t.Fatalf("default fixture = %+v", fallback)
	}

	if _, err := LoadFixtures(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if fx, err := LoadFixtures(""); err != nil || len(fx.Rules) == 0 {
		t.Fatalf("empty path should give defaults: %v", err)
	}
}
