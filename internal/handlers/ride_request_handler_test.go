package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rideform/internal/handlers"
	"rideform/internal/models"
	"rideform/internal/services"
	"rideform/internal/validators"
	"rideform/pkg/logger"
	"rideform/routes"

	"github.com/gin-gonic/gin"
)

type fakeRequestService struct {
	submitID  string
	submitErr error
	deleteErr error
	summary   *services.CountSummary
}

func (f *fakeRequestService) Submit(ctx context.Context, input *models.RideRequestInput) (string, error) {
	return f.submitID, f.submitErr
}

func (f *fakeRequestService) CountSummary(ctx context.Context) (*services.CountSummary, error) {
	return f.summary, nil
}

func (f *fakeRequestService) Delete(ctx context.Context, id, token string) error {
	return f.deleteErr
}

func newTestRouter(t *testing.T, svc services.RequestService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.NewLogger(&logger.Config{Level: "error"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	r := gin.New()
	routes.SetupRideRequestRoutes(r, handlers.NewRideRequestHandler(svc, log))
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return body
}

const submitJSON = `{
	"name": "A",
	"phone": "89161234567",
	"day": "30",
	"earliest_time": "09:00",
	"start_point": {"address": "X street 1", "lat": 55.0, "lon": 37.0}
}`

func TestCreate_Success(t *testing.T) {
	r := newTestRouter(t, &fakeRequestService{submitID: "abc123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ride-request", strings.NewReader(submitJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != true || body["id"] != "abc123" {
		t.Errorf("body = %v", body)
	}
}

func TestCreate_ValidationFailure(t *testing.T) {
	svc := &fakeRequestService{
		submitErr: validators.ValidationErrors{{Field: "phone", Message: "Invalid phone"}},
	}
	r := newTestRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ride-request", strings.NewReader(submitJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	body := decodeBody(t, w)
	if body["ok"] != false || body["error"] != "Invalid phone" {
		t.Errorf("body = %v", body)
	}
}

func TestCreate_InternalErrorIsGeneric(t *testing.T) {
	svc := &fakeRequestService{
		submitErr: context.DeadlineExceeded,
	}
	r := newTestRouter(t, svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ride-request", strings.NewReader(submitJSON))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Server error" {
		t.Errorf("internal detail leaked: %v", body)
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	r := newTestRouter(t, &fakeRequestService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ride-request", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, &fakeRequestService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := decodeBody(t, w); body["ok"] != true {
		t.Errorf("body = %v", body)
	}
}

func TestCount(t *testing.T) {
	r := newTestRouter(t, &fakeRequestService{summary: &services.CountSummary{Count: 3, People: 7}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/count", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeBody(t, w)
	if body["count"] != float64(3) || body["people"] != float64(7) {
		t.Errorf("body = %v", body)
	}
}

func TestDelete_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, http.StatusOK},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"malformed", services.ErrMalformedID, http.StatusBadRequest},
		{"missing", services.ErrNotFound, http.StatusNotFound},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(t, &fakeRequestService{deleteErr: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/ride-request/5f2a6c3e9d1b4a0001234567", nil)
			req.Header.Set("X-Delete-Token", "secret")
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Errorf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
