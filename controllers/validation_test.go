package controllers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brandon0902/HumanSport/controllers"

	"github.com/gin-gonic/gin"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/users", controllers.Register)
	r.POST("/payments", controllers.CreatePayment)
	r.POST("/bookings", controllers.CreateBooking)
	r.PATCH("/bookings/update/:id", controllers.UpdateBooking)
	r.PATCH("/courses/update/:id", controllers.UpdateCourse)
	r.PATCH("/memberships/update/:id", controllers.UpdateMembership)
	return r
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestRegister_ValidationErrors(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name       string
		fields     map[string]string
		wantFields []string
	}{
		{
			"everything missing",
			map[string]string{},
			[]string{"firstName", "lastName", "email", "birthdate", "phone", "password"},
		},
		{
			"weak password and bad birthdate",
			map[string]string{
				"firstName": "Juan",
				"lastName":  "Pérez",
				"email":     "juan@example.com",
				"birthdate": "15 de agosto",
				"phone":     "123456789",
				"password":  "abc",
			},
			[]string{"birthdate", "password"},
		},
		{
			"unknown role",
			map[string]string{
				"firstName": "Juan",
				"lastName":  "Pérez",
				"email":     "juan@example.com",
				"birthdate": "1990-08-15",
				"phone":     "123456789",
				"role":      "superuser",
				"password":  "Ab1!x",
			},
			[]string{"role"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartForm(t, tc.fields)
			req := httptest.NewRequest(http.MethodPost, "/users", body)
			req.Header.Set("Content-Type", contentType)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}

			var resp struct {
				Errors []struct {
					Field string `json:"field"`
				} `json:"errors"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			got := make(map[string]bool, len(resp.Errors))
			for _, e := range resp.Errors {
				got[e.Field] = true
			}
			for _, field := range tc.wantFields {
				if !got[field] {
					t.Fatalf("missing field error for %q in %v", field, resp.Errors)
				}
			}
		})
	}
}

func TestCreatePayment_ValidationErrors(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		body string
	}{
		{"zero amount", `{"userId":1,"membershipId":1,"amount":0,"method":"cash"}`},
		{"negative amount", `{"userId":1,"membershipId":1,"amount":-5,"method":"cash"}`},
		{"bad method", `{"userId":1,"membershipId":1,"amount":100,"method":"bitcoin"}`},
		{"missing references", `{"amount":100,"method":"cash"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}
		})
	}
}

func TestUpdate_ReactivationRejected(t *testing.T) {
	r := newRouter()

	targets := []string{
		"/bookings/update/1",
		"/courses/update/1",
		"/memberships/update/1",
	}
	for _, target := range targets {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, target, strings.NewReader(`{"status":"active"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusBadRequest, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), "status can only be set to inactive") {
				t.Fatalf("body %q missing the status error", w.Body.String())
			}
		})
	}
}

func TestCreateBooking_MissingReferencesRejected(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"comments":"no refs"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
