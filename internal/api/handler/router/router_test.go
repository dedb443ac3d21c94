package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	var order []string
	trace := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:   "/v1/keywords/:keyword/history",
		Method: http.MethodGet,
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(httprouter.ParamsFromContext(r.Context()).ByName("keyword")))
		}),
		Middlewares: []func(http.Handler) http.Handler{trace("first"), trace("second")},
	}))

	t.Run("Deve aplicar os middlewares na ordem declarada", func(t *testing.T) {
		order = nil
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/keywords/seo/history", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "seo", rec.Body.String())
		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("Deve responder 404 no envelope de erro", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_004")
	})

	t.Run("Deve responder método não permitido", func(t *testing.T) {
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/keywords/seo/history", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		assert.Contains(t, rec.Body.String(), "VAL_005")
	})
}

func TestRequireJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := RequireJSON()(next)

	tests := []struct {
		name           string
		contentType    string
		expectedStatus int
	}{
		{name: "JSON", contentType: "application/json", expectedStatus: http.StatusNoContent},
		{name: "JSON com charset", contentType: "application/json; charset=utf-8", expectedStatus: http.StatusNoContent},
		{name: "Form", contentType: "application/x-www-form-urlencoded", expectedStatus: http.StatusBadRequest},
		{name: "Sem Content-Type", contentType: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/serp/diff", strings.NewReader("{}"))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
