package dataforseoclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dataforseodomain "github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo/domain"
	"github.com/vfg2006/serp-tracker-api/internal/config"
)

const historicalSerpsBody = `{
  "status_code": 20000,
  "status_message": "Ok.",
  "tasks": [{
    "id": "task-1",
    "status_code": 20000,
    "status_message": "Ok.",
    "result": [{
      "keyword": "seo tools",
      "total_count": 1,
      "items_count": 1,
      "items": [{
        "se_type": "google",
        "keyword": "seo tools",
        "datetime": "2024-03-01 02:17:21 +00:00",
        "items_count": 2,
        "items": [
          {"type": "organic", "rank_group": 1, "rank_absolute": 1, "domain": "a.com", "url": "https://a.com", "title": "A"},
          {"type": "people_also_ask", "rank_group": 1, "rank_absolute": 2}
        ]
      }]
    }]
  }]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.DataForSEO{
		URL:      server.URL + "/v3",
		Login:    "user",
		Password: "secret",
		Timeout:  5 * time.Second,
	})
}

func TestGetHistoricalSerps(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/dataforseo_labs/google/historical_serps/live", r.URL.Path)

		login, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "user", login)
		assert.Equal(t, "secret", password)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"keyword":"seo tools","location_code":2840,"language_code":"en","date_from":"2024-01-01"}]`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(historicalSerpsBody))
	})

	result, err := client.GetHistoricalSerps(context.Background(), dataforseodomain.HistoricalSerpsTask{
		Keyword:      "seo tools",
		LocationCode: 2840,
		LanguageCode: "en",
		DateFrom:     "2024-01-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "seo tools", result.Keyword)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "2024-03-01 02:17:21 +00:00", result.Items[0].Datetime)
	require.Len(t, result.Items[0].Items, 2)
	assert.Equal(t, "a.com", result.Items[0].Items[0].Domain)
	assert.Equal(t, "people_also_ask", result.Items[0].Items[1].Type)
}

func TestGetHistoricalSerps_Errors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		statusCode int
	}{
		{
			name:   "Deve falhar com status HTTP diferente de 200",
			status: http.StatusUnauthorized,
			body:   `{}`,
		},
		{
			name:       "Deve falhar com status_code da resposta",
			status:     http.StatusOK,
			body:       `{"status_code": 40100, "status_message": "You are not authorized."}`,
			statusCode: 40100,
		},
		{
			name:       "Deve falhar com status_code da tarefa",
			status:     http.StatusOK,
			body:       `{"status_code": 20000, "tasks": [{"status_code": 40501, "status_message": "Invalid Field: 'keyword'."}]}`,
			statusCode: 40501,
		},
		{
			name:   "Deve falhar sem tarefas",
			status: http.StatusOK,
			body:   `{"status_code": 20000, "tasks": []}`,
		},
		{
			name:   "Deve falhar com JSON inválido",
			status: http.StatusOK,
			body:   `{"status_code":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			result, err := client.GetHistoricalSerps(context.Background(), dataforseodomain.HistoricalSerpsTask{Keyword: "seo tools"})

			require.Error(t, err)
			assert.Nil(t, result)

			if tt.statusCode != 0 {
				var statusErr *dataforseodomain.StatusError
				require.ErrorAs(t, err, &statusErr)
				assert.Equal(t, tt.statusCode, statusErr.Code)
			}
		})
	}
}

func TestGetHistoricalSerps_EmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status_code": 20000, "tasks": [{"status_code": 20000, "result": null}]}`))
	})

	result, err := client.GetHistoricalSerps(context.Background(), dataforseodomain.HistoricalSerpsTask{Keyword: "nothing here"})

	require.NoError(t, err)
	assert.Equal(t, "nothing here", result.Keyword)
	assert.Empty(t, result.Items)
}

func TestGetHistoricalSerps_CanceledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("a requisição não deveria ser enviada")
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetHistoricalSerps(ctx, dataforseodomain.HistoricalSerpsTask{Keyword: "seo tools"})
	assert.Error(t, err)
}
