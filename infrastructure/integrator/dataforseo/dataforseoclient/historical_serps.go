package dataforseoclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"

	dataforseodomain "github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo/domain"
)

const historicalSerpsPath = "/dataforseo_labs/google/historical_serps/live"

func (c *DataForSEOClient) GetHistoricalSerps(ctx context.Context, task dataforseodomain.HistoricalSerpsTask) (*dataforseodomain.HistoricalSerpsResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("erro aguardando o limite de requisições: %w", err)
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, historicalSerpsPath)

	// A API recebe um array de tarefas, mesmo no modo live só uma é aceita.
	body, err := json.Marshal([]dataforseodomain.HistoricalSerpsTask{task})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a tarefa: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.SetBasicAuth(c.config.Login, c.config.Password)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response dataforseodomain.HistoricalSerpsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	if response.StatusCode != dataforseodomain.StatusOK {
		return nil, &dataforseodomain.StatusError{Code: response.StatusCode, Message: response.StatusMessage}
	}

	if len(response.Tasks) == 0 {
		return nil, fmt.Errorf("resposta sem tarefas para a keyword %q", task.Keyword)
	}

	result := response.Tasks[0]
	if result.StatusCode != dataforseodomain.StatusOK {
		return nil, &dataforseodomain.StatusError{Code: result.StatusCode, Message: result.StatusMessage}
	}

	// Keyword sem histórico volta com result nulo.
	if len(result.Result) == 0 {
		return &dataforseodomain.HistoricalSerpsResult{Keyword: task.Keyword}, nil
	}

	return &result.Result[0], nil
}
