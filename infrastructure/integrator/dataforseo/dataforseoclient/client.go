package dataforseoclient

//go:generate mockgen -source=client.go -destination=../mocks/client.go -package=mocks

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"

	dataforseodomain "github.com/vfg2006/serp-tracker-api/infrastructure/integrator/dataforseo/domain"
	"github.com/vfg2006/serp-tracker-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultTimeout = 60 * time.Second

type Client interface {
	GetHistoricalSerps(ctx context.Context, task dataforseodomain.HistoricalSerpsTask) (*dataforseodomain.HistoricalSerpsResult, error)
}

type DataForSEOClient struct {
	httpClient *http.Client
	config     config.DataForSEO
	limiter    *rate.Limiter
}

// NewClient cria o cliente da DataForSEO com limite de requisições por segundo
func NewClient(cfg config.DataForSEO) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &DataForSEOClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config:  cfg,
		limiter: rate.NewLimiter(limit, 1),
	}
}
