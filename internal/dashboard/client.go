// Package dashboard contém o lado cliente do dashboard: cliente da API,
// cache por categoria, estado de filtros e projeções de apresentação.
package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ecommerce-dashboard-api/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second
)

// Fetcher é o contrato usado pelo Store para buscar uma categoria
//
//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Fetcher interface {
	Fetch(ctx context.Context, category domain.Category, params url.Values, out any) error
}

type ClientConfig struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fala com a API REST do dashboard
type Client struct {
	baseURL string
	client  *http.Client
}

// envelope comum às respostas de sucesso e de erro da API
type envelope struct {
	Success bool                `json:"success"`
	Data    jsoniter.RawMessage `json:"data"`
	Status  string              `json:"status"`
	Message string              `json:"message"`
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{baseURL: baseURL, client: httpClient}
}

// Fetch busca GET <base>/<category> e decodifica o campo data em out
func (c *Client) Fetch(ctx context.Context, category domain.Category, params url.Values, out any) error {
	endpoint := c.baseURL + "/" + category.String()
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	env, err := c.get(ctx, endpoint, fmt.Sprintf("Failed to fetch %s", category))
	if err != nil {
		return err
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("dashboard: decode %s data: %w", category, err)
	}
	return nil
}

// Health consulta /health e devolve a mensagem de status da API
func (c *Client) Health(ctx context.Context) (string, error) {
	env, err := c.get(ctx, c.baseURL+"/health", "Health check failed")
	if err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) get(ctx context.Context, endpoint, fallback string) (*envelope, error) {
	body, status, err := utils.MakeRequest(ctx, c.client, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallback, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if status < 200 || status >= 300 {
		if decodeErr == nil && env.Message != "" {
			return nil, &FetchError{Status: status, Message: env.Message}
		}
		return nil, &FetchError{Status: status, Message: fallback}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("%s: decode response: %w", fallback, decodeErr)
	}

	return &env, nil
}

// FetchError é uma resposta não-2xx da API
type FetchError struct {
	Status  int
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}
