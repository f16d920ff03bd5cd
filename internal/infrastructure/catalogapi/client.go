package catalogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/application/dto"
	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

const (
	defaultTimeout = 10 * time.Second
	productsPath   = "/api/v1/products"
	maxErrorBody   = 512
)

var _ catalog.CatalogClient = (*Client)(nil)

// Config opciones del cliente HTTP.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
	Logger  *logger.Logger
}

// Client cliente de la API REST del catálogo. Todo fallo se reporta como domain.ErrRemoteRequest.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *logger.Logger
}

// NewClient construye el cliente.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:   strings.TrimSpace(cfg.Token),
		http:    &http.Client{Timeout: timeout},
		log:     log.Named("catalogapi"),
	}
}

// List GET /api/v1/products.
func (c *Client) List(ctx context.Context) ([]entity.Product, error) {
	var out dto.ProductListResponse
	if err := c.do(ctx, http.MethodGet, productsPath, nil, &out); err != nil {
		return nil, err
	}
	if out.Products == nil {
		return []entity.Product{}, nil
	}
	return out.Products, nil
}

// Create POST /api/v1/products.
func (c *Client) Create(ctx context.Context, fields entity.ProductFields) (entity.Product, error) {
	var out dto.ProductEnvelope
	if err := c.do(ctx, http.MethodPost, productsPath, fields, &out); err != nil {
		return entity.Product{}, err
	}
	if out.Data.ID == "" {
		return entity.Product{}, fmt.Errorf("%w: respuesta sin data.id", domain.ErrRemoteRequest)
	}
	return out.Data, nil
}

// Update PUT /api/v1/products/{id}.
func (c *Client) Update(ctx context.Context, id entity.ProductID, fields entity.ProductFields) (entity.Product, error) {
	var out dto.ProductEnvelope
	if err := c.do(ctx, http.MethodPut, productsPath+"/"+url.PathEscape(string(id)), fields, &out); err != nil {
		return entity.Product{}, err
	}
	if out.Data.ID == "" {
		return entity.Product{}, fmt.Errorf("%w: respuesta sin data.id", domain.ErrRemoteRequest)
	}
	return out.Data, nil
}

// Delete DELETE /api/v1/products/{id}.
func (c *Client) Delete(ctx context.Context, id entity.ProductID) error {
	return c.do(ctx, http.MethodDelete, productsPath+"/"+url.PathEscape(string(id)), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	endpoint := c.baseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRemoteRequest, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRemoteRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrRemoteRequest, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("catalog api")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s status %d: %s", domain.ErrRemoteRequest, method, path, resp.StatusCode, drainError(resp.Body))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: cuerpo inválido: %v", domain.ErrRemoteRequest, method, path, err)
	}
	return nil
}

func drainError(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var e dto.ErrorResponse
	if err := json.Unmarshal(b, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(b))
}
