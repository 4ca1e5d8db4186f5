package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// DefaultTimeout таймаут HTTP клиента по умолчанию
const DefaultTimeout = 30 * time.Second

// TokenProvider возвращает текущий bearer токен или пустую строку
type TokenProvider func(ctx context.Context) string

// Client представляет HTTP клиент для взаимодействия с product API
type Client struct {
	httpClient *http.Client
	token      TokenProvider
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithTokenProvider подключает источник bearer токена
func WithTokenProvider(p TokenProvider) Option {
	return func(c *Client) {
		c.token = p
	}
}

// WithHTTPClient заменяет HTTP клиент (тесты, кастомный транспорт)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server address the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do выполняет запрос с уже сериализованным телом и возвращает статус и тело ответа.
// Не-2xx ответы возвращаются как *api.StatusError.
func (c *Client) Do(ctx context.Context, method, path string, payload json.RawMessage) (int, json.RawMessage, error) {
	var bodyReader io.Reader
	if len(payload) > 0 {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if token := c.token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil, newStatusError(resp.StatusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return resp.StatusCode, nil, nil
	}
	return resp.StatusCode, respBody, nil
}

// doJSON сериализует body, выполняет запрос и декодирует ответ в result
func (c *Client) doJSON(ctx context.Context, method, path string, body, result any) error {
	var payload json.RawMessage
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = data
	}

	_, respBody, err := c.Do(ctx, method, path, payload)
	if err != nil {
		return err
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func newStatusError(status int, body []byte) *api.StatusError {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		return &api.StatusError{StatusCode: status, Message: msg}
	}
	return &api.StatusError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

// ListProducts получает страницу продуктов
func (c *Client) ListProducts(ctx context.Context, q api.ProductQuery) (*api.ProductListResponse, error) {
	path := models.ProductsPath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp api.ProductListResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list products request failed: %w", err)
	}
	return &resp, nil
}

// GetProduct получает продукт по id
func (c *Client) GetProduct(ctx context.Context, id string) (*api.Product, error) {
	var resp api.Product
	if err := c.doJSON(ctx, http.MethodGet, models.ProductPath(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get product request failed: %w", err)
	}
	return &resp, nil
}

// CreateProduct создает продукт, сервер назначает id
func (c *Client) CreateProduct(ctx context.Context, in api.ProductInput) (*api.Product, error) {
	var resp api.Product
	if err := c.doJSON(ctx, http.MethodPost, models.ProductsPath, in, &resp); err != nil {
		return nil, fmt.Errorf("create product request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProduct частично обновляет продукт
func (c *Client) UpdateProduct(ctx context.Context, id string, patch api.ProductPatch) (*api.Product, error) {
	var resp api.Product
	if err := c.doJSON(ctx, http.MethodPut, models.ProductPath(id), patch, &resp); err != nil {
		return nil, fmt.Errorf("update product request failed: %w", err)
	}
	return &resp, nil
}

// DeleteProduct удаляет продукт
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, models.ProductPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	return nil
}

// GetCategories получает упорядоченный список категорий
func (c *Client) GetCategories(ctx context.Context) ([]string, error) {
	var resp []string
	if err := c.doJSON(ctx, http.MethodGet, models.CategoriesPath, nil, &resp); err != nil {
		return nil, fmt.Errorf("get categories request failed: %w", err)
	}
	return resp, nil
}

// Ping выполняет легкий read-only запрос для проверки живости сервера
func (c *Client) Ping(ctx context.Context) error {
	if _, _, err := c.Do(ctx, http.MethodGet, models.CategoriesPath, nil); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Me возвращает профиль владельца токена
func (c *Client) Me(ctx context.Context) (*api.MeResponse, error) {
	var resp api.MeResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("me request failed: %w", err)
	}
	return &resp, nil
}
