// Package rest implementa las fachadas de API sobre el backend real:
// transporte resty autenticado, parseo del error estructurado del backend
// y normalización de las formas de respuesta de listado.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/infield-hq/infield-console/internal/application/dto"
	"github.com/infield-hq/infield-console/internal/domain"
)

// ClientConfig configuración del transporte.
// BaseURL vacío significa "detrás del proxy del gateway": las rutas /api/*
// se resuelven contra el propio origen local, igual que el frontend en
// navegador usa URLs relativas a través del rewrite same-origin.
type ClientConfig struct {
	BaseURL string
}

// APIError error estructurado que declara el backend en toda respuesta no-2xx:
// {errorCode, message, requestId}. Si el cuerpo no es JSON se degrada a
// UNKNOWN_ERROR con el texto del estado HTTP.
type APIError struct {
	Status    int
	ErrorCode string
	Message   string
	RequestID string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d %s: %s", e.Status, e.ErrorCode, e.Message)
	}
	return fmt.Sprintf("API error %d %s", e.Status, e.ErrorCode)
}

// UserMessage devuelve el mensaje del backend, apto para mostrar en la UI.
func (e *APIError) UserMessage() string {
	return e.Message
}

// Is hace que errors.Is(err, domain.ErrNotFound) funcione para los 404,
// de modo que mock y real señalen not-found de la misma manera.
func (e *APIError) Is(target error) bool {
	return target == domain.ErrNotFound && e.Status == http.StatusNotFound
}

// Client transporte HTTP autenticado de la consola. El bearer token es estado
// de sesión (un solo administrador); se protege con mutex porque lo escriben
// el login y el restore y lo leen todas las peticiones.
type Client struct {
	http *resty.Client

	mu    sync.RWMutex
	token string
}

// NewClient construye el transporte. Siempre incluye credenciales (cookie jar)
// y Content-Type application/json.
func NewClient(cfg ClientConfig) *Client {
	jar, _ := cookiejar.New(nil)
	rc := resty.New().
		SetBaseURL(resolveBaseURL(cfg.BaseURL)).
		SetCookieJar(jar).
		SetHeader("Content-Type", "application/json")
	return &Client{http: rc}
}

func resolveBaseURL(configured string) string {
	if configured != "" {
		return configured
	}
	// Sin origen configurado: se asume el gateway local con su proxy /api/*.
	return "http://localhost:3000"
}

// SetAccessToken fija el bearer token de la sesión.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearAccessToken descarta el bearer token.
func (c *Client) ClearAccessToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// GetAccessToken devuelve el bearer token vigente ("" si no hay sesión).
func (c *Client) GetAccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Get emite un GET y decodifica el cuerpo en out (out nil lo descarta).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post emite un POST con cuerpo JSON opcional.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put emite un PUT con cuerpo JSON.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete emite un DELETE.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if token := c.GetAccessToken(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		return parseAPIError(resp)
	}

	// 204 No Content: no hay cuerpo que decodificar.
	if resp.StatusCode() == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decodificar respuesta de %s %s: %w", method, path, err)
	}
	return nil
}

func parseAPIError(resp *resty.Response) error {
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil || body.ErrorCode == "" {
		body = dto.ErrorResponse{
			ErrorCode: "UNKNOWN_ERROR",
			Message:   resp.Status(),
		}
	}
	return &APIError{
		Status:    resp.StatusCode(),
		ErrorCode: body.ErrorCode,
		Message:   body.Message,
		RequestID: body.RequestID,
	}
}
