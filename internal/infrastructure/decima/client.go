// Package decima implementa el cliente HTTP del ERP Decima: catálogos,
// creación de ventas y preparación del DTE. Todas las respuestas vienen
// en sobres JSON:API {data, meta}; los errores de red o de contrato se
// reportan envueltos en domain.ErrUpstream para que las capas de arriba
// decidan si degradan a catálogos de respaldo o propagan 502.
package decima

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/jhoicas/decima-pos/internal/domain"
	"github.com/jhoicas/decima-pos/pkg/config"
)

// maxResponseBytes límite de lectura de respuestas del ERP.
const maxResponseBytes = 4 << 20

// Client cliente HTTP del ERP Decima.
type Client struct {
	baseURL    string
	token      string
	platformID string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient construye el cliente con el timeout de la configuración.
func NewClient(cfg config.DecimaConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		platformID: cfg.PlatformID,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log.With().Str("component", "decima").Logger(),
	}
}

// envelope sobre JSON:API del ERP. Data puede ser objeto o arreglo.
type envelope struct {
	Data json.RawMessage `json:"data"`
	Meta *envelopeMeta   `json:"meta"`
}

type envelopeMeta struct {
	Page    int `json:"page"`
	Records int `json:"records"`
	From    int `json:"from"`
	To      int `json:"to"`
}

// resource recurso JSON:API. El id llega a veces como string y a veces
// como número según el endpoint.
type resource struct {
	ID         json.Number     `json:"id"`
	Type       string          `json:"type"`
	Attributes json.RawMessage `json:"attributes"`
}

// get ejecuta un GET y decodifica el sobre de la respuesta.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*envelope, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("decima: crear request: %w", err)
	}
	return c.do(req, path)
}

// send ejecuta un POST o PUT con body JSON y decodifica el sobre.
func (c *Client) send(ctx context.Context, method, path string, body any) (*envelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("decima: serializar body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("decima: crear request: %w", err)
	}
	return c.do(req, path)
}

func (c *Client) do(req *http.Request, path string) (*envelope, error) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Platform-Id", c.platformID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("path", path).Msg("llamada al ERP fallida")
		return nil, fmt.Errorf("decima: %s %s: %w: %v", req.Method, path, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("decima: leer respuesta de %s: %w", path, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("ERP respondió error")
		return nil, fmt.Errorf("decima: %s %s: %w: status %d: %s",
			req.Method, path, domain.ErrUpstream, resp.StatusCode, truncate(raw, 300))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decima: %s %s: %w: respuesta fuera de contrato: %v",
			req.Method, path, domain.ErrUpstream, err)
	}
	return &env, nil
}

// resources decodifica data como lista de recursos.
func (e *envelope) resources() ([]resource, error) {
	if len(e.Data) == 0 {
		return nil, nil
	}
	var list []resource
	if err := json.Unmarshal(e.Data, &list); err != nil {
		// Algunos endpoints devuelven un solo objeto en vez de arreglo.
		var one resource
		if oneErr := json.Unmarshal(e.Data, &one); oneErr == nil {
			return []resource{one}, nil
		}
		return nil, fmt.Errorf("decima: data fuera de contrato: %w", err)
	}
	return list, nil
}

func truncate(raw []byte, n int) string {
	if len(raw) <= n {
		return string(raw)
	}
	return string(raw[:n]) + "..."
}
