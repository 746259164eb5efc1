package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Brandongr90/la-gruta-dashboard/models"
	"github.com/Brandongr90/la-gruta-dashboard/reports"
)

// ErrFetchFailed marks a non-success response from the ventas source. The
// report for that invocation is aborted; retrying is the caller's decision.
var ErrFetchFailed = errors.New("error al consultar ventas")

// isoMillis matches toISOString: UTC with millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Client queries the ventas table through the Supabase REST (PostgREST)
// endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient returns a REST client for the given Supabase project.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchVentas returns every venta whose fecha_hora falls inside the window,
// both ends inclusive, ordered by fecha_hora ascending. Supabase replies are
// unpaginated for a single venue's month, so one request returns the whole
// batch.
func (c *Client) FetchVentas(ctx context.Context, w reports.TimeWindow) ([]models.Venta, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/ventas?select=*&fecha_hora=gte.%s&fecha_hora=lte.%s&order=fecha_hora.asc",
		c.baseURL,
		w.Start.UTC().Format(isoMillis),
		w.End.UTC().Format(isoMillis),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrFetchFailed, resp.StatusCode, string(body))
	}

	var ventas []models.Venta
	if err := json.Unmarshal(body, &ventas); err != nil {
		return nil, fmt.Errorf("error unmarshalling ventas response: %w", err)
	}
	return ventas, nil
}
