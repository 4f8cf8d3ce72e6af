package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL    = "https://api.coingecko.com/api/v3"
	defaultCoinID     = "bitcoin"
	defaultVsCurrency = "usd"
	defaultTimeout    = 20 * time.Second

	// Plan público: ~30 llamadas/min. Nos quedamos en la mitad.
	requestsPerSec = 0.25
	burst          = 2

	maxRetries    = 3
	baseRetryWait = 500 * time.Millisecond

	// Tras 3 fallos seguidos el breaker se abre y los reintentos que quedan
	// fallan al instante.
	breakerFailures = 3
	breakerTimeout  = 60 * time.Second
)

// Options configura el Client. Los campos vacíos usan los valores por defecto.
type Options struct {
	BaseURL    string
	CoinID     string
	VsCurrency string
	APIKey     string // opcional, header x-cg-demo-api-key
	Timeout    time.Duration
	RetryWait  time.Duration
	RatePerSec float64
}

// Client es el HTTP client de CoinGecko con rate limiting, retries y circuit breaker.
type Client struct {
	http       *http.Client
	baseURL    string
	coinID     string
	vsCurrency string
	apiKey     string
	retryWait  time.Duration
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
}

// NewClient crea un Client con las opciones dadas.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.CoinID == "" {
		opts.CoinID = defaultCoinID
	}
	if opts.VsCurrency == "" {
		opts.VsCurrency = defaultVsCurrency
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryWait <= 0 {
		opts.RetryWait = baseRetryWait
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = requestsPerSec
	}

	return &Client{
		http:       &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		coinID:     opts.CoinID,
		vsCurrency: opts.VsCurrency,
		apiKey:     opts.APIKey,
		retryWait:  opts.RetryWait,
		limiter:    rate.NewLimiter(rate.Limit(opts.RatePerSec), burst),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "coingecko",
			Timeout: breakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				slog.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
			},
		}),
	}
}

// statusError es una respuesta que merece reintento (429 o 5xx).
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("server error %d", e.code)
}

// get hace un GET con rate limiting, breaker y retries.
func (c *Client) get(ctx context.Context, url string, out any) error {
	return c.doWithRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("x-cg-demo-api-key", c.apiKey)
		}
		return c.http.Do(req)
	}, out)
}

// doWithRetry ejecuta la función con backoff exponencial. Cada intento pasa
// por el circuit breaker; un breaker abierto corta los reintentos.
func (c *Client) doWithRetry(ctx context.Context, fn func() (*http.Response, error), out any) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}

		res, err := c.breaker.Execute(func() (interface{}, error) {
			resp, err := fn()
			if err != nil {
				return nil, err
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, &statusError{code: resp.StatusCode}
			}
			return resp, nil
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("circuit breaker: %w", err)
		}
		if err != nil {
			var se *statusError
			if errors.As(err, &se) && se.code == http.StatusTooManyRequests {
				slog.Warn("rate limited by API", "attempt", attempt+1)
			}
			if attempt == maxRetries {
				return fmt.Errorf("request failed after %d retries: %w", maxRetries, err)
			}
			c.sleep(ctx, attempt)
			continue
		}

		resp := res.(*http.Response)
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return fmt.Errorf("client error %d: %s", resp.StatusCode, string(body))
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	}
	return fmt.Errorf("exhausted %d retries", maxRetries)
}

// sleep espera con backoff exponencial, respetando el contexto.
func (c *Client) sleep(ctx context.Context, attempt int) {
	wait := time.Duration(math.Pow(2, float64(attempt))) * c.retryWait
	select {
	case <-time.After(wait):
	case <-ctx.Done():
	}
}
