package coingecko

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
)

const marketChartPath = "/coins/%s/market_chart"

// ErrInsufficientData indica que la API devolvió menos de 2 precios.
var ErrInsufficientData = errors.New("coingecko: fewer than 2 prices")

// FetchDailyPrices descarga los precios diarios de los últimos `days` días.
// Implementa ports.PriceProvider.
func (c *Client) FetchDailyPrices(ctx context.Context, days int) ([]float64, error) {
	q := url.Values{}
	q.Set("vs_currency", c.vsCurrency)
	q.Set("days", strconv.Itoa(days))
	q.Set("interval", "daily")

	endpoint := c.baseURL + fmt.Sprintf(marketChartPath, url.PathEscape(c.coinID)) + "?" + q.Encode()

	var resp marketChartResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("coingecko.FetchDailyPrices: %w", err)
	}

	prices := make([]float64, 0, len(resp.Prices))
	for _, point := range resp.Prices {
		prices = append(prices, point[1])
	}
	if len(prices) < 2 {
		return nil, fmt.Errorf("coingecko.FetchDailyPrices: got %d: %w", len(prices), ErrInsufficientData)
	}

	slog.Debug("coingecko prices fetched",
		"coin", c.coinID,
		"vs", c.vsCurrency,
		"days", days,
		"points", len(prices),
	)
	return prices, nil
}

// CacheKey identifica la serie pedida para la cache de precios.
func (c *Client) CacheKey(days int) string {
	return fmt.Sprintf("%s|%s|%d", c.coinID, c.vsCurrency, days)
}
