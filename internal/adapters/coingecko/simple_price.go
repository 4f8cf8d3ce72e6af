package coingecko

import (
	"context"
	"fmt"
	"net/url"
)

const simplePricePath = "/simple/price"

// FetchSpotPrice devuelve el precio actual de coinID en la moneda del Client.
// Implementa ports.SpotPriceProvider.
func (c *Client) FetchSpotPrice(ctx context.Context, coinID string) (float64, error) {
	q := url.Values{}
	q.Set("ids", coinID)
	q.Set("vs_currencies", c.vsCurrency)

	var resp simplePriceResponse
	if err := c.get(ctx, c.baseURL+simplePricePath+"?"+q.Encode(), &resp); err != nil {
		return 0, fmt.Errorf("coingecko.FetchSpotPrice: %w", err)
	}

	price, ok := resp[coinID][c.vsCurrency]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("coingecko.FetchSpotPrice: no %s price for %q", c.vsCurrency, coinID)
	}
	return price, nil
}
