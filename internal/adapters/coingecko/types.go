package coingecko

// marketChartResponse es la respuesta de GET /coins/{id}/market_chart.
// Cada punto es [timestamp_ms, valor].
type marketChartResponse struct {
	Prices       [][2]float64 `json:"prices"`
	MarketCaps   [][2]float64 `json:"market_caps"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
}

// simplePriceResponse es la respuesta de GET /simple/price: id → moneda → precio.
type simplePriceResponse map[string]map[string]float64
