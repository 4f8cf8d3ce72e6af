package onchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/ethclient"
)

const defaultBSCRPC = "https://bsc-dataseed.binance.org"

var weiPerGwei = big.NewFloat(1e9)

// GasOracle implements ports.GasPriceOracle against an EVM JSON-RPC node.
type GasOracle struct {
	client *ethclient.Client
	rpcURL string
}

// NewGasOracle connects to the given RPC endpoint (BNB Smart Chain by default).
func NewGasOracle(ctx context.Context, rpcURL string) (*GasOracle, error) {
	if rpcURL == "" {
		rpcURL = defaultBSCRPC
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("onchain: dial rpc %s: %w", rpcURL, err)
	}
	return &GasOracle{client: client, rpcURL: rpcURL}, nil
}

// GasPriceGwei returns the node's suggested gas price in gwei.
func (g *GasOracle) GasPriceGwei(ctx context.Context) (float64, error) {
	wei, err := g.client.SuggestGasPrice(ctx)
	if err != nil {
		return 0, fmt.Errorf("onchain: suggest gas price: %w", err)
	}

	gwei, _ := new(big.Float).Quo(new(big.Float).SetInt(wei), weiPerGwei).Float64()
	slog.Debug("gas price fetched", "rpc", g.rpcURL, "wei", wei.String(), "gwei", gwei)
	return gwei, nil
}

// Close releases the RPC connection.
func (g *GasOracle) Close() {
	g.client.Close()
}
