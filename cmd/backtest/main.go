package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/yieldsim/config"
	"github.com/alejandrodnm/yieldsim/internal/adapters/notify"
	"github.com/alejandrodnm/yieldsim/internal/backtest"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file (optional)")
	days := flag.Int("days", 90, "number of daily prices to backtest")
	bnbPrice := flag.Float64("bnb-price", 300.0, "BNB price in USD (gas cost)")
	gasGwei := flag.Float64("gas-gwei", 50.0, "gas price in gwei")
	cyclesPerDay := flag.Int("cycles-per-day", 4, "rebalance cycles per day")
	tvl := flag.Float64("tvl", 100000.0, "total value locked in USD")
	offline := flag.Bool("offline", false, "skip the price API and use the synthetic series")
	noCache := flag.Bool("no-cache", false, "do not read or write the local price cache")
	liveGas := flag.Bool("live-gas", false, "take gas price and BNB price from the network (explicit flags win)")
	sweep := flag.Int("sweep", 0, "simulate N consecutive seeds from simulation.seed and print their spread")
	workers := flag.Int("workers", 0, "workers for -sweep (0 = NumCPU)")
	table := flag.Bool("table", false, "print per-regime breakdown table")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	// Los flags explícitos ganan sobre el YAML.
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["days"] {
		cfg.Simulation.Days = *days
	}
	if set["bnb-price"] {
		cfg.Simulation.BNBPrice = *bnbPrice
	}
	if set["gas-gwei"] {
		cfg.Simulation.GasGwei = *gasGwei
	}
	if set["cycles-per-day"] {
		cfg.Simulation.CyclesPerDay = *cyclesPerDay
	}
	if set["tvl"] {
		cfg.Simulation.TVL = *tvl
	}
	if *noCache {
		cfg.Cache.Disabled = true
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	slog.Info("yieldsim starting",
		"config", *configPath,
		"days", cfg.Simulation.Days,
		"offline", *offline,
		"cache", !cfg.Cache.Disabled,
		"live_gas", *liveGas,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := newPriceClient(cfg)
	source, closeSource := newPriceSource(cfg, client, *offline)
	defer closeSource()

	runCfg := runConfig(cfg)
	if *liveGas && !*offline {
		live, closeLive := newLiveInputs(ctx, cfg, client, !set["gas-gwei"], !set["bnb-price"])
		runCfg.Params = backtest.ResolveLiveParams(ctx, runCfg.Params, live)
		closeLive()
	}

	runner := backtest.NewRunner(runCfg, source, notify.NewConsole(*table))
	if *sweep > 0 {
		if _, err := runner.Sweep(ctx, *sweep, *workers); err != nil {
			slog.Error("seed sweep failed", "err", err)
			os.Exit(1)
		}
		return
	}
	if _, err := runner.Run(ctx); err != nil {
		slog.Error("backtest failed", "err", err)
		os.Exit(1)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// stderr: stdout queda solo para el resumen
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
