package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del backtest.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	API        APIConfig        `yaml:"api"`
	Cache      CacheConfig      `yaml:"cache"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig son los parámetros de la corrida. Los umbrales de régimen,
// las tablas de asignación y el rango del ruido no son configurables.
type SimulationConfig struct {
	Days           int     `yaml:"days"`
	BNBPrice       float64 `yaml:"bnb_price"`
	GasGwei        float64 `yaml:"gas_gwei"`
	CyclesPerDay   int     `yaml:"cycles_per_day"`
	TVL            float64 `yaml:"tvl"`
	Seed           uint32  `yaml:"seed"`
	SparklineWidth int     `yaml:"sparkline_width"`
}

// APIConfig controla la descarga de precios.
type APIConfig struct {
	CoinGeckoBase  string `yaml:"coingecko_base"`
	CoinID         string `yaml:"coin_id"`
	VsCurrency     string `yaml:"vs_currency"`
	APIKey         string `yaml:"api_key"` // mejor vía COINGECKO_API_KEY en .env
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	BNBCoinID      string `yaml:"bnb_coin_id"` // -live-gas: precio BNB en CoinGecko
	BSCRPCURL      string `yaml:"bsc_rpc_url"` // -live-gas: nodo para eth_gasPrice
}

// CacheConfig controla la cache local de series de precios.
type CacheConfig struct {
	Disabled    bool   `yaml:"disabled"`
	DSN         string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
	MaxAgeHours int    `yaml:"max_age_hours"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Si el YAML no existe se usan los valores por defecto; un YAML inválido es error.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// sin archivo: solo env y defaults
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// Timeout devuelve el timeout HTTP como time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// CacheMaxAge devuelve la antigüedad máxima de una serie cacheada.
func (c *Config) CacheMaxAge() time.Duration {
	return time.Duration(c.Cache.MaxAgeHours) * time.Hour
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("COINGECKO_BASE"); v != "" {
		cfg.API.CoinGeckoBase = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		cfg.API.APIKey = v
	}
	if v := os.Getenv("BSC_RPC_URL"); v != "" {
		cfg.API.BSCRPCURL = v
	}
	if v := os.Getenv("PRICE_CACHE_DSN"); v != "" {
		cfg.Cache.DSN = v
	}
}

// setDefaults completa los valores no fijados. Los parámetros de simulación
// solo se completan si valen 0: un valor negativo se respeta tal cual.
func setDefaults(cfg *Config) {
	if cfg.Simulation.Days == 0 {
		cfg.Simulation.Days = 90
	}
	if cfg.Simulation.BNBPrice == 0 {
		cfg.Simulation.BNBPrice = 300.0
	}
	if cfg.Simulation.GasGwei == 0 {
		cfg.Simulation.GasGwei = 50.0
	}
	if cfg.Simulation.CyclesPerDay == 0 {
		cfg.Simulation.CyclesPerDay = 4
	}
	if cfg.Simulation.TVL == 0 {
		cfg.Simulation.TVL = 100000.0
	}
	if cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = 42
	}
	if cfg.Simulation.SparklineWidth <= 0 {
		cfg.Simulation.SparklineWidth = 40
	}
	if cfg.API.CoinGeckoBase == "" {
		cfg.API.CoinGeckoBase = "https://api.coingecko.com/api/v3"
	}
	if cfg.API.CoinID == "" {
		cfg.API.CoinID = "bitcoin"
	}
	if cfg.API.VsCurrency == "" {
		cfg.API.VsCurrency = "usd"
	}
	if cfg.API.BNBCoinID == "" {
		cfg.API.BNBCoinID = "binancecoin"
	}
	if cfg.API.BSCRPCURL == "" {
		cfg.API.BSCRPCURL = "https://bsc-dataseed.binance.org"
	}
	if cfg.API.TimeoutSeconds <= 0 {
		cfg.API.TimeoutSeconds = 20
	}
	if cfg.Cache.DSN == "" {
		cfg.Cache.DSN = "yieldsim.db"
	}
	if cfg.Cache.MaxAgeHours <= 0 {
		cfg.Cache.MaxAgeHours = 12
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
