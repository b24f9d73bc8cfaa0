package config

import (
	"os"
	"path/filepath"
)

type Config struct {
	Addr                 string
	DBConnection         string
	PaymentSystemAddress string

	OrdersAPIAddress string
	SessionFile      string
	CatalogURL       string

	Timeout           int
	NumWorkers        int
	MaxRequestsPerMin int
	SweepIntervalSec  int
}

func NewConfig() *Config {
	return &Config{
		Addr:                 ":8081",
		DBConnection:         "",
		PaymentSystemAddress: "http://localhost:8080",
		OrdersAPIAddress:     "http://localhost:8081",
		SessionFile:          defaultSessionFile(),
		CatalogURL:           "http://localhost:3000/catalog",
		Timeout:              15,
		NumWorkers:           15,
		MaxRequestsPerMin:    60,
		SweepIntervalSec:     10,
	}
}

func defaultSessionFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(home, ".storefront", "session.json")
}

// Init overlays environment variables onto the defaults. Command-line
// flags are bound on top of this by the cobra commands.
func Init(c *Config) error {
	if val, exist := os.LookupEnv("RUN_ADDRESS"); exist {
		c.Addr = val
	}
	if val, exist := os.LookupEnv("DATABASE_URI"); exist {
		c.DBConnection = val
	}
	if val, exist := os.LookupEnv("PAYMENT_SYSTEM_ADDRESS"); exist {
		c.PaymentSystemAddress = val
	}
	if val, exist := os.LookupEnv("ORDERS_API_ADDRESS"); exist {
		c.OrdersAPIAddress = val
	}
	if val, exist := os.LookupEnv("STOREFRONT_SESSION_FILE"); exist {
		c.SessionFile = val
	}
	if val, exist := os.LookupEnv("CATALOG_URL"); exist {
		c.CatalogURL = val
	}
	return nil
}
