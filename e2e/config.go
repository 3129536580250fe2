package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RelayAddr is host:port of the websocket/http listener; empty skips the suite.
	RelayAddr  string `envconfig:"RELAY_ADDR"`
	HealthAddr string `envconfig:"HEALTH_ADDR"`
	// PaymentTxID is an unused payment of exactly the required fee to the relay account.
	// The paid scenario is skipped without it.
	PaymentTxID string `envconfig:"E2E_PAYMENT_TX_ID"`
	// E2E_DEBUG_JSON allows dumping full gRPC request/response bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
