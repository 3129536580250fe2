package main

import (
	"fmt"
	"time"
)

const (
	backendRedis  = "redis"
	backendBadger = "badger"
)

type Config struct {
	LogLevel               string        `env:"LOG_LEVEL,required=true"`
	Host                   string        `env:"HOST,default=0.0.0.0"`
	Port                   int           `env:"PORT,default=8080"`
	HealthPort             int           `env:"HEALTH_PORT,default=8081"`
	DebugPort              int           `env:"DEBUG_PORT,default=8082"`
	TopicID                string        `env:"TOPIC_ID,required=true"`
	OperatorAccountID      string        `env:"OPERATOR_ACCOUNT_ID,required=true"`
	OperatorPrivateKey     string        `env:"OPERATOR_PRIVATE_KEY,required=true"`
	HederaNetwork          string        `env:"HEDERA_NETWORK,default=testnet"`
	RequiredFeeTinybar     int64         `env:"REQUIRED_FEE_TINYBAR,default=500000000"`
	AgentReply             string        `env:"AGENT_REPLY,default=Agents response"`
	AgentName              string        `env:"AGENT_NAME,default=agent"`
	DedupeBackend          string        `env:"DEDUPE_BACKEND,default=redis"`
	RedisAddr              string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword          string        `env:"REDIS_PASSWORD"`
	RedisTLS               bool          `env:"REDIS_TLS,default=false"`
	BadgerFilepath         string        `env:"BADGER_FILEPATH,default=./data/dedupe"`
	StoreTimeout           time.Duration `env:"STORE_TIMEOUT,default=3s"`
	LedgerTimeout          time.Duration `env:"LEDGER_TIMEOUT,default=30s"`
	SubscriptionBufferSize int           `env:"SUBSCRIPTION_BUFFER_SIZE,default=256"`
	ConnectionBufferSize   int           `env:"CONNECTION_BUFFER_SIZE,default=64"`
	MaxInFlight            int64         `env:"MAX_IN_FLIGHT,default=128"`
	InboundRate            float64       `env:"INBOUND_RATE,default=5"`
	InboundBurst           int           `env:"INBOUND_BURST,default=10"`
	RestartInterval        time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	MetricInterval         time.Duration `env:"METRIC_INTERVAL,default=15s"`
	ShutdownTimeout        time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

func (c Config) Validate() error {
	if c.DedupeBackend != backendRedis && c.DedupeBackend != backendBadger {
		return fmt.Errorf("DEDUPE_BACKEND must be %q or %q, got %q", backendRedis, backendBadger, c.DedupeBackend)
	}
	if c.RequiredFeeTinybar <= 0 {
		return fmt.Errorf("REQUIRED_FEE_TINYBAR must be positive, got %d", c.RequiredFeeTinybar)
	}
	if c.MetricInterval <= 0 {
		return fmt.Errorf("METRIC_INTERVAL must be positive, got %s", c.MetricInterval)
	}
	return nil
}
