package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the configuration of the development API server.
type DevServerConfig struct {
	HashKey string
	Version string
	// Location interprets wall-clock times sent by clients.
	Location *time.Location

	HTTPAddress    string
	RequestTimeout time.Duration

	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// GetDevServerConfig builds and validates the dev server view of the merged
// structured configuration.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewDevServerConfig(cfg)
}

// NewDevServerConfig maps the dev server fields of cfg and validates them.
func NewDevServerConfig(cfg *StructuredConfig) (*DevServerConfig, error) {
	loc, err := loadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, err
	}

	serverCfg := &DevServerConfig{
		HashKey:        cfg.App.HashKey,
		Version:        cfg.App.Version,
		Location:       loc,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		TokenSignKey:   cfg.Auth.TokenSignKey,
		TokenIssuer:    cfg.Auth.TokenIssuer,
		TokenDuration:  cfg.Auth.TokenDuration,
	}

	return serverCfg, serverCfg.validate()
}
