package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/puisi/internal/flagx"
	"github.com/dmitrijs2005/puisi/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations accept
// both "5s" strings and integer nanoseconds. Absent fields leave the
// current value untouched.
type JsonConfig struct {
	EndpointAddrHTTP            string          `json:"endpoint_addr_http"`
	EndpointAddrGRPCHealth      string          `json:"endpoint_addr_grpc_health"`
	DatabaseDSN                 string          `json:"database_dsn"`
	SecretKey                   string          `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AuthServiceURL              string          `json:"auth_service_url"`
	PuisiServiceURL             string          `json:"puisi_service_url"`
	UpstreamTimeout             *timex.Duration `json:"upstream_timeout"`
	ShutdownTimeout             *timex.Duration `json:"shutdown_timeout"`
	PasswordHashCost            *int            `json:"password_hash_cost"`
	StrictOwnership             *bool           `json:"strict_ownership"`
	RemoteTokenValidation       *bool           `json:"remote_token_validation"`
}

// parseJson overlays the file given with -c / -config onto config.
// Without the flag nothing happens. An unreadable file or invalid JSON
// panics, since the service cannot start with a config it did not read.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	overlayString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	overlayString(&config.EndpointAddrGRPCHealth, c.EndpointAddrGRPCHealth)
	overlayString(&config.DatabaseDSN, c.DatabaseDSN)
	overlayString(&config.SecretKey, c.SecretKey)
	overlayString(&config.AuthServiceURL, c.AuthServiceURL)
	overlayString(&config.PuisiServiceURL, c.PuisiServiceURL)

	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.UpstreamTimeout != nil {
		config.UpstreamTimeout = c.UpstreamTimeout.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.PasswordHashCost != nil {
		config.PasswordHashCost = *c.PasswordHashCost
	}
	if c.StrictOwnership != nil {
		config.StrictOwnership = *c.StrictOwnership
	}
	if c.RemoteTokenValidation != nil {
		config.RemoteTokenValidation = *c.RemoteTokenValidation
	}
}

func overlayString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
