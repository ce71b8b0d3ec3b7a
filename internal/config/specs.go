// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	// AuthSecret is the process-wide key user session tokens are signed with.
	AuthSecret string `envconfig:"auth_secret" required:"true"`

	SessionLifetime           time.Duration `envconfig:"session_lifetime" default:"168h"`
	AgentTokenLifetime        time.Duration `envconfig:"agent_token_lifetime" default:"24h"`
	RegistrationTokenLifetime time.Duration `envconfig:"registration_token_lifetime" default:"24h"`
	InvitationLifetime        time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	SecureCookies bool `envconfig:"secure_cookies" default:"true"`

	BillingProviderURL   string `envconfig:"billing_provider_url" default:"https://pay.tcpfleet.io"`
	BillingWebhookSecret string `envconfig:"billing_webhook_secret"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`
}
