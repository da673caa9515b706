// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-todo-keeper binaries. It is populated by merging command-line flags,
// a .env file, environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the location of the item store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address of the web application.
	Server Server `envPrefix:"SERVER_"`

	// Adapter points the terminal client at a running web application.
	// When HTTPAddress is empty the client opens the store file itself.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Translator configures the text-generation provider.
	Translator Translator `envPrefix:"TRANSLATOR_"`

	// GoogleAPIKey and OpenAIAPIKey are the providers' conventional
	// credential variables. They are used when TRANSLATOR_API_KEY is unset.
	GoogleAPIKey string `env:"GOOGLE_API_KEY"`
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment
	// before variables are read. Populated via the -env-file flag.
	DotEnvPath string
}

// App holds application-level values.
type App struct {
	// Version is the version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	// DB holds the relational database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite item store.
type DB struct {
	// DSN is the path of the SQLite file (e.g. "./todo.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the web application.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds settings of the client's connection to a remote server.
type Adapter struct {
	// HTTPAddress is the base address of the web application
	// (e.g. "localhost:8080" or "http://todo.lan:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Translator configures the text-generation API used for translations.
type Translator struct {
	// Provider is "gemini" or "openai".
	// Env: TRANSLATOR_PROVIDER
	Provider string `env:"PROVIDER"`

	// APIKey is the provider credential. An empty key disables translation.
	// Env: TRANSLATOR_API_KEY
	APIKey string `env:"API_KEY"`

	// Model overrides the provider's default model.
	// Env: TRANSLATOR_MODEL
	Model string `env:"MODEL"`

	// BaseURL overrides the provider endpoint.
	// Env: TRANSLATOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds one translation call. Zero leaves it to the caller.
	// Env: TRANSLATOR_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// BreakerFailures is the number of consecutive failures that open the
	// circuit breaker. Zero disables the breaker.
	// Env: TRANSLATOR_BREAKER_FAILURES
	BreakerFailures uint32 `env:"BREAKER_FAILURES"`

	// BreakerCooldown is how long the breaker stays open.
	// Env: TRANSLATOR_BREAKER_COOLDOWN
	BreakerCooldown time.Duration `env:"BREAKER_COOLDOWN"`
}

// Enabled reports whether a credential is configured.
func (t Translator) Enabled() bool {
	return t.APIKey != ""
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources. The first source that sets a field wins:
//  1. Command-line flags
//  2. Environment variables (after loading the .env file)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withDotEnv().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
