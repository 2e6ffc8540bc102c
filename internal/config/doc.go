// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from business logic.
//
// Settings are read in order of increasing precedence: built-in defaults, an
// optional config.yaml in the working directory or ./config, then environment
// variables prefixed with ITINERARY_.
package config
