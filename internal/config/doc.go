// Package config handles configuration loading and validation from
// environment variables. It provides type-safe access to the settings the
// server and the two outbound API clients need, keeping configuration
// details separate from business logic.
package config
