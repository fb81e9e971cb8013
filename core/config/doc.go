// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/nakhla/datesqr/core/config"
//
//	type AppConfig struct {
//		Name    string `env:"APP_NAME" envDefault:"datesqr"`
//		BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`
//		QR      qrcode.Config
//	}
//
//	func main() {
//		var cfg AppConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 AppConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 AppConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	config.MustLoad(&server.Config{})
//	config.MustLoad(&s3.Config{})
//
// Parse skips the cache, and Reset clears it between tests.
package config
