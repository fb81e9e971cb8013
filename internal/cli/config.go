package cli

import (
	"github.com/nakhla/datesqr/core/server"
	"github.com/nakhla/datesqr/integration/storage/s3"
	"github.com/nakhla/datesqr/pkg/qrcode"
)

// Config is the datesqr application configuration, read from the
// environment and an optional .env file.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"datesqr"`
	Env     string `env:"APP_ENV" envDefault:"development"`
	// LogLevel overrides the environment's default level when set.
	LogLevel string `env:"LOG_LEVEL"`
	// BaseURL is the public origin product codes link to.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Server  server.Config
	QR      qrcode.Config
	Storage StorageConfig
}

// StorageConfig selects where rendered codes are saved.
type StorageConfig struct {
	Driver       string `env:"STORAGE_DRIVER" envDefault:"local"`
	LocalDir     string `env:"STORAGE_LOCAL_DIR" envDefault:"./qrcodes"`
	LocalBaseURL string `env:"STORAGE_LOCAL_BASE_URL"`
	S3           s3.Config
}
