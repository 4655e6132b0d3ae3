package logger

import "go.uber.org/zap"

// New builds the application logger. Production gets the JSON encoder,
// anything else the development console encoder.
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
