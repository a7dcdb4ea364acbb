package config

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment is the deployment mode. It decides the session cookie policy.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment maps NODE_ENV-style values onto an Environment.
// Anything other than "production" is treated as development.
func ParseEnvironment(value string) Environment {
	if strings.EqualFold(strings.TrimSpace(value), string(Production)) {
		return Production
	}
	return Development
}

// IsProduction reports whether cookies must be Secure and SameSite=None.
func (e Environment) IsProduction() bool {
	return e == Production
}

// NewLogger builds the process logger from LogLevel, falling back to info.
func NewLogger(cfg *Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithField("logLevel", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if !cfg.Server.Environment.IsProduction() {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
