package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	Environment    Environment
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration.
// URI wins over the User/Password/Cluster triple when both are set.
type MongoDBConfig struct {
	URI      string
	User     string
	Password string
	Cluster  string
	Database string
}

// JWTConfig holds session token configuration
type JWTConfig struct {
	Secret  string
	TTLDays int
}

// ConnectionURI returns the MongoDB connection string.
func (m MongoDBConfig) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	if m.Cluster == "" {
		return ""
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(m.User), url.QueryEscape(m.Password), m.Cluster)
}

// envBindings maps config keys onto the environment variables the deployment uses.
var envBindings = map[string]string{
	"Server.Port":           "PORT",
	"Server.Environment":    "NODE_ENV",
	"Server.AllowedOrigins": "ALLOWED_ORIGINS",
	"MongoDB.URI":           "MONGODB_URI",
	"MongoDB.User":          "DB_USER",
	"MongoDB.Password":      "DB_PASS",
	"MongoDB.Cluster":       "DB_CLUSTER",
	"MongoDB.Database":      "MONGODB_DATABASE",
	"JWT.Secret":            "ACCESS_TOKEN_SECRET",
	"JWT.TTLDays":           "TOKEN_TTL_DAYS",
	"LogLevel":              "LOG_LEVEL",
}

// Load loads configuration from a .env file, an optional config.yaml in path,
// and environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath("./config")

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, err
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("Server.Port"),
			Environment:    ParseEnvironment(v.GetString("Server.Environment")),
			AllowedOrigins: splitList(v.GetStringSlice("Server.AllowedOrigins")),
		},
		MongoDB: MongoDBConfig{
			URI:      v.GetString("MongoDB.URI"),
			User:     v.GetString("MongoDB.User"),
			Password: v.GetString("MongoDB.Password"),
			Cluster:  v.GetString("MongoDB.Cluster"),
			Database: v.GetString("MongoDB.Database"),
		},
		JWT: JWTConfig{
			Secret:  v.GetString("JWT.Secret"),
			TTLDays: v.GetInt("JWT.TTLDays"),
		},
		LogLevel: v.GetString("LogLevel"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWT.Secret == "" {
		return errors.New("config: ACCESS_TOKEN_SECRET is required")
	}
	if c.MongoDB.ConnectionURI() == "" {
		return errors.New("config: MONGODB_URI or DB_USER/DB_PASS/DB_CLUSTER is required")
	}
	if c.JWT.TTLDays <= 0 {
		return fmt.Errorf("config: TOKEN_TTL_DAYS must be positive, got %d", c.JWT.TTLDays)
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "5000")
	v.SetDefault("Server.Environment", string(Development))
	v.SetDefault("Server.AllowedOrigins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
		"https://mcpitc.web.app",
	})
	v.SetDefault("MongoDB.Database", "mcpitc")
	v.SetDefault("JWT.TTLDays", 365)
	v.SetDefault("LogLevel", "info")
}

// splitList accepts both a YAML list and a comma-separated env value.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
