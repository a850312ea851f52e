package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/01moynul/studybuddy-golang/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Env     string        `mapstructure:"env" validate:"oneof=development production staging test"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	DB      DBConfig      `mapstructure:"db"`
	Auth    AuthConfig    `mapstructure:"auth"`
	AI      AIConfig      `mapstructure:"ai"`
	Credits CreditsConfig `mapstructure:"credits"`
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=0"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" validate:"min=1"`
	BaseURL         string        `mapstructure:"base_url" validate:"required,url"`
	UploadDir       string        `mapstructure:"upload_dir" validate:"required"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes" validate:"min=1"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn" validate:"required"`
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	Migrate         bool          `mapstructure:"migrate"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=16"`
	Issuer    string `mapstructure:"issuer"` // empty disables the iss check
}

type AIConfig struct {
	APIKey   string `mapstructure:"api_key" validate:"required"`
	Model    string `mapstructure:"model" validate:"required"`
	MaxCards int    `mapstructure:"max_cards" validate:"min=1,max=50"`
}

type CreditsConfig struct {
	ResetCron string `mapstructure:"reset_cron" validate:"required"`
}

var envBindings = map[string]string{
	"env":             "APP_ENV",
	"http.port":       "PORT",
	"http.base_url":   "BASE_URL",
	"http.upload_dir": "UPLOAD_DIR",
	"db.dsn":          "DB_DSN",
	"auth.jwt_secret": "JWT_SECRET",
	"auth.issuer":     "JWT_ISSUER",
	"ai.api_key":      "GEMINI_API_KEY",
	"ai.model":        "GEMINI_MODEL",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 15*time.Second)
	v.SetDefault("http.write_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("http.base_url", "http://localhost:8080")
	v.SetDefault("http.upload_dir", "./uploads")
	v.SetDefault("http.max_upload_bytes", 10<<20)
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 25)
	v.SetDefault("db.conn_max_life_time", 5*time.Minute)
	v.SetDefault("db.migrate", true)
	v.SetDefault("ai.model", "gemini-1.5-flash")
	v.SetDefault("ai.max_cards", 10)
	v.SetDefault("credits.reset_cron", "0 0 1 * *")
}

// Init loads configs/<CONFIG_NAME>.yaml (default "default"), then applies
// environment overrides and validates the result. A missing file is not an
// error; defaults and the environment are enough to run.
func Init() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
