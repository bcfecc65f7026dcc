package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/creativahub/creativahub-backend/internal/platform/logger"
	"github.com/creativahub/creativahub-backend/internal/utils"
)

type Config struct {
	Port           string
	LogMode        string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	CORSOrigins    []string
	MediaDir       string
	AvatarFont     string
	ServiceName    string
	Environment    string
}

// fileConfig is the optional YAML layer. Env vars override every field.
type fileConfig struct {
	Port        string   `yaml:"port"`
	LogMode     string   `yaml:"log_mode"`
	CORSOrigins []string `yaml:"cors_origins"`
	MediaDir    string   `yaml:"media_dir"`
	AvatarFont  string   `yaml:"avatar_font"`
	ServiceName string   `yaml:"service_name"`
	Environment string   `yaml:"environment"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	var fc fileConfig
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if log != nil {
			log.Info("Loaded config file", "path", path)
		}
	}

	cfg := Config{
		Port:           utils.GetEnv("PORT", orDefault(fc.Port, "8080"), log),
		LogMode:        utils.GetEnv("LOG_MODE", orDefault(fc.LogMode, "development"), log),
		JWTSecretKey:   utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL: time.Duration(utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)) * time.Second,
		MediaDir:       utils.GetEnv("MEDIA_DIR", orDefault(fc.MediaDir, "media"), log),
		AvatarFont:     utils.GetEnv("AVATAR_FONT", fc.AvatarFont, log),
		ServiceName:    utils.GetEnv("SERVICE_NAME", orDefault(fc.ServiceName, "creativahub"), log),
		Environment:    utils.GetEnv("ENVIRONMENT", orDefault(fc.Environment, "development"), log),
	}

	cfg.CORSOrigins = fc.CORSOrigins
	if raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS")); raw != "" {
		var origins []string
		for _, part := range strings.Split(raw, ",") {
			if o := strings.TrimSpace(part); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORSOrigins = origins
	}

	return cfg, nil
}

func orDefault(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
