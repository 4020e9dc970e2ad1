package config

import (
	"errors"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env string

	Storage StorageConfig
	Log     LogConfig
	Render  RenderConfig
	Assets  AssetsConfig
}

// StorageConfig locates the local data directory and its contents.
type StorageConfig struct {
	DataDir    string
	DBPath     string
	ExportsDir string
	ImagesDir  string
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// RenderConfig tunes background PDF generation.
type RenderConfig struct {
	Workers    int
	Retries    int
	PhotoLimit int
}

// AssetsConfig caps imported image sizes.
type AssetsConfig struct {
	MaxPhotoBytes     int64
	MaxSignatureBytes int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")

	dataDir := v.GetString("DATA_DIR")
	cfg.Storage = StorageConfig{
		DataDir:    dataDir,
		DBPath:     v.GetString("DB_PATH"),
		ExportsDir: v.GetString("EXPORTS_DIR"),
		ImagesDir:  v.GetString("IMAGES_DIR"),
	}
	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = filepath.Join(dataDir, "reports.db")
	}
	if cfg.Storage.ExportsDir == "" {
		cfg.Storage.ExportsDir = filepath.Join(dataDir, "exports")
	}
	if cfg.Storage.ImagesDir == "" {
		cfg.Storage.ImagesDir = filepath.Join(dataDir, "images")
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
		File:   v.GetString("LOG_FILE"),
	}

	cfg.Render = RenderConfig{
		Workers:    v.GetInt("RENDER_WORKERS"),
		Retries:    v.GetInt("RENDER_RETRIES"),
		PhotoLimit: v.GetInt("RENDER_PHOTO_LIMIT"),
	}

	maxPhoto := v.GetInt64("ASSETS_MAX_PHOTO_SIZE")
	if maxPhoto <= 0 {
		maxPhoto = 5 * 1024 * 1024
	}
	maxSignature := v.GetInt64("ASSETS_MAX_SIGNATURE_SIZE")
	if maxSignature <= 0 {
		maxSignature = 2 * 1024 * 1024
	}
	cfg.Assets = AssetsConfig{
		MaxPhotoBytes:     maxPhoto,
		MaxSignatureBytes: maxSignature,
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DB_PATH", "")
	v.SetDefault("EXPORTS_DIR", "")
	v.SetDefault("IMAGES_DIR", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_FILE", "")

	v.SetDefault("RENDER_WORKERS", 1)
	v.SetDefault("RENDER_RETRIES", 3)
	v.SetDefault("RENDER_PHOTO_LIMIT", 10)

	v.SetDefault("ASSETS_MAX_PHOTO_SIZE", 5*1024*1024)
	v.SetDefault("ASSETS_MAX_SIGNATURE_SIZE", 2*1024*1024)
}
