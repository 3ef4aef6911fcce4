package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCacheVersion = "v1"
	DefaultOrigin       = "http://127.0.0.1:5173"
	DefaultListenAddr   = "127.0.0.1:8787"
	DefaultOfflinePath  = "/offline.html"
)

// DefaultManifest lists the app shell assets cached on install.
var DefaultManifest = []string{
	"/",
	"/index.html",
	DefaultOfflinePath,
	"/manifest.json",
	"/icons/icon-192.png",
	"/icons/icon-512.png",
}

type Config struct {
	DataPath     string        `yaml:"-"`
	DBPath       string        `yaml:"db_path" env:"EXAMPREP_DB_PATH"`
	DatasetPath  string        `yaml:"dataset_path" env:"EXAMPREP_DATASET_PATH"`
	CacheVersion string        `yaml:"cache_version" env:"EXAMPREP_CACHE_VERSION"`
	Origin       string        `yaml:"origin" env:"EXAMPREP_ORIGIN"`
	ListenAddr   string        `yaml:"listen_addr" env:"EXAMPREP_LISTEN_ADDR"`
	SyncURL      string        `yaml:"sync_url" env:"EXAMPREP_SYNC_URL"`
	LogLevel     string        `yaml:"log_level" env:"EXAMPREP_LOG_LEVEL"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"EXAMPREP_FETCH_TIMEOUT"`
	OfflinePath  string        `yaml:"offline_path"`
	Manifest     []string      `yaml:"manifest"`
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	manifest := make([]string, len(DefaultManifest))
	copy(manifest, DefaultManifest)
	return Config{
		DataPath:     dataPath,
		DBPath:       filepath.Join(dataPath, "examprep.db"),
		DatasetPath:  filepath.Join(dataPath, "questions.yaml"),
		CacheVersion: DefaultCacheVersion,
		Origin:       DefaultOrigin,
		ListenAddr:   DefaultListenAddr,
		LogLevel:     "info",
		OfflinePath:  DefaultOfflinePath,
		Manifest:     manifest,
	}, nil
}

// Load builds the defaults for dataPath, overlays <dataPath>/config.yaml when
// present and finally applies EXAMPREP_* environment variables.
func Load(dataPath string) (Config, error) {
	cfg, err := New(dataPath)
	if err != nil {
		return Config{}, err
	}
	path := filepath.Join(dataPath, "config.yaml")
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DataPath = dataPath
	if cfg.OfflinePath == "" {
		cfg.OfflinePath = DefaultOfflinePath
	}
	if len(cfg.Manifest) == 0 {
		cfg.Manifest = append([]string(nil), DefaultManifest...)
	}
	return cfg, nil
}
