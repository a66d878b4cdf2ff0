package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// Config holds all application settings, loaded in layers:
// built-in defaults, then an optional YAML config file, then
// EXPLODATA_* environment variables.
type Config struct {
	JournalDir   string     `koanf:"journal_dir"`
	DatabasePath string     `koanf:"database_path"`
	LogFile      string     `koanf:"log_file"`
	Workers      int        `koanf:"workers"` // 0 = one per CPU, max 4
	EDSM         EDSMConfig `koanf:"edsm"`
}

// EDSMConfig holds settings for the remote body catalog service.
type EDSMConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

func defaultConfig() Config {
	dataDir := filepath.Join(xdg.DataHome, "explodata")
	return Config{
		JournalDir:   defaultJournalDir(),
		DatabasePath: filepath.Join(dataDir, "explodata.db"),
		LogFile:      filepath.Join(dataDir, "explodata.log"),
		Workers:      0,
		EDSM: EDSMConfig{
			URL:     "https://www.edsm.net/api-system-v1/bodies",
			Timeout: 10 * time.Second,
		},
	}
}

// defaultJournalDir returns the game's journal directory for the
// current platform, or an empty string if it cannot be determined.
func defaultJournalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	candidates := []string{
		filepath.Join(home, "Saved Games", "Frontier Developments", "Elite Dangerous"),
		filepath.Join(home, ".local", "share", "Frontier Developments", "Elite Dangerous"),
	}
	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// Load builds the configuration from defaults, an optional config file,
// and environment variables, in increasing order of precedence.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// EXPLODATA_JOURNAL_DIR -> journal_dir, EXPLODATA_EDSM_URL -> edsm.url
	envProvider := env.Provider("EXPLODATA_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "EXPLODATA_"))
		if after, found := strings.CutPrefix(s, "edsm_"); found {
			return "edsm." + after
		}
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// findConfigFile looks for a config file in the conventional locations.
func findConfigFile() string {
	candidates := []string{
		"explodata.yaml",
		filepath.Join(xdg.ConfigHome, "explodata", "config.yaml"),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
