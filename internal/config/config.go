package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/Rorical/RoriMap/internal/models"
)

// Config is the complete RoriMap configuration.
type Config struct {
	Locale   string            `mapstructure:"locale"`
	DataDir  string            `mapstructure:"data_dir"`
	Database string            `mapstructure:"database"`
	Logging  LoggingConfig     `mapstructure:"logging"`
	Icons    IconsConfig       `mapstructure:"icons"`
	Import   ImportConfig      `mapstructure:"import"`
	Routes   models.RouteTable `mapstructure:"routes"`

	v    *viper.Viper
	path string
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR
	Level string `mapstructure:"level"`
	// File defaults to <data_dir>/debug.log; "off" disables logging
	File string `mapstructure:"file"`
}

// IconsConfig controls icon URL resolution
type IconsConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Format  string `mapstructure:"format"`
}

// ImportConfig overrides the import dialog copy. Empty fields fall back to
// the built-in translations.
type ImportConfig struct {
	Title       string `mapstructure:"title"`
	Body        string `mapstructure:"body"`
	Support     string `mapstructure:"support"`
	Bookmarklet string `mapstructure:"bookmarklet"`
}

// LoadConfig reads the config at path, or at the default location when path
// is empty. A missing default file is created with defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = getConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := ensureConfigDir(path); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	setDefaults(v, filepath.Dir(path))
	v.SetConfigFile(path)
	v.SetEnvPrefix("RORIMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := writeDefaultConfig(path); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := decode(v, path)
	if err != nil {
		return nil, err
	}
	cfg.path = path
	return cfg, nil
}

func decode(v *viper.Viper, path string) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	// viper folds map keys to lower case; route keys and locale codes keep
	// the case written in the file
	if isYAML(path) {
		routes, err := readRoutes(path)
		if err != nil {
			return nil, err
		}
		cfg.Routes = routes
	}
	if len(cfg.Routes) == 0 {
		cfg.Routes = DefaultRoutes()
	}
	cfg.v = v
	return &cfg, nil
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// LogFile returns the resolved debug log path, "" when disabled.
func (c *Config) LogFile() string {
	switch c.Logging.File {
	case "off", "none":
		return ""
	case "":
		return filepath.Join(c.DataDir, "debug.log")
	default:
		return c.Logging.File
	}
}

// DatabasePath returns the resolved SQLite path.
func (c *Config) DatabasePath() string {
	if c.Database == "" {
		return filepath.Join(c.DataDir, "rorimap.db")
	}
	if c.Database == ":memory:" || filepath.IsAbs(c.Database) {
		return c.Database
	}
	return filepath.Join(c.DataDir, c.Database)
}

// SetLocale updates the locale in memory; call Save to persist it.
func (c *Config) SetLocale(locale string) {
	c.Locale = locale
	if c.v != nil {
		c.v.Set("locale", locale)
	}
}

// Save writes the locale back to the config file. Only the file's own
// values are kept; environment overrides are never persisted.
func (c *Config) Save() error {
	if c.v == nil || c.path == "" {
		return errors.New("config was not loaded from a file")
	}
	if isYAML(c.path) {
		if err := saveYAMLLocale(c.path, c.Locale); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}
		return nil
	}

	w := viper.New()
	w.SetConfigFile(c.path)
	if err := w.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	w.Set("locale", c.Locale)
	if err := w.WriteConfigAs(c.path); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Watch calls onChange with a freshly decoded config whenever the file
// changes. Decode failures are passed to onError.
func (c *Config) Watch(onChange func(*Config), onError func(error)) {
	if c.v == nil {
		return
	}
	var mu sync.Mutex
	c.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		next, err := decode(c.v, c.path)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		next.path = c.path
		onChange(next)
	})
	c.v.WatchConfig()
}

func getConfigPath() (string, error) {
	var configDir string

	// Use RORIMAP_HOME if set, otherwise use user's home directory
	if home := os.Getenv("RORIMAP_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".rorimap", "config.yaml"), nil
}

func ensureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0755)
}
