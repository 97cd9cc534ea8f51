package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/bootmenu/internal/app"
	"github.com/spf13/pflag"
)

const appName = "bootmenu"

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath  string
	MaxSizeMB int
	Trace     bool
}

const (
	envConfigPath = "BOOTMENU_CONFIG"
	envLogFile    = "BOOTMENU_LOG_FILE"
	envLogMaxSize = "BOOTMENU_LOG_MAX_SIZE"
	envTrace      = "BOOTMENU_TRACE"
	envTimeout    = "BOOTMENU_TIMEOUT"
	envPoll       = "BOOTMENU_POLL"
	envWidth      = "BOOTMENU_WIDTH"
	envHeight     = "BOOTMENU_HEIGHT"
)

// Flags holds the values bound to a flag set until Resolve reads them.
type Flags struct {
	configPath *string
	logFile    *string
	logMaxSize *int
	trace      *bool
	timeout    *int
	poll       *time.Duration
	width      *int
	height     *int
}

// Register binds the application flags on fs, using environ for defaults.
func Register(fs *pflag.FlagSet, environ []string) *Flags {
	env := parseEnv(environ)
	home := envOrDefault(env, "HOME", "")

	return &Flags{
		configPath: fs.String("config", envOrDefault(env, envConfigPath, DefaultConfigPath(home)), "path to the menu document"),
		logFile:    fs.String("log-file", envOrDefault(env, envLogFile, DefaultLogPath(home)), "path to the log file"),
		logMaxSize: fs.Int("log-max-size", envOrInt(env, envLogMaxSize, 5), "rotate the log after this many megabytes"),
		trace:      fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		timeout:    fs.Int("timeout", envOrInt(env, envTimeout, 0), "countdown in seconds (0 uses the menu document)"),
		poll:       fs.Duration("poll", envOrDuration(env, envPoll, time.Second), "interval between countdown checks"),
		width:      fs.Int("width", envOrInt(env, envWidth, 0), "viewport width in cells (0 uses terminal width)"),
		height:     fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows (0 uses terminal height)"),
	}
}

// Resolve builds a Config from the parsed flag values.
func (f *Flags) Resolve(args []string) Config {
	return Config{
		App: app.Config{
			MenuPath:     *f.configPath,
			Timeout:      *f.timeout,
			PollInterval: *f.poll,
			Width:        *f.width,
			Height:       *f.height,
		},
		Logging: Logging{
			FilePath:  *f.logFile,
			MaxSizeMB: *f.logMaxSize,
			Trace:     *f.trace,
		},
		Flags: map[string]string{
			"config":     *f.configPath,
			"logFile":    *f.logFile,
			"logMaxSize": strconv.Itoa(*f.logMaxSize),
			"trace":      strconv.FormatBool(*f.trace),
			"timeout":    strconv.Itoa(*f.timeout),
			"poll":       f.poll.String(),
			"width":      strconv.Itoa(*f.width),
			"height":     strconv.Itoa(*f.height),
		},
		Args: append([]string(nil), args...),
	}
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	flags := Register(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg := flags.Resolve(args)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfigPath is $HOME/.config/bootmenu/bootmenu.yaml.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".config", appName, appName+".yaml")
}

// DefaultLogPath is $HOME/tmp/bootmenu.log.
func DefaultLogPath(home string) string {
	return filepath.Join(home, "tmp", appName+".log")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0 (got %d)", cfg.App.Timeout)
	}
	if cfg.App.PollInterval <= 0 {
		return fmt.Errorf("poll must be > 0 (got %s)", cfg.App.PollInterval)
	}
	if cfg.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("log-max-size must be >= 0 (got %d)", cfg.Logging.MaxSizeMB)
	}
	return nil
}
