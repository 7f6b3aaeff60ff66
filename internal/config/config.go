package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/d-lobanov/pomodorod/internal/session"
)

// Config holds settings shared by the daemon and control binaries.
type Config struct {
	// ServerAddress is the gRPC address the daemon listens on and clients dial.
	ServerAddress string `yaml:"server_addr"`
	// StateFile is the path to the JSON file storing the session snapshot.
	StateFile string `yaml:"state_file"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// Timers configures the phase durations, in seconds.
	Timers Timers `yaml:"timers"`
	// Messages configures user-facing texts emitted by the daemon.
	Messages Messages `yaml:"messages"`
}

// Timers holds phase durations in whole seconds, matching the settings file.
type Timers struct {
	// WorkSeconds is the default length of a work phase.
	WorkSeconds int `yaml:"work_duration"`
	// BreakSeconds is the default length of a break phase.
	BreakSeconds int `yaml:"break_duration"`
	// SnoozeSeconds is the default extension applied by snooze.
	SnoozeSeconds int `yaml:"snooze_duration"`
}

// Messages holds user-facing texts.
type Messages struct {
	// WorkEndPrompts are reflection prompts; one is picked at random when a
	// work phase ends.
	WorkEndPrompts []string `yaml:"work_end_prompts"`
}

const (
	// DefaultConfigFilename is the default filename for daemon settings.
	DefaultConfigFilename = "pomodoro-settings.yaml"

	// DefaultStateFilename is the default filename for the session snapshot.
	DefaultStateFilename = "pomodoro-state.json"

	// DefaultServerAddress is the loopback address the daemon binds by default.
	DefaultServerAddress = "127.0.0.1:50051"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultWorkSeconds is 25 minutes.
	DefaultWorkSeconds = 1500
	// DefaultBreakSeconds is 5 minutes.
	DefaultBreakSeconds = 300
	// DefaultSnoozeSeconds is 1 minute.
	DefaultSnoozeSeconds = 60

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// defaultSettingsYAML seeds a fresh settings file. Written verbatim so the
// comments survive into the file the user is expected to edit.
const defaultSettingsYAML = `server_addr: 127.0.0.1:50051
state_file: pomodoro-state.json
timeout: 5s

timers:
  work_duration: 1500 # seconds (25 minutes)
  break_duration: 300 # seconds (5 minutes)
  snooze_duration: 60 # seconds (1 minute)

messages:
  work_end_prompts:
    - "How present are you in what you do?"
    - "What do you want to focus on next?"
    - "What is your goal for the day?"
`

// defaultWorkEndPrompts back Validate when a config omits the prompts.
//
//nolint:gochecknoglobals // Shared immutable defaults.
var defaultWorkEndPrompts = []string{
	"How present are you in what you do?",
	"What do you want to focus on next?",
	"What is your goal for the day?",
}

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errServerSocketRequired is returned when server address is missing.
	errServerSocketRequired = errors.New("server address must be provided")
)

// Default returns a configuration filled with default values.
func Default() *Config {
	return &Config{
		ServerAddress: DefaultServerAddress,
		StateFile:     DefaultStateFilename,
		Timeout:       DefaultTimeout,
		Timers: Timers{
			WorkSeconds:   DefaultWorkSeconds,
			BreakSeconds:  DefaultBreakSeconds,
			SnoozeSeconds: DefaultSnoozeSeconds,
		},
		Messages: Messages{
			WorkEndPrompts: append([]string(nil), defaultWorkEndPrompts...),
		},
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrCreate reads configuration from the provided path,
// writing a file with default values first if none exists.
func LoadOrCreate(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	if _, err := os.Stat(filepath.Clean(path)); errors.Is(err, os.ErrNotExist) {
		writeErr := os.WriteFile(filepath.Clean(path), []byte(defaultSettingsYAML), DefaultFilePermissions)
		if writeErr != nil {
			return nil, fmt.Errorf("write default settings: %w", writeErr)
		}
	}

	return Load(path)
}

// Save writes configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided configuration for required fields
// and fills in defaults for optional ones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ServerAddress == "" {
		return errServerSocketRequired
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.StateFile == "" {
		cfg.StateFile = DefaultStateFilename
	}

	if cfg.Timers.WorkSeconds <= 0 {
		cfg.Timers.WorkSeconds = DefaultWorkSeconds
	}

	if cfg.Timers.BreakSeconds <= 0 {
		cfg.Timers.BreakSeconds = DefaultBreakSeconds
	}

	if cfg.Timers.SnoozeSeconds <= 0 {
		cfg.Timers.SnoozeSeconds = DefaultSnoozeSeconds
	}

	if len(cfg.Messages.WorkEndPrompts) == 0 {
		cfg.Messages.WorkEndPrompts = append([]string(nil), defaultWorkEndPrompts...)
	}

	return nil
}

// Durations converts the configured timers to session phase durations.
func (c *Config) Durations() session.Durations {
	return session.Durations{
		Work:   time.Duration(c.Timers.WorkSeconds) * time.Second,
		Break:  time.Duration(c.Timers.BreakSeconds) * time.Second,
		Snooze: time.Duration(c.Timers.SnoozeSeconds) * time.Second,
	}
}
