package taskbackend

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/prajwal2403/task-backend/types"
)

// HTTPConfig controls the HTTP transport layer.
type HTTPConfig struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listenAddr"`

	// AuthToken is the shared secret checked against the X-Auth-Token header
	// on mutating endpoints. Empty disables authentication.
	AuthToken string `yaml:"authToken"`

	// AllowedOrigins lists origins allowed by the CORS middleware.
	AllowedOrigins []string `yaml:"allowedOrigins"`

	// EnableMetrics exposes Prometheus metrics on /metrics.
	EnableMetrics bool `yaml:"enableMetrics"`
}

// SeedConfig provides the initial roster loaded at startup.
//
// The service performs an initial rotation right after seeding so the
// assignment table is never empty while people and tasks exist.
type SeedConfig struct {
	People []types.Person `yaml:"people"`
	Tasks  []types.Task   `yaml:"tasks"`
}

// Config is the configuration for the engine, scheduler, and HTTP service.
//
// All duration fields accept standard Go duration strings like "30s", "1h", "24h".
type Config struct {
	// RotationPolicy selects the rotation algorithm: "sequential", "shuffle",
	// or "successor". Policies are mutually exclusive configuration choices
	// of one engine; there is no migration path between them.
	RotationPolicy string `yaml:"rotationPolicy"`

	// RotationDay is the designated weekday for automatic rotation,
	// lower-case English weekday name (e.g. "saturday").
	RotationDay string `yaml:"rotationDay"`

	// CheckInterval is how often the scheduler wakes to evaluate the trigger
	// predicate. Two settings are in common use: 24h (one check per day) and
	// 1h (hourly, so a rotation day is not missed when the process restarts
	// partway through it).
	CheckInterval time.Duration `yaml:"checkInterval"`

	// RetryInterval is the base backoff delay after a failed wake cycle.
	RetryInterval time.Duration `yaml:"retryInterval"`

	// MaxRetryInterval caps the backoff delay between retries.
	MaxRetryInterval time.Duration `yaml:"maxRetryInterval"`

	// RotateOncePerDay guards the fine-grained check interval: once a
	// scheduled rotation has run on a given calendar day, further wakes on
	// that day are no-ops. Disabling it restores the unguarded behavior where
	// every matching wake rotates again.
	RotateOncePerDay bool `yaml:"rotateOncePerDay"`

	// RotateOnChange triggers an immediate rotation when a person or task is
	// added through the service layer.
	RotateOnChange bool `yaml:"rotateOnChange"`

	// ShutdownTimeout is the maximum time to wait for graceful shutdown of
	// the scheduler and HTTP server.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// MetricsNamespace is the Prometheus namespace for emitted metrics.
	MetricsNamespace string `yaml:"metricsNamespace"`

	// HTTP controls the transport layer.
	HTTP HTTPConfig `yaml:"http"`

	// Seed is the initial roster.
	Seed SeedConfig `yaml:"seed"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		RotationPolicy:   "sequential",
		RotationDay:      "saturday",
		CheckInterval:    time.Hour,
		RetryInterval:    30 * time.Second,
		MaxRetryInterval: 10 * time.Minute,
		RotateOncePerDay: true,
		RotateOnChange:   true,
		ShutdownTimeout:  10 * time.Second,
		MetricsNamespace: "taskbackend",
		HTTP: HTTPConfig{
			ListenAddr: ":8080",
			AllowedOrigins: []string{
				"http://localhost:5173",
				"https://task-frontend-flame.vercel.app",
			},
			EnableMetrics: true,
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// Boolean fields are left untouched: their defaults come from DefaultConfig,
// which LoadConfig uses as the unmarshal base.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.RotationPolicy == "" {
		cfg.RotationPolicy = defaults.RotationPolicy
	}
	if cfg.RotationDay == "" {
		cfg.RotationDay = defaults.RotationDay
	}
	if cfg.CheckInterval == 0 {
		cfg.CheckInterval = defaults.CheckInterval
	}
	if cfg.RetryInterval == 0 {
		cfg.RetryInterval = defaults.RetryInterval
	}
	if cfg.MaxRetryInterval == 0 {
		cfg.MaxRetryInterval = defaults.MaxRetryInterval
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if cfg.MetricsNamespace == "" {
		cfg.MetricsNamespace = defaults.MetricsNamespace
	}
	if cfg.HTTP.ListenAddr == "" {
		cfg.HTTP.ListenAddr = defaults.HTTP.ListenAddr
	}
	if cfg.HTTP.AllowedOrigins == nil {
		cfg.HTTP.AllowedOrigins = defaults.HTTP.AllowedOrigins
	}
}

// Validate checks configuration constraints and returns an error for invalid values.
//
// Rules:
//   - RotationDay must be a recognizable weekday name
//   - CheckInterval and RetryInterval must be positive
//   - MaxRetryInterval must be >= RetryInterval
//   - Seed people and tasks must not contain duplicate IDs
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	switch cfg.RotationPolicy {
	case "sequential", "shuffle", "successor":
	default:
		return fmt.Errorf("%w: unrecognized rotation policy %q", types.ErrInvalidConfig, cfg.RotationPolicy)
	}

	if _, err := ParseWeekday(cfg.RotationDay); err != nil {
		return fmt.Errorf("%w: %w", types.ErrInvalidConfig, err)
	}

	if cfg.CheckInterval <= 0 {
		return fmt.Errorf("%w: CheckInterval must be > 0, got %v", types.ErrInvalidConfig, cfg.CheckInterval)
	}

	if cfg.RetryInterval <= 0 {
		return fmt.Errorf("%w: RetryInterval must be > 0, got %v", types.ErrInvalidConfig, cfg.RetryInterval)
	}

	if cfg.MaxRetryInterval < cfg.RetryInterval {
		return fmt.Errorf(
			"%w: MaxRetryInterval (%v) must be >= RetryInterval (%v)",
			types.ErrInvalidConfig, cfg.MaxRetryInterval, cfg.RetryInterval,
		)
	}

	seenPeople := make(map[int]bool, len(cfg.Seed.People))
	for _, p := range cfg.Seed.People {
		if seenPeople[p.ID] {
			return fmt.Errorf("%w: duplicate seed person id %d", types.ErrInvalidConfig, p.ID)
		}
		seenPeople[p.ID] = true
	}

	seenTasks := make(map[int]bool, len(cfg.Seed.Tasks))
	for _, task := range cfg.Seed.Tasks {
		if seenTasks[task.ID] {
			return fmt.Errorf("%w: duplicate seed task id %d", types.ErrInvalidConfig, task.ID)
		}
		seenTasks[task.ID] = true
	}

	return nil
}

// Weekday returns the parsed rotation weekday.
//
// Call Validate first; Weekday falls back to Saturday when RotationDay does
// not parse.
func (cfg *Config) Weekday() time.Weekday {
	day, err := ParseWeekday(cfg.RotationDay)
	if err != nil {
		return time.Saturday
	}

	return day
}

// ParseWeekday parses an English weekday name (case-insensitive).
//
// Parameters:
//   - name: Weekday name, e.g. "saturday" or "Saturday"
//
// Returns:
//   - time.Weekday: Parsed weekday
//   - error: Parse error for unrecognized names
func ParseWeekday(name string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	case "tuesday":
		return time.Tuesday, nil
	case "wednesday":
		return time.Wednesday, nil
	case "thursday":
		return time.Thursday, nil
	case "friday":
		return time.Friday, nil
	case "saturday":
		return time.Saturday, nil
	default:
		return time.Sunday, fmt.Errorf("unrecognized weekday %q", name)
	}
}

// LoadConfig reads a Config from a YAML file.
//
// The file is unmarshalled over DefaultConfig, so absent fields keep their
// defaults (including boolean fields like rotateOncePerDay).
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - Config: Loaded configuration
//   - error: Read, parse, or validation error
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Returns:
//   - Config: Configuration with fast timings for tests
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.CheckInterval = 10 * time.Millisecond
	cfg.RetryInterval = 5 * time.Millisecond
	cfg.MaxRetryInterval = 50 * time.Millisecond
	cfg.ShutdownTimeout = time.Second
	cfg.HTTP.EnableMetrics = false

	return cfg
}
