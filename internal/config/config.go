package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/alexanderramin/beeline/internal/domain"
)

// GoalConfig holds the per-goal scheduling parameters the user maintains.
type GoalConfig struct {
	DisplayName  string  `json:"display_name"`
	HoursPerUnit float64 `json:"hours_per_unit"`
}

// Config is the persisted user configuration: Beeminder credentials,
// the LLM key, the target calendar and the set of scheduled goals.
type Config struct {
	Username         string                `json:"username"`
	AuthToken        string                `json:"auth_token"`
	LLMAPIKey        string                `json:"llm_api_key,omitempty"`
	GoogleCalendarID string                `json:"google_calendar_id,omitempty"`
	Goals            map[string]GoalConfig `json:"goals"`
}

// HasCredentials reports whether Beeminder credentials are set.
func (c *Config) HasCredentials() bool {
	return c.Username != "" && c.AuthToken != ""
}

// ScheduledGoals returns the configured goals as domain values, sorted
// by slug for stable output.
func (c *Config) ScheduledGoals() []domain.ScheduledGoal {
	goals := make([]domain.ScheduledGoal, 0, len(c.Goals))
	for slug, gc := range c.Goals {
		goals = append(goals, domain.ScheduledGoal{
			Slug:         slug,
			DisplayName:  gc.DisplayName,
			HoursPerUnit: gc.HoursPerUnit,
		})
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].Slug < goals[j].Slug })
	return goals
}

// DefaultPath returns the config file path: BEELINE_CONFIG if set,
// otherwise ~/.beeline/config.json.
func DefaultPath() (string, error) {
	if path := os.Getenv("BEELINE_CONFIG"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".beeline", "config.json"), nil
}

// Store loads and saves the configuration file.
type Store struct {
	path string
}

// NewStore creates a Store for the given config file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the config file. A missing file yields an empty config
// rather than an error so first-run setup can proceed.
func (s *Store) Load() (*Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Goals: map[string]GoalConfig{}}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", s.path, err)
	}
	if cfg.Goals == nil {
		cfg.Goals = map[string]GoalConfig{}
	}
	return &cfg, nil
}

// Save writes the config atomically via a temp file rename. The file
// holds credentials so it is created user-readable only.
func (s *Store) Save(cfg *Config) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, "config-*.json")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("restricting config permissions: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing config: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}
