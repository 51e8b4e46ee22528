package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/seedforge/seedforge/pkg/model"
)

type Config struct {
	Database     DatabaseConfig   `mapstructure:"database"`
	Logging      LoggingConfig    `mapstructure:"logging"`
	Generation   GenerationConfig `mapstructure:"generation"`
	Dates        DateConfig       `mapstructure:"dates"`
	LLM          LLMConfig        `mapstructure:"llm"`
	Organization OrgConfig        `mapstructure:"organization"`
	Teams        []TeamConfig     `mapstructure:"teams"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"` // sqlite or postgres
	Path     string `mapstructure:"path"`   // sqlite file path
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

type GenerationConfig struct {
	Seed               int64   `mapstructure:"seed"`
	NumUsers           int     `mapstructure:"num_users"`
	NumProjects        int     `mapstructure:"num_projects"`
	MinTasksPerProject int     `mapstructure:"min_tasks_per_project"`
	MaxTasksPerProject int     `mapstructure:"max_tasks_per_project"`
	SubtaskProbability float64 `mapstructure:"subtask_probability"`
	MaxSubtasksPerTask int     `mapstructure:"max_subtasks_per_task"`
	CommentProbability float64 `mapstructure:"comment_probability"`
	MaxTagsPerTask     int     `mapstructure:"max_tags_per_task"`

	// Completion-rate ranges keyed by project workload type. Task
	// generation samples a per-project rate inside the matching range.
	CompletionRates map[string]CompletionRange `mapstructure:"completion_rates"`
}

type CompletionRange struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

type DateConfig struct {
	HistoryMonths int `mapstructure:"history_months"` // window behind now for created/join dates
	FutureMonths  int `mapstructure:"future_months"`  // due-date horizon ahead of now
}

type LLMConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	MaxRetries int           `mapstructure:"max_retries"`
	CallDelay  time.Duration `mapstructure:"call_delay"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type OrgConfig struct {
	ID     string `mapstructure:"id"`
	Name   string `mapstructure:"name"`
	Domain string `mapstructure:"domain"`
}

type TeamConfig struct {
	ID            string  `mapstructure:"id"`
	Name          string  `mapstructure:"name"`
	Type          string  `mapstructure:"type"`
	EmployeeCount int     `mapstructure:"employee_count"`
	UserShare     float64 `mapstructure:"user_share"`
}

func Load() (*Config, error) {
	// Optional .env for local runs; absence is not an error.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/seedforge/")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("SEEDFORGE")
	viper.AutomaticEnv()

	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.path", "output/seedforge.sqlite")
	viper.SetDefault("database.ssl_mode", "disable")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
	viper.SetDefault("generation.seed", 42)
	viper.SetDefault("generation.num_users", 100)
	viper.SetDefault("generation.num_projects", 175)
	viper.SetDefault("generation.min_tasks_per_project", 15)
	viper.SetDefault("generation.max_tasks_per_project", 30)
	viper.SetDefault("generation.subtask_probability", 0.4)
	viper.SetDefault("generation.max_subtasks_per_task", 5)
	viper.SetDefault("generation.comment_probability", 0.3)
	viper.SetDefault("generation.max_tags_per_task", 3)
	viper.SetDefault("dates.history_months", 6)
	viper.SetDefault("dates.future_months", 3)
	viper.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("llm.model", "llama-3.1-70b-versatile")
	viper.SetDefault("llm.max_retries", 3)
	viper.SetDefault("llm.call_delay", "500ms")
	viper.SetDefault("llm.timeout", "30s")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.BindEnv("llm.api_key", "GROQ_API_KEY")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults fills the structured sections viper defaults cannot express.
func (c *Config) ApplyDefaults() {
	if c.Organization.ID == "" {
		c.Organization = OrgConfig{
			ID:     "org_1",
			Name:   "Aasna Technologies",
			Domain: "aasna.io",
		}
	}
	if len(c.Teams) == 0 {
		c.Teams = []TeamConfig{
			{ID: "team_pd", Name: "Product Development Team", Type: string(model.TeamProduct), EmployeeCount: 3500, UserShare: 0.50},
			{ID: "team_mkt", Name: "Marketing Team", Type: string(model.TeamMarketing), EmployeeCount: 1500, UserShare: 0.25},
			{ID: "team_ops", Name: "Operations Team", Type: string(model.TeamOperations), EmployeeCount: 3000, UserShare: 0.25},
		}
	}
	if len(c.Generation.CompletionRates) == 0 {
		c.Generation.CompletionRates = map[string]CompletionRange{
			"sprint":       {Min: 0.70, Max: 0.85},
			"bug_tracking": {Min: 0.60, Max: 0.70},
			"ongoing":      {Min: 0.40, Max: 0.50},
			"default":      {Min: 0.50, Max: 0.65},
		}
	}
}

func (c *Config) Validate() error {
	if c.Generation.NumUsers <= 0 {
		return fmt.Errorf("generation.num_users must be positive, got %d", c.Generation.NumUsers)
	}
	if c.Generation.NumProjects <= 0 {
		return fmt.Errorf("generation.num_projects must be positive, got %d", c.Generation.NumProjects)
	}
	if c.Generation.MinTasksPerProject > c.Generation.MaxTasksPerProject {
		return fmt.Errorf("generation.min_tasks_per_project %d exceeds max %d",
			c.Generation.MinTasksPerProject, c.Generation.MaxTasksPerProject)
	}
	for _, team := range c.Teams {
		if team.UserShare <= 0 {
			return fmt.Errorf("team %s: user_share must be positive, got %f", team.ID, team.UserShare)
		}
	}
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}
