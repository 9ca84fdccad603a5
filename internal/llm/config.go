package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskCoach         TaskType = "coach"
	TaskAdvisor       TaskType = "advisor"
	TaskCallReview    TaskType = "call_review"
	TaskWeeklySummary TaskType = "weekly_summary"
	TaskRoleplay      TaskType = "roleplay"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the LLM subsystem.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	APIKey     string
	Model      string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults.
// The LLM is disabled by default; coaching commands fall back to
// deterministic output.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://api.openai.com/v1",
		Model:      "gpt-4o-mini",
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskCoach:         {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 15000},
			TaskAdvisor:       {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 15000},
			TaskCallReview:    {Temperature: 0.3, MaxTokens: 2048, TimeoutMs: 30000},
			TaskWeeklySummary: {Temperature: 0.5, MaxTokens: 1024, TimeoutMs: 15000},
			TaskRoleplay:      {Temperature: 0.9, MaxTokens: 512, TimeoutMs: 15000},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RAMPUP_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RAMPUP_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("RAMPUP_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("RAMPUP_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("RAMPUP_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("RAMPUP_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RAMPUP_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
