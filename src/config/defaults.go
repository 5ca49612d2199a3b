package config

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Agent: AgentConfig{
			Name:        "review-bot",
			Version:     "1.0.0",
			Description: "Static code-quality review agent",
		},
		Analysis: AnalysisConfig{
			ComplexityThreshold: 10,
		},
		Concurrency: ConcurrencyConfig{
			MaxParallelFiles: 4,
		},
		Exclusions: ExclusionsConfig{
			FilePatterns: []string{
				"*.md", "*.json", "*.yaml", "*.lock",
				"**/tests/**", "**/migrations/**", "**/node_modules/**",
			},
		},
		Output: OutputConfig{
			Formats:         []string{"markdown"},
			OutputDir:       "reports",
			IncludeMetrics:  true,
			IncludePatterns: false,
			HotspotsTopN:    10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
