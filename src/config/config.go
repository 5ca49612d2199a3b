package config

// Config is the root configuration structure
type Config struct {
	Agent       AgentConfig       `yaml:"agent"`
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Exclusions  ExclusionsConfig  `yaml:"exclusions"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// AgentConfig contains tool metadata
type AgentConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
}

// AnalysisConfig contains engine settings
type AnalysisConfig struct {
	// DefaultLanguage is used for files whose extension is not recognized.
	// Empty means unrecognized files are rejected.
	DefaultLanguage string `yaml:"default_language"`

	// ComplexityThreshold is the cyclomatic complexity above which a
	// synthetic maintainability issue is reported. Zero means the built-in
	// default.
	ComplexityThreshold int `yaml:"complexity_threshold"`
}

// ConcurrencyConfig contains concurrency settings
type ConcurrencyConfig struct {
	MaxParallelFiles int `yaml:"max_parallel_files"`
}

// ExclusionsConfig contains file exclusion patterns
type ExclusionsConfig struct {
	FilePatterns []string `yaml:"file_patterns"`
	Files        []string `yaml:"files"`
}

// OutputConfig contains report output settings
type OutputConfig struct {
	Formats         []string `yaml:"formats"`
	OutputDir       string   `yaml:"output_dir"`
	IncludeMetrics  bool     `yaml:"include_metrics"`
	IncludePatterns bool     `yaml:"include_patterns"`
	HotspotsTopN    int      `yaml:"hotspots_top_n"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
	File   string `yaml:"file"`
}
