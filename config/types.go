package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Generate GenerateConfig `mapstructure:"generate"`
	Batch    BatchConfig    `mapstructure:"batch"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// APIConfig holds api-ninjas connection details
type APIConfig struct {
	URL       string        `mapstructure:"url"`
	Key       string        `mapstructure:"key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

// GenerateConfig holds defaults for the generate command
type GenerateConfig struct {
	Paragraphs int    `mapstructure:"paragraphs"`
	Filter     string `mapstructure:"filter"`
	Copy       bool   `mapstructure:"copy"`
}

// BatchConfig holds defaults for the batch command
type BatchConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
