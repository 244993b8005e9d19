package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	InputBucket string   `json:"input_bucket" yaml:"input_bucket" toml:"input_bucket"`
	InputPrefix string   `json:"input_prefix" yaml:"input_prefix" toml:"input_prefix"`
	Workers     int      `json:"workers" yaml:"workers" toml:"workers"`
	Countries   []string `json:"countries" yaml:"countries" toml:"countries"`
	ReportName  string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType  []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir         string   `json:"dir" yaml:"dir" toml:"dir"`
}
