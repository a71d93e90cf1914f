package logging

// StderrMode decides whether log lines are also written to stderr.
type StderrMode string

const (
	// StderrAuto writes to stderr when debugging or when stderr is not a
	// terminal. A running TUI owns the terminal otherwise.
	StderrAuto   StderrMode = "auto"
	StderrAlways StderrMode = "always"
	StderrNever  StderrMode = "never"
)

const (
	PresetDefault = "default"
	PresetSimple  = "simple"
	PresetJSON    = "json"
)

// Config is the `logging` section of navcoord.yml. NAVCOORD_LOG_LEVEL and
// NAVCOORD_LOG_CALLER=true take precedence over Level and ReportCaller.
type Config struct {
	Level        string         `yaml:"level"`
	ReportCaller bool           `yaml:"report_caller"`
	File         FileSinkConfig `yaml:"file"`
	Format       FormatConfig   `yaml:"format"`
}

// FileSinkConfig enables the log file. An empty Path means
// .navcoord/logs/<component>-<date>.log under the working directory.
type FileSinkConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// FormatConfig controls how lines are rendered and where they go.
type FormatConfig struct {
	// Preset is PresetDefault, PresetSimple or PresetJSON.
	Preset           string     `yaml:"preset"`
	DisableTimestamp bool       `yaml:"disable_timestamp"`
	DisableComponent bool       `yaml:"disable_component"`
	Stderr           StderrMode `yaml:"stderr"`
}
