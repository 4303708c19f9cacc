package configs

// Config holds all configuration for the application.
type Config struct {
	Server        ServerConfig      `mapstructure:"server" validate:"required"`
	Log           LogConfig         `mapstructure:"log" validate:"required"`
	Storage       StorageConfig     `mapstructure:"storage" validate:"required"`
	Aggregation   AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Reports       ReportsConfig     `mapstructure:"reports" validate:"required"`
	Retention     RetentionConfig   `mapstructure:"retention" validate:"required"`
	Thresholds    []ThresholdRule   `mapstructure:"thresholds" validate:"dive"`
	ErrorSeverity []SeverityRule    `mapstructure:"error_severity" validate:"dive"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int  `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int  `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int  `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int  `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int  `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	DebugErrors       bool `mapstructure:"debug_errors"`                                  // expose error causes in 500 bodies
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// StorageConfig holds document store configuration.
type StorageConfig struct {
	Path     string `mapstructure:"path" validate:"required_unless=InMemory true"`
	InMemory bool   `mapstructure:"in_memory"`
}

// AggregationConfig holds the scheduled aggregation cadences. The window
// aggregated by each run equals the run interval, so consecutive runs cover
// adjacent half-open intervals.
type AggregationConfig struct {
	MetricIntervalMinutes int `mapstructure:"metric_interval_minutes" validate:"required,min=1,max=60"`
	EventIntervalMinutes  int `mapstructure:"event_interval_minutes" validate:"required,min=1,max=60"`
}

// ReportsConfig holds report generation configuration.
type ReportsConfig struct {
	DegradationThresholdPct float64 `mapstructure:"degradation_threshold_pct" validate:"required,gt=0"`
	DailyHour               int     `mapstructure:"daily_hour" validate:"min=0,max=23"`
	Timezone                string  `mapstructure:"timezone" validate:"required"`
	TopSlowest              int     `mapstructure:"top_slowest" validate:"required,min=1"`
}

// RetentionConfig holds per-collection retention windows in days.
// A value of 0 disables sweeping for that collection.
type RetentionConfig struct {
	RawMetricDays      int `mapstructure:"raw_metric_days" validate:"min=0"`
	RawEventDays       int `mapstructure:"raw_event_days" validate:"min=0"`
	SessionDays        int `mapstructure:"session_days" validate:"min=0"`
	BusinessMetricDays int `mapstructure:"business_metric_days" validate:"min=0"`
	ErrorReportDays    int `mapstructure:"error_report_days" validate:"min=0"`
	RollupDays         int `mapstructure:"rollup_days" validate:"min=0"`
	ReportDays         int `mapstructure:"report_days" validate:"min=0"`
	SweepLimit         int `mapstructure:"sweep_limit" validate:"required,min=1,max=500"`
}

// ThresholdRule maps a metric-name pattern to a breach threshold.
// Patterns are matched by substring containment in table order.
type ThresholdRule struct {
	Pattern     string  `mapstructure:"pattern" validate:"required"`
	ThresholdMs float64 `mapstructure:"threshold_ms" validate:"required,gt=0"`
}

// SeverityRule assigns a severity to error messages containing any keyword.
type SeverityRule struct {
	Severity string   `mapstructure:"severity" validate:"required,oneof=critical high medium low"`
	Keywords []string `mapstructure:"keywords" validate:"required,min=1"`
}
