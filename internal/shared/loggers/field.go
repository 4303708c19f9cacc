package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"
	FieldJob         = "job"
	FieldCollection  = "collection"
	FieldMetricName  = "metric_name"
	FieldFingerprint = "fingerprint"
	FieldWindow      = "window"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
)
