package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
	ModeDebug       = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// TraceIDField is the structured field carrying the per-message trace id.
	TraceIDField = "trace_id"
)
