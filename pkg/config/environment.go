package config

const (
	// EnvModcreatorDebug enables debug output on stderr.
	EnvModcreatorDebug = "MODCREATOR_DEBUG"
	// EnvModcreatorQuiet suppresses the informational summary on success.
	EnvModcreatorQuiet = "MODCREATOR_QUIET"
	// EnvModcreatorJson switches stdout to machine-readable output.
	EnvModcreatorJson = "MODCREATOR_JSON"
	// EnvModcreatorTraceFile names a file that spans are written to.
	EnvModcreatorTraceFile = "MODCREATOR_TRACE_FILE"
	// EnvModcreatorTraceHttpEnable sends spans to an OTLP HTTP collector.
	// The collector endpoint is configured with the usual OTEL_EXPORTER_OTLP_* variables.
	EnvModcreatorTraceHttpEnable = "MODCREATOR_TRACE_HTTP_ENABLE"
	// EnvModcreatorTraceHttpInsecure disables TLS for the OTLP HTTP collector.
	EnvModcreatorTraceHttpInsecure = "MODCREATOR_TRACE_HTTP_INSECURE"
	// EnvModcreatorTraceHttpEndpoint overrides the host and port of the OTLP HTTP collector.
	EnvModcreatorTraceHttpEndpoint = "MODCREATOR_TRACE_HTTP_ENDPOINT"
)

var envKeys = []string{
	EnvModcreatorDebug,
	EnvModcreatorQuiet,
	EnvModcreatorJson,
	EnvModcreatorTraceFile,
	EnvModcreatorTraceHttpEnable,
	EnvModcreatorTraceHttpInsecure,
	EnvModcreatorTraceHttpEndpoint,
}
