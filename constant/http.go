package constant

// HeaderConstants defines header names used by the provisioning surface
const (
	// AccessKeyHeader carries the provisioning access key on HTTP requests
	AccessKeyHeader = "X-Provision-Key"
	// AccessKeyMetadata carries the provisioning access key in gRPC metadata
	AccessKeyMetadata = "x-provision-key"
	// RequestIDHeader is set on every provisioning response
	RequestIDHeader = "X-Request-Id"
)

// TimeConstants defines timeout and interval values
const (
	// DefaultReloadIntervalSeconds is the default secrets reload interval
	DefaultReloadIntervalSeconds = 300
)

// Provisioning routes
const (
	ReportPath = "/v1/secrets/report"
	HeaderPath = "/v1/secrets/header"
	HealthPath = "/health"
	// HealthServicePrefix matches gRPC health checks, which need no access key
	HealthServicePrefix = "/grpc.health.v1.Health/"
)
