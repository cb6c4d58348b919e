package httpserver

// Health status constants - single source of truth for all health endpoints.
const (
	// StatusHealthy indicates the service is fully operational.
	StatusHealthy = "healthy"

	// StatusReady indicates the service is ready to accept traffic.
	StatusReady = "ready"

	// StatusNotReady indicates the service is not ready to accept traffic.
	StatusNotReady = "not_ready"
)

// HealthResponse represents the response for health endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}
