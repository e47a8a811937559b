// internal/model/health.go
package model

// HealthStatus はコンポーネントの稼働状態
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDisabled  HealthStatus = "disabled" // フィーチャーフラグで無効化されている
)

// severity は全体ステータスを「最悪の状態」に集約するための順序。
// disabled は意図的な停止なので unhealthy より軽い扱いにする。
func (s HealthStatus) severity() int {
	switch s {
	case StatusHealthy:
		return 0
	case StatusDisabled:
		return 1
	case StatusDegraded:
		return 2
	case StatusUnhealthy:
		return 3
	}
	return 3
}

// Worse は2つのステータスのうち悪い方を返します
func (s HealthStatus) Worse(other HealthStatus) HealthStatus {
	if other.severity() > s.severity() {
		return other
	}
	return s
}

// ComponentHealth は個別コンポーネントの状態
type ComponentHealth struct {
	Name      string       `json:"name"`
	Status    HealthStatus `json:"status"`
	Message   string       `json:"message,omitempty"`
	LatencyMs int64        `json:"latency_ms,omitempty"`
}

// HealthResponse は GET /health のレスポンス。
// detailed=true のときのみ Components を含める。
type HealthResponse struct {
	Status     HealthStatus      `json:"status"`
	Components []ComponentHealth `json:"components,omitempty"`
}
