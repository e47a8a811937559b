// internal/health/aggregator.go
package health

import (
	"context"
	"time"

	"go_5_vocab_srs/internal/model"

	"gorm.io/gorm"
)

// Checker は個別コンポーネントの状態を報告します。
// 各サービスは自身の Health メソッドでこれを実装する。
type Checker interface {
	Health(ctx context.Context) model.ComponentHealth
}

// CheckerFunc は関数を Checker として使うためのアダプタ
type CheckerFunc func(ctx context.Context) model.ComponentHealth

func (f CheckerFunc) Health(ctx context.Context) model.ComponentHealth {
	return f(ctx)
}

// Aggregator は各コンポーネントをポーリングし、複合ステータスを返します。
// 全体ステータスは構成コンポーネントの「最悪の状態」。
type Aggregator struct {
	checkers []Checker
}

func NewAggregator(checkers ...Checker) *Aggregator {
	return &Aggregator{checkers: checkers}
}

// Check は全コンポーネントの状態を集約します
func (a *Aggregator) Check(ctx context.Context) model.HealthResponse {
	overall := model.StatusHealthy
	components := make([]model.ComponentHealth, 0, len(a.checkers))

	for _, checker := range a.checkers {
		started := time.Now()
		component := checker.Health(ctx)
		if component.LatencyMs == 0 {
			component.LatencyMs = time.Since(started).Milliseconds()
		}
		components = append(components, component)
		overall = overall.Worse(component.Status)
	}

	return model.HealthResponse{Status: overall, Components: components}
}

// DatabaseChecker はDB接続の疎通を確認する Checker を返します
func DatabaseChecker(db *gorm.DB) Checker {
	return CheckerFunc(func(ctx context.Context) model.ComponentHealth {
		component := model.ComponentHealth{Name: "database", Status: model.StatusHealthy}

		sqlDB, err := db.DB()
		if err != nil {
			component.Status = model.StatusUnhealthy
			component.Message = "could not get underlying sql.DB"
			return component
		}

		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			component.Status = model.StatusUnhealthy
			component.Message = "ping failed"
		}
		return component
	})
}
