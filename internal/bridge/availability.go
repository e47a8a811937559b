// internal/bridge/availability.go
package bridge

import (
	"sync"
	"time"
)

const (
	// 連続失敗がこの回数に達したら拡張経路を一時的に利用不可とみなす
	maxConsecutiveFailures = 3
	// 停止後、試行呼び出しを再び許可するまでの待ち時間
	suspensionCooldown = 30 * time.Second
)

// availabilityTracker は LearningService への直近の呼び出し結果を追跡します。
// リクエストをまたぐ永続状態はこれだけで、モード判定は呼び出しごとに行う。
// 停止は恒久ではない: クールダウン経過後は試行を1回許可し、成功すれば
// カウンタがリセットされて拡張経路が復帰する。
type availabilityTracker struct {
	mu                  sync.Mutex
	consecutiveFailures int
	suspendedUntil      time.Time
	now                 func() time.Time
}

func newAvailabilityTracker() *availabilityTracker {
	return &availabilityTracker{now: time.Now}
}

func (t *availabilityTracker) ReportSuccess() {
	t.mu.Lock()
	t.consecutiveFailures = 0
	t.mu.Unlock()
}

func (t *availabilityTracker) ReportFailure() {
	t.mu.Lock()
	t.consecutiveFailures++
	if t.consecutiveFailures >= maxConsecutiveFailures {
		t.suspendedUntil = t.now().Add(suspensionCooldown)
	}
	t.mu.Unlock()
}

func (t *availabilityTracker) Available() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.consecutiveFailures < maxConsecutiveFailures {
		return true
	}
	if t.now().Before(t.suspendedUntil) {
		return false
	}
	// クールダウン経過後の試行許可。窓を先へ延長しておき、
	// 試行が失敗し続ける間は次の窓まで他の呼び出しを通さない。
	t.suspendedUntil = t.now().Add(suspensionCooldown)
	return true
}
