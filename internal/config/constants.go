// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab-srs-engine"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"

	DefaultEmbeddingModel      = "text-embedding-3-small"
	DefaultEmbeddingDimensions = 256
	DefaultEmbeddingTimeout    = 2 * time.Second
	DefaultEmbeddingCacheTTL   = 1 * time.Hour
	DefaultEmbeddingCacheSize  = 4096

	DefaultRecentWindow         = 20
	DefaultDecayFactor          = 0.8
	DefaultMinConfidenceSamples = 5
	DefaultLearningReadTimeout  = 500 * time.Millisecond
	DefaultTrainingInterval     = 24 * time.Hour

	DefaultScheduleLimit      = 20
	DefaultMaxShiftDays       = 3
	DefaultMinAdaptConfidence = 0.5
	DefaultEaseStep           = 0.1
	DefaultRelatedLimit       = 5

	DefaultSimilarityThreshold = 0.7
	DefaultSearchLimit         = 10
	DefaultCandidateLimit      = 500
)
