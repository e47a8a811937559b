// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// FeaturesConfig は拡張経路のフィーチャーフラグ。それぞれ独立に切り替え可能。
type FeaturesConfig struct {
	UseVectorSearch   bool `mapstructure:"use_vector_search"`
	UseSemanticCache  bool `mapstructure:"use_semantic_cache"`
	UseGNNLearning    bool `mapstructure:"use_gnn_learning"`
	UseKnowledgeGraph bool `mapstructure:"use_knowledge_graph"`
}

type EmbeddingConfig struct {
	Endpoint   string        `mapstructure:"endpoint"`
	APIKey     string        `mapstructure:"api_key"`
	Model      string        `mapstructure:"model"`
	Dimensions int           `mapstructure:"dimensions"`
	Timeout    time.Duration `mapstructure:"timeout"`
	CacheTTL   time.Duration `mapstructure:"cache_ttl"`
	CacheSize  int           `mapstructure:"cache_size"`
}

type LearningConfig struct {
	RecentWindow         int           `mapstructure:"recent_window"`          // 予測に使う直近インタラクション数
	DecayFactor          float64       `mapstructure:"decay_factor"`           // 指数加重の減衰率 (0,1)
	MinConfidenceSamples int           `mapstructure:"min_confidence_samples"` // これ未満では confidence < 1.0 を保証
	ReadTimeout          time.Duration `mapstructure:"read_timeout"`           // グラフ・予測読み取りのタイムアウト
	TrainingInterval     time.Duration `mapstructure:"training_interval"`      // GNN再学習の間隔 (学習ジョブが参照する予約キー)
}

type ScheduleConfig struct {
	Limit              int     `mapstructure:"limit"`                // 1回のスケジュール取得の上限件数
	MaxShiftDays       int     `mapstructure:"max_shift_days"`       // ハイブリッドブレンドで前倒しできる最大日数
	MinAdaptConfidence float64 `mapstructure:"min_adapt_confidence"` // 難易度適応に必要な最小 confidence
	EaseStep           float64 `mapstructure:"ease_step"`            // 1回の適応で動かす easeFactor の上限
	RelatedLimit       int     `mapstructure:"related_limit"`        // 推奨関連語の最大件数
}

type SearchConfig struct {
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	DefaultLimit        int     `mapstructure:"default_limit"`
	CandidateLimit      int     `mapstructure:"candidate_limit"` // ベクトル比較対象の候補上限
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Log       LogConfig       `mapstructure:"log"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Features  FeaturesConfig  `mapstructure:"features"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Learning  LearningConfig  `mapstructure:"learning"`
	Schedule  ScheduleConfig  `mapstructure:"schedule"`
	Search    SearchConfig    `mapstructure:"search"`
}

// LoadConfig は config.yaml と環境変数 (APP_ 接頭辞) から設定を読み込みます。
// 読み込んだ Config は main で生成して各サービスに注入する。
func LoadConfig(path string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	// フィーチャーフラグは環境変数で個別に上書きできるようにする
	viper.BindEnv("features.use_vector_search", "APP_USE_VECTOR_SEARCH")
	viper.BindEnv("features.use_semantic_cache", "APP_USE_SEMANTIC_CACHE")
	viper.BindEnv("features.use_gnn_learning", "APP_USE_GNN_LEARNING")
	viper.BindEnv("features.use_knowledge_graph", "APP_USE_KNOWLEDGE_GRAPH")
	viper.BindEnv("embedding.api_key", "APP_EMBEDDING_API_KEY")
	viper.BindEnv("database.url", "APP_DATABASE_URL")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return nil, err
	}

	applyDefaults(&cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", cfg.Server.Port)
	log.Printf("Vector Search Enabled: %t", cfg.Features.UseVectorSearch)
	log.Printf("Semantic Cache Enabled: %t", cfg.Features.UseSemanticCache)
	log.Printf("GNN Learning Enabled: %t", cfg.Features.UseGNNLearning)
	log.Printf("Knowledge Graph Enabled: %t", cfg.Features.UseKnowledgeGraph)

	return &cfg, nil
}

// applyDefaults は未設定・不正な値に文書化されたデフォルトを適用します
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Embedding.Model == "" {
		cfg.Embedding.Model = DefaultEmbeddingModel
	}
	if cfg.Embedding.Dimensions <= 0 {
		cfg.Embedding.Dimensions = DefaultEmbeddingDimensions
	}
	if cfg.Embedding.Timeout <= 0 {
		cfg.Embedding.Timeout = DefaultEmbeddingTimeout
	}
	if cfg.Embedding.CacheTTL <= 0 {
		cfg.Embedding.CacheTTL = DefaultEmbeddingCacheTTL
	}
	if cfg.Embedding.CacheSize <= 0 {
		cfg.Embedding.CacheSize = DefaultEmbeddingCacheSize
	}
	if cfg.Learning.RecentWindow <= 0 {
		cfg.Learning.RecentWindow = DefaultRecentWindow
	}
	if cfg.Learning.DecayFactor <= 0 || cfg.Learning.DecayFactor >= 1 {
		cfg.Learning.DecayFactor = DefaultDecayFactor
	}
	if cfg.Learning.MinConfidenceSamples <= 0 {
		cfg.Learning.MinConfidenceSamples = DefaultMinConfidenceSamples
	}
	if cfg.Learning.ReadTimeout <= 0 {
		cfg.Learning.ReadTimeout = DefaultLearningReadTimeout
	}
	if cfg.Learning.TrainingInterval <= 0 {
		cfg.Learning.TrainingInterval = DefaultTrainingInterval
	}
	if cfg.Schedule.Limit <= 0 {
		cfg.Schedule.Limit = DefaultScheduleLimit
	}
	if cfg.Schedule.MaxShiftDays <= 0 {
		cfg.Schedule.MaxShiftDays = DefaultMaxShiftDays
	}
	if cfg.Schedule.MinAdaptConfidence <= 0 {
		cfg.Schedule.MinAdaptConfidence = DefaultMinAdaptConfidence
	}
	if cfg.Schedule.EaseStep <= 0 {
		cfg.Schedule.EaseStep = DefaultEaseStep
	}
	if cfg.Schedule.RelatedLimit <= 0 {
		cfg.Schedule.RelatedLimit = DefaultRelatedLimit
	}
	if cfg.Search.SimilarityThreshold <= 0 {
		cfg.Search.SimilarityThreshold = DefaultSimilarityThreshold
	}
	if cfg.Search.DefaultLimit <= 0 {
		cfg.Search.DefaultLimit = DefaultSearchLimit
	}
	if cfg.Search.CandidateLimit <= 0 {
		cfg.Search.CandidateLimit = DefaultCandidateLimit
	}
}
