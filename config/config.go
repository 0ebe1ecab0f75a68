package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Queue     QueueConfig
	Providers ProvidersConfig
	Policy    PolicyConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// DSN 時區固定 UTC，與帳本時間一致
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s timezone=UTC",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	PoolSize int
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// StorageConfig 帳本 (tickets / cooldown / subscription) 使用的 KV driver: memory, redis, postgres
type StorageConfig struct {
	Driver string
}

// QueueConfig 非同步生圖任務的 queue driver: memory, redis
type QueueConfig struct {
	Driver     string
	BufferSize int
	ConsumerID string
}

type ProvidersConfig struct {
	// AdProvider: mock, disabled
	AdProvider       string
	MockAdCompletion float64
	MockAdMinDelay   time.Duration
	MockAdMaxDelay   time.Duration

	// ImageProvider: mock, openai
	ImageProvider    string
	MockImageDelay   time.Duration
	OpenAIAPIKey     string
	OpenAIImageModel string
}

type PolicyConfig struct {
	// 生圖失敗時是否退還已消耗的票券
	RefundOnProviderFailure bool
}

type RateLimitConfig struct {
	GenerationsPerSecond float64
	GenerationBurst      int
}

var AppConfig *Config

func LoadConfig() *Config {
	AppConfig = &Config{
		Server:    GetServerConfig(),
		Database:  GetDatabaseConfig(),
		Redis:     GetRedisConfig(),
		Storage:   GetStorageConfig(),
		Queue:     GetQueueConfig(),
		Providers: GetProvidersConfig(),
		Policy:    GetPolicyConfig(),
		RateLimit: GetRateLimitConfig(),
	}

	return AppConfig
}

func LoadTestConfig() *Config {
	testConfig := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5433", // 測試 DB 用 5433 port
		User:     "postgres",
		Password: "postgres",
		DBName:   "test_db",
		SSLMode:  "disable",
		MaxConns: 5,
		MinConns: 1,
	}

	testRedisConfig := RedisConfig{
		Host:     "localhost",
		Port:     "6380", // 測試 Redis 用 6380 port
		Password: "",
		DB:       1,
		PoolSize: 5,
	}

	return &Config{
		Server:   ServerConfig{Port: "8080", GinMode: "test"},
		Database: *testConfig,
		Redis:    testRedisConfig,
		Storage:  StorageConfig{Driver: "memory"},
		Queue:    QueueConfig{Driver: "memory", BufferSize: 16, ConsumerID: "test"},
		Providers: ProvidersConfig{
			AdProvider:       "mock",
			MockAdCompletion: 1,
			ImageProvider:    "mock",
		},
		Policy: PolicyConfig{RefundOnProviderFailure: false},
		RateLimit: RateLimitConfig{
			GenerationsPerSecond: 100,
			GenerationBurst:      100,
		},
	}
}

func GetServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func GetDatabaseConfig() DatabaseConfig {
	maxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		panic(err)
	}
	minConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "5"), 10, 32)
	if err != nil {
		panic(err)
	}

	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}
	poolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "20"))
	if err != nil {
		panic(err)
	}

	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
		PoolSize: poolSize,
	}
}

func GetStorageConfig() StorageConfig {
	return StorageConfig{
		Driver: getEnv("STORAGE_DRIVER", "redis"),
	}
}

func GetQueueConfig() QueueConfig {
	bufferSize, err := strconv.Atoi(getEnv("QUEUE_BUFFER_SIZE", "100"))
	if err != nil {
		panic(err)
	}

	return QueueConfig{
		Driver:     getEnv("QUEUE_DRIVER", "redis"),
		BufferSize: bufferSize,
		ConsumerID: getEnv("QUEUE_CONSUMER_ID", ""),
	}
}

func GetProvidersConfig() ProvidersConfig {
	completion, err := strconv.ParseFloat(getEnv("MOCK_AD_COMPLETION_RATE", "0.9"), 64)
	if err != nil {
		panic(err)
	}

	return ProvidersConfig{
		AdProvider:       getEnv("AD_PROVIDER", "mock"),
		MockAdCompletion: completion,
		MockAdMinDelay:   getDuration("MOCK_AD_MIN_DELAY", 5*time.Second),
		MockAdMaxDelay:   getDuration("MOCK_AD_MAX_DELAY", 30*time.Second),
		ImageProvider:    getEnv("IMAGE_PROVIDER", "mock"),
		MockImageDelay:   getDuration("MOCK_IMAGE_DELAY", 2*time.Second),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIImageModel: getEnv("OPENAI_IMAGE_MODEL", "dall-e-3"),
	}
}

func GetPolicyConfig() PolicyConfig {
	refund, err := strconv.ParseBool(getEnv("REFUND_ON_PROVIDER_FAILURE", "false"))
	if err != nil {
		panic(err)
	}

	return PolicyConfig{
		RefundOnProviderFailure: refund,
	}
}

func GetRateLimitConfig() RateLimitConfig {
	perSecond, err := strconv.ParseFloat(getEnv("GENERATION_RATE_PER_SECOND", "0.5"), 64)
	if err != nil {
		panic(err)
	}
	burst, err := strconv.Atoi(getEnv("GENERATION_RATE_BURST", "3"))
	if err != nil {
		panic(err)
	}

	return RateLimitConfig{
		GenerationsPerSecond: perSecond,
		GenerationBurst:      burst,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		panic(err)
	}
	return d
}
