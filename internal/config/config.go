package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config 进程级配置，启动时解析一次，显式传入各构造函数
type Config struct {
	ServerPort string
	MySQLDSN   string

	TokenSecret   string
	TokenTTLHours int

	// Redis 为空时关闭点赞缓存
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Kafka 为空时关闭事件上报
	KafkaBrokers string
	KafkaTopic   string

	// SMTP Host 为空时关闭欢迎邮件
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	UploadDir string
	BaseURL   string
}

func Load() *Config {
	// .env 不存在时忽略，直接读环境变量
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/board?charset=utf8mb4&parseTime=True"),

		// 默认密钥仅用于本地开发，线上必须覆盖
		TokenSecret:   getEnv("TOKEN_SECRET", "mysecretkey123456789"),
		TokenTTLHours: getEnvInt("TOKEN_TTL_HOURS", 168),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "board-events"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnvInt("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", "EchoBoard <no-reply@example.com>"),

		UploadDir: getEnv("UPLOAD_DIR", "uploads"),
		BaseURL:   getEnv("BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
