package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type AppConfig struct {
	Server    ServerConfig
	Graphite  GraphiteConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Scheduler SchedulerConfig
}

type ServerConfig struct {
	Port     string `envconfig:"SERVER_PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE" default:"./log/status-service.log"`
}

type GraphiteConfig struct {
	URL            string        `envconfig:"GRAPHITE_URL"`
	ProxyURL       string        `envconfig:"GRAPHITE_PROXY_URL"`
	From           string        `envconfig:"GRAPHITE_FROM" default:"-90d"`
	Until          string        `envconfig:"GRAPHITE_UNTIL" default:"-30d"`
	MaxRetries     int           `envconfig:"GRAPHITE_MAX_RETRIES" default:"3"`
	InitialBackoff time.Duration `envconfig:"GRAPHITE_INITIAL_BACKOFF" default:"500ms"`
	RequestTimeout time.Duration `envconfig:"GRAPHITE_REQUEST_TIMEOUT" default:"5s"`
}

// RedisConfig with an empty Host disables the verdict cache.
type RedisConfig struct {
	Host     string        `envconfig:"REDIS_HOST"`
	Port     int           `envconfig:"REDIS_PORT" default:"6379"`
	CacheTTL time.Duration `envconfig:"VERDICT_CACHE_TTL" default:"1m"`
}

// KafkaConfig with no Brokers disables verdict publishing.
type KafkaConfig struct {
	Brokers      []string `envconfig:"KAFKA_BROKERS"`
	VerdictTopic string   `envconfig:"KAFKA_VERDICT_TOPIC" default:"status-verdicts"`
}

type SchedulerConfig struct {
	Cron       string        `envconfig:"SCHEDULER_CRON" default:"*/5 * * * *"`
	Targets    []string      `envconfig:"SCHEDULER_TARGETS"`
	RunTimeout time.Duration `envconfig:"SCHEDULER_RUN_TIMEOUT" default:"1m"`
}

func LoadConfig(path string) (AppConfig, error) {
	_ = godotenv.Load(path)

	var cfg AppConfig
	err := envconfig.Process("", &cfg)
	return cfg, err
}
