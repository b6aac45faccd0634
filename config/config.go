package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig     `envconfig:"HTTP_SERVER"`
	Database       DatabaseConfig       `envconfig:"DB"`
	Redis          RedisConfig          `envconfig:"REDIS"`
	MessageStream  MessageStreamConfig  `envconfig:"MESSAGE_STREAM"`
	PaymentService PaymentServiceConfig `envconfig:"PAYMENT_SERVICE"`
	HttpClient     HttpClientConfig     `envconfig:"HTTP_CLIENT"`
	Auth           AuthConfig           `envconfig:"AUTH"`
	Scheduler      SchedulerConfig      `envconfig:"SCHEDULER"`
	Logger         LoggerConfig         `envconfig:"LOGGER"`
}

type HttpServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"postgres"`
	Name            string        `envconfig:"NAME" default:"hotel"`
	SSLMode         string        `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

type RedisConfig struct {
	Host     string `envconfig:"HOST" default:"localhost"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD" default:""`
	DB       int    `envconfig:"DB" default:"0"`
}

type MessageStreamConfig struct {
	// Driver is either "amqp" or "gochannel".
	Driver            string        `envconfig:"DRIVER" default:"amqp"`
	Host              string        `envconfig:"HOST" default:"localhost"`
	Port              string        `envconfig:"PORT" default:"5672"`
	Username          string        `envconfig:"USERNAME" default:"guest"`
	Password          string        `envconfig:"PASSWORD" default:"guest"`
	ExchangeName      string        `envconfig:"EXCHANGE_NAME" default:"hotel"`
	SslEnable         bool          `envconfig:"SSL_ENABLE" default:"false"`
	MaxRetries        int           `envconfig:"MAX_RETRIES" default:"3"`
	RetryInitialDelay time.Duration `envconfig:"RETRY_INITIAL_DELAY" default:"500ms"`
}

type PaymentServiceConfig struct {
	Host string `envconfig:"HOST" default:"localhost"`
	Port string `envconfig:"PORT" default:"8081"`
}

type HttpClientConfig struct {
	// Type selects the breaker: "consecutive", "threshold" or "rate".
	Type             string        `envconfig:"TYPE" default:"consecutive"`
	Timeout          time.Duration `envconfig:"TIMEOUT" default:"5s"`
	ConsecutiveTrips int64         `envconfig:"CONSECUTIVE_TRIPS" default:"5"`
	Threshold        int64         `envconfig:"THRESHOLD" default:"10"`
	Rate             float64       `envconfig:"RATE" default:"0.5"`
	RateMinSamples   int64         `envconfig:"RATE_MIN_SAMPLES" default:"20"`
}

type AuthConfig struct {
	JwtSecret string `envconfig:"JWT_SECRET" default:""`
}

type SchedulerConfig struct {
	Concurrency      int           `envconfig:"CONCURRENCY" default:"10"`
	CheckoutRetryIn  time.Duration `envconfig:"CHECKOUT_RETRY_IN" default:"1m"`
	MonitoringPort   string        `envconfig:"MONITORING_PORT" default:"8090"`
	EnableMonitoring bool          `envconfig:"ENABLE_MONITORING" default:"false"`
}

type LoggerConfig struct {
	Level string `envconfig:"LEVEL" default:"info"`
}

func InitConfig() *Config {
	// .env is optional, real deployments inject the environment directly
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return &cfg
}
