package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/CutieCat6778/reservation-frontdesk/pkg/kafka"
	"github.com/CutieCat6778/reservation-frontdesk/pkg/logger"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"FRONTDESK_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"FRONTDESK_HTTP_PORT" default:"8081"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration
}

// Backend is the restaurant's GraphQL API, an external collaborator.
type Backend struct {
	URI     string        `envconfig:"BACKEND_GRAPHQL_URI" default:"http://localhost:8080/query"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"1m"`
}

// Frontend points at the guest-facing site; decline notices link back to it.
type Frontend struct {
	PublicURI string `envconfig:"FRONTEND_PUBLIC_URI" default:"http://localhost:3000"`
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Backend  Backend
	Frontend Frontend
	Kafka    kafka.Config
	Log      logger.Log `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
