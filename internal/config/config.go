package config

import (
	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"medicard"`

	Server ServerConfig `envPrefix:"SERVER_"`
	DB     DBConfig     `envPrefix:"DB_"`
	Redis  RedisConfig  `envPrefix:"REDIS_"`
	Auth   AuthConfig   `envPrefix:"AUTH_"`
	Email  EmailConfig  `envPrefix:"EMAIL_"`
	Minio  MinioConfig  `envPrefix:"MINIO_"`
	Jaeger JaegerConfig `envPrefix:"JAEGER_"`
}

type ServerConfig struct {
	Mode   string `env:"MODE"   envDefault:"dev"`
	Scheme string `env:"SCHEME" envDefault:"http"`
	Domain string `env:"DOMAIN" envDefault:"localhost"`
	Port   int    `env:"PORT"   envDefault:"8080"`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DATABASE" envDefault:"medicard"`
}

type RedisConfig struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	Pass string `env:"PASS" envDefault:""`
}

type AuthConfig struct {
	AccessSecret  string `env:"ACCESS_SECRET,required"`
	RefreshSecret string `env:"REFRESH_SECRET,required"`
	Issuer        string `env:"ISSUER" envDefault:"medicard"`
}

type EmailConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Server  string `env:"SERVER"  envDefault:"smtp.gmail.com"`
	Port    int    `env:"PORT"    envDefault:"587"`
	User    string `env:"USER"    envDefault:""`
	Pass    string `env:"PASS"    envDefault:""`
	Admin   string `env:"ADMIN"   envDefault:""`
}

type MinioConfig struct {
	Endpoint  string `env:"ENDPOINT"   envDefault:"localhost:9000"`
	AccessKey string `env:"ACCESS_KEY" envDefault:""`
	SecretKey string `env:"SECRET_KEY" envDefault:""`
	Bucket    string `env:"BUCKET"     envDefault:"attachments"`
	UseSSL    bool   `env:"USE_SSL"    envDefault:"false"`
}

type JaegerConfig struct {
	Sampler  JaegerSamplerConfig  `envPrefix:"SAMPLER_"`
	Reporter JaegerReporterConfig `envPrefix:"REPORTER_"`
}

type JaegerSamplerConfig struct {
	Type  string `env:"TYPE"  envDefault:"const"`
	Param int    `env:"PARAM" envDefault:"1"`
}

type JaegerReporterConfig struct {
	LogSpans           bool   `env:"LOG_SPANS"  envDefault:"false"`
	LocalAgentHostPort string `env:"AGENT_HOST" envDefault:"localhost:6831"`
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Debug("No .env file found, relying on environment")
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		zap.L().Fatal("failed to parse config", zap.Error(err))
	}

	return conf
}
