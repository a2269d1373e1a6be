package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	Bot       Bot
	Assistant Assistant
	OpenAI    OpenAI
	Ollama    Ollama
	Postgres  Postgres
}

func (conf Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("bot",
			slog.String("token", "<hidden>")),
		slog.Group("assistant",
			slog.String("provider", conf.Assistant.Provider),
			slog.String("model", conf.Assistant.Model),
		),
		slog.Group("openai",
			slog.String("api_key", "<hidden>"),
			slog.String("base_url", conf.OpenAI.BaseURL),
		),
		slog.Group("ollama",
			slog.String("host", conf.Ollama.Host)),
		slog.Group("postgres",
			slog.String("user", conf.Postgres.User),
			slog.String("password", "<hidden>"),
			slog.String("host", conf.Postgres.Host),
			slog.String("db", conf.Postgres.DB),
		),
	)
}

type Bot struct {
	Token string `env:"BOT_TOKEN" env-required:"true"`
}

type Assistant struct {
	Provider string `env:"ASSISTANT_PROVIDER" env-default:"openai"`
	Model    string `env:"MODEL_NAME" env-default:"gpt-4o-mini"`
}

type OpenAI struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL"`
}

type Ollama struct {
	Host string `env:"OLLAMA_HOST" env-default:"localhost:11434"`
}

type Postgres struct {
	User     string `env:"POSTGRES_USER" env-default:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	Host     string `env:"POSTGRES_HOST" env-default:"postgres:5432"`
	DB       string `env:"POSTGRES_DB" env-default:"chefbot"`
}

func (pg Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", pg.User, pg.Password, pg.Host, pg.DB)
}

// Read loads an optional .env file and then resolves the configuration from
// the process environment. Variables already set in the environment win over
// .env values.
func Read() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var conf Config
	err := cleanenv.ReadEnv(&conf)
	if err != nil {
		return Config{}, err
	}

	if conf.Assistant.Provider != ProviderOpenAI && conf.Assistant.Provider != ProviderOllama {
		return Config{}, fmt.Errorf("unknown assistant provider %q", conf.Assistant.Provider)
	}

	return conf, nil
}
