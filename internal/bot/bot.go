package bot

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"golang.org/x/time/rate"
	"gopkg.in/telebot.v4"
	"gopkg.in/telebot.v4/middleware"

	"chefbot/internal/assistant"
	"chefbot/internal/config"
	"chefbot/internal/history"
	assistantpkg "chefbot/pkg/assistant"
)

// One outbound completion per second across all chats.
var limiter = rate.NewLimiter(rate.Every(1*time.Second), 1)

type Bot struct {
	API              *telebot.Bot
	AssistantService assistantpkg.Service
	HistoryStore     history.Store
	RiverClient      *river.Client[pgx.Tx]
	ollama           *assistant.OllamaProvider
	conf             config.Config
}

func NewBot(ctx context.Context, conf config.Config) (*Bot, error) {
	api, err := telebot.NewBot(telebot.Settings{
		Token:  conf.Bot.Token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	var provider assistantpkg.CompletionProvider
	var ollama *assistant.OllamaProvider
	switch conf.Assistant.Provider {
	case config.ProviderOllama:
		ollama = assistant.NewOllamaProvider(conf.Ollama.Host)
		provider = ollama
	default:
		provider = assistant.NewOpenAIProvider(
			assistant.WithAPIKey(conf.OpenAI.APIKey),
			assistant.WithBaseURL(conf.OpenAI.BaseURL),
		)
	}

	assistantService := assistant.NewService(provider, conf.Assistant.Model, assistant.DefaultSystemPrompt)

	db, err := pgxpool.New(ctx, conf.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	historyStore, err := history.NewPostgresStore(ctx, db)
	if err != nil {
		return nil, err
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, &ChatWorker{
		BotAPI:           api,
		AssistantService: assistantService,
		HistoryStore:     historyStore,
		Limiter:          limiter,
	})

	riverClient, err := river.NewClient(riverpgxv5.New(db), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: 3},
		},
		Workers: workers,
	})
	if err != nil {
		return nil, fmt.Errorf("creating river client: %w", err)
	}

	return &Bot{
		API:              api,
		AssistantService: assistantService,
		HistoryStore:     historyStore,
		RiverClient:      riverClient,
		ollama:           ollama,
		conf:             conf,
	}, nil
}

func (bot *Bot) Start(ctx context.Context) error {
	if bot.ollama != nil {
		if err := bot.ollama.Pull(ctx, bot.conf.Assistant.Model); err != nil {
			return err
		}
	}

	go func() {
		slog.Info("River client successfully started")
		err := bot.RiverClient.Start(ctx)
		if err != nil {
			slog.Error("River client stopped", slog.Any("error", err))
		}
	}()

	bot.API.Use(
		middleware.AutoRespond(),
	)

	bot.API.Handle("/clear", func(c telebot.Context) error {
		if err := bot.HistoryStore.Clear(ctx, c.Chat().ID); err != nil {
			return err
		}
		return c.Reply("Conversation cleared, let's start fresh.")
	})

	bot.API.Handle(telebot.OnText, func(c telebot.Context) error {
		job, err := bot.RiverClient.Insert(ctx, ChatArgs{
			ChatID:  c.Chat().ID,
			Content: c.Text(),
		}, &river.InsertOpts{MaxAttempts: 1})
		if err != nil {
			return err
		}

		if job.UniqueSkippedAsDuplicate {
			return c.Reply("Wait for the reply to your previous message.")
		}

		return nil
	})

	slog.Info("Telegram bot successfully started")
	bot.API.Start()
	return nil
}

func (bot *Bot) Stop() {
	bot.API.Stop()
}
