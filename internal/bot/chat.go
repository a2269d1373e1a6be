package bot

import (
	"context"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"golang.org/x/time/rate"
	"gopkg.in/telebot.v4"

	"chefbot/internal/history"
	assistantpkg "chefbot/pkg/assistant"
)

type ChatArgs struct {
	ChatID  int64  `json:"chat_id" river:"unique"`
	Content string `json:"prompt"`
}

func (ChatArgs) Kind() string { return "chat" }

func (args ChatArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

type ChatWorker struct {
	BotAPI           telebot.API
	AssistantService assistantpkg.Service
	HistoryStore     history.Store
	Limiter          *rate.Limiter
	river.WorkerDefaults[ChatArgs]
}

func (w *ChatWorker) Work(ctx context.Context, job *river.Job[ChatArgs]) error {
	origin, err := w.BotAPI.Send(telebot.ChatID(job.Args.ChatID), "...")
	if err != nil {
		return err
	}
	manager := NewMessageManager(w.BotAPI, origin)

	prior, err := w.HistoryStore.Messages(ctx, job.Args.ChatID)
	if err != nil {
		return err
	}

	turn := append(prior, assistantpkg.Message{
		Role:    assistantpkg.RoleUser,
		Content: job.Args.Content,
	})

	if err := w.Limiter.Wait(ctx); err != nil {
		return err
	}

	updated, err := w.AssistantService.Complete(ctx, turn)
	if err != nil {
		_ = manager.Edit("Something went wrong, please try again.")
		return err
	}

	if err := w.HistoryStore.Replace(ctx, job.Args.ChatID, updated); err != nil {
		return err
	}

	return manager.Edit(updated[len(updated)-1].Content)
}
