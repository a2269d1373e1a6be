package bot

import (
	"errors"

	"gopkg.in/telebot.v4"
)

// MessageManager edits a placeholder message in place as the reply becomes
// available, so the user sees one message instead of a stream of them.
type MessageManager struct {
	bot    telebot.API
	origin *telebot.Message
}

func NewMessageManager(bot telebot.API, origin *telebot.Message) *MessageManager {
	return &MessageManager{
		bot:    bot,
		origin: origin,
	}
}

// Edit replaces the managed message's text. Telegram rejects edits that do
// not change the text; that case is not an error here.
func (manager *MessageManager) Edit(content string) error {
	var err error
	manager.origin, err = manager.bot.Edit(manager.origin, content)
	if err != nil && !errors.Is(err, telebot.ErrMessageNotModified) {
		return err
	}
	return nil
}
