package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	assistantpkg "chefbot/pkg/assistant"
)

const schema = `
create table if not exists chat_messages (
	chat_id  bigint not null,
	position int    not null,
	role     text   not null,
	content  text   not null,
	primary key (chat_id, position)
)`

// PostgresStore persists chat histories in a single table, one row per
// message, ordered by position within a chat.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensuring chat_messages table: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (store *PostgresStore) Messages(ctx context.Context, chatID int64) ([]assistantpkg.Message, error) {
	rows, err := store.pool.Query(ctx,
		`select role, content from chat_messages where chat_id = $1 order by position`, chatID)
	if err != nil {
		return nil, fmt.Errorf("selecting chat history: %w", err)
	}
	defer rows.Close()

	var messages []assistantpkg.Message
	for rows.Next() {
		var role, content string
		if err := rows.Scan(&role, &content); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		messages = append(messages, assistantpkg.Message{
			Role:    assistantpkg.Role(role),
			Content: content,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading chat history: %w", err)
	}

	return messages, nil
}

func (store *PostgresStore) Replace(ctx context.Context, chatID int64, messages []assistantpkg.Message) error {
	tx, err := store.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning history replace: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `delete from chat_messages where chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("clearing previous history: %w", err)
	}

	batch := &pgx.Batch{}
	for position, message := range messages {
		batch.Queue(
			`insert into chat_messages (chat_id, position, role, content) values ($1, $2, $3, $4)`,
			chatID, position, string(message.Role), message.Content)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting history: %w", err)
	}

	return tx.Commit(ctx)
}

func (store *PostgresStore) Clear(ctx context.Context, chatID int64) error {
	if _, err := store.pool.Exec(ctx, `delete from chat_messages where chat_id = $1`, chatID); err != nil {
		return fmt.Errorf("clearing chat history: %w", err)
	}
	return nil
}
