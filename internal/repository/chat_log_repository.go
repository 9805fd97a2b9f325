package repository

import (
	"context"
	"fmt"

	"ironlady-chat/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const chatLogsTable = "chat_logs"

type ChatLogRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatLogRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatLogRepository {
	return &ChatLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatLogRepository) Create(ctx context.Context, log *models.ChatLog) error {
	sql, args, err := insertChatLogQuery(log).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to insert chat log: %w", err)
	}
	return nil
}

// CountBySource returns how many exchanges each reply path produced.
func (r *ChatLogRepository) CountBySource(ctx context.Context) (map[models.ReplySource]int64, error) {
	sql, args, err := countBySourceQuery().ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count chat logs: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ReplySource]int64)
	for rows.Next() {
		var source string
		var count int64
		if err := rows.Scan(&source, &count); err != nil {
			return nil, err
		}
		counts[models.ReplySource(source)] = count
	}

	return counts, rows.Err()
}

func insertChatLogQuery(log *models.ChatLog) squirrel.InsertBuilder {
	return squirrel.Insert(chatLogsTable).
		Columns("id", "message", "response", "source", "created_at").
		Values(log.ID, sanitizeUTF8(log.Message), sanitizeUTF8(log.Response), string(log.Source), log.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)
}

func countBySourceQuery() squirrel.SelectBuilder {
	return squirrel.Select("source", "COUNT(*)").
		From(chatLogsTable).
		GroupBy("source").
		OrderBy("source").
		PlaceholderFormat(squirrel.Dollar)
}
