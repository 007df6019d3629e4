package db

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"dsatutor/models"

	_ "github.com/lib/pq"
)

// ChatRepository is the document-model view of conversation threads.
// Every read and mutation is scoped by the owning user id; a chat owned
// by someone else behaves exactly like a chat that does not exist.
type ChatRepository interface {
	CreateChat(chat *models.Chat) error
	GetChatByID(id, userID string) (*models.Chat, error)
	GetChatsByUser(userID string) ([]*models.Chat, error)
	AppendMessages(id, userID string, messages []models.Message) error
	RenameChat(id, userID, title string) error
	DeleteChat(id, userID string) error
}

type PostgresChatRepository struct {
	db *sql.DB
}

func NewPostgresChatRepository(databaseURL string) (*PostgresChatRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresChatRepository{db: db}, nil
}

func (r *PostgresChatRepository) CreateChat(chat *models.Chat) error {
	messagesJSON, err := json.Marshal(chat.Messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	query := `
		INSERT INTO dsatutor.chats (id, user_id, title, messages)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	row := r.db.QueryRow(query, chat.ID, chat.UserID, chat.Title, messagesJSON)

	if err := row.Scan(&chat.CreatedAt); err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}

	return nil
}

func (r *PostgresChatRepository) GetChatByID(id, userID string) (*models.Chat, error) {
	query := `
		SELECT id, user_id, title, messages, created_at
		FROM dsatutor.chats
		WHERE id = $1 AND user_id = $2`

	return r.scanChat(r.db.QueryRow(query, id, userID))
}

func (r *PostgresChatRepository) GetChatsByUser(userID string) ([]*models.Chat, error) {
	query := `
		SELECT id, user_id, title, messages, created_at
		FROM dsatutor.chats
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query chats: %w", err)
	}
	defer rows.Close()

	chats := make([]*models.Chat, 0)
	for rows.Next() {
		chat, err := r.scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chats: %w", err)
	}

	return chats, nil
}

// AppendMessages concatenates the new turns onto the stored document in a
// single owner-scoped statement. Concurrent appends to the same chat are
// last-write-wins at the storage layer.
func (r *PostgresChatRepository) AppendMessages(id, userID string, messages []models.Message) error {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal messages: %w", err)
	}

	query := `
		UPDATE dsatutor.chats
		SET messages = messages || $3::jsonb
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID, messagesJSON)
	if err != nil {
		return fmt.Errorf("failed to append messages: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *PostgresChatRepository) RenameChat(id, userID, title string) error {
	query := `
		UPDATE dsatutor.chats
		SET title = $3
		WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID, title)
	if err != nil {
		return fmt.Errorf("failed to rename chat: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteChat silently no-ops on a missing or foreign id; deletion is
// idempotent.
func (r *PostgresChatRepository) DeleteChat(id, userID string) error {
	query := `
		DELETE FROM dsatutor.chats
		WHERE id = $1 AND user_id = $2`

	if _, err := r.db.Exec(query, id, userID); err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	return nil
}

func (r *PostgresChatRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresChatRepository) scanChat(row rowScanner) (*models.Chat, error) {
	chat := &models.Chat{}
	var messagesJSON []byte

	err := row.Scan(&chat.ID, &chat.UserID, &chat.Title, &messagesJSON, &chat.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan chat: %w", err)
	}

	if err := json.Unmarshal(messagesJSON, &chat.Messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal messages: %w", err)
	}

	return chat, nil
}
