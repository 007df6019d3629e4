package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"dsatutor/db"
	"dsatutor/models"
	"dsatutor/services/prompt"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"
)

const (
	greetingMessage   = "🤖 Hello! I am your DSA Tutor."
	offTopicReply     = "⚠️ Please ask only Data Structures & Algorithms related questions."
	offTopicFileReply = "⚠️ The prompt or file is not related to Data Structures & Algorithms."
)

type ChatService struct {
	repo db.ChatRepository
	llm  llms.Model
}

func NewChatService(repo db.ChatRepository, llm llms.Model) *ChatService {
	return &ChatService{repo: repo, llm: llm}
}

// NewChat creates an empty conversation seeded with the greeting turn.
func (s *ChatService) NewChat(userID string) (*models.Chat, error) {
	log.Printf("[INFO] Starting new chat for user %s", userID)

	chat := &models.Chat{
		ID:     uuid.NewString(),
		UserID: userID,
		Messages: []models.Message{
			{Role: models.RoleAssistant, Text: greetingMessage},
		},
	}

	if err := s.repo.CreateChat(chat); err != nil {
		log.Printf("[ERROR] Failed to create chat: %v", err)
		return nil, fmt.Errorf("failed to create chat: %w", err)
	}

	log.Printf("[INFO] Successfully created chat %s", chat.ID)
	return chat, nil
}

// ListChats returns the caller's conversations, newest-created first.
func (s *ChatService) ListChats(userID string) ([]*models.Chat, error) {
	chats, err := s.repo.GetChatsByUser(userID)
	if err != nil {
		log.Printf("[ERROR] Failed to list chats for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}

	log.Printf("[INFO] Retrieved %d chats for user %s", len(chats), userID)
	return chats, nil
}

// SendMessage runs the full pipeline for one user turn: domain gate,
// prompt composition, a single model attempt, then appending the user
// and assistant turns to the owner-scoped chat. An off-topic message
// returns the fixed refusal without calling the model or touching
// storage.
func (s *ChatService) SendMessage(chatID, userID, message string) (string, error) {
	log.Printf("[INFO] Starting send message for chat %s", chatID)

	if !prompt.InDomain(message) {
		log.Printf("[INFO] Message rejected by domain gate for chat %s", chatID)
		return offTopicReply, nil
	}

	reply, err := s.generate(prompt.Compose(message))
	if err != nil {
		return "", err
	}

	turns := []models.Message{
		{Role: models.RoleUser, Text: message},
		{Role: models.RoleAssistant, Text: reply},
	}
	if err := s.appendTurns(chatID, userID, turns); err != nil {
		return "", err
	}

	log.Printf("[INFO] Successfully completed exchange for chat %s", chatID)
	return reply, nil
}

// SendFileMessage handles a message with an attached file. The message
// and the file content must each pass the gate on their own; the
// composed prompt sees both, but only the short message is persisted as
// the user turn.
func (s *ChatService) SendFileMessage(chatID, userID, message, fileContent string) (string, error) {
	log.Printf("[INFO] Starting send file message for chat %s", chatID)

	if !prompt.InDomain(message) || !prompt.InDomain(fileContent) {
		log.Printf("[INFO] Message or file rejected by domain gate for chat %s", chatID)
		return offTopicFileReply, nil
	}

	combined := message + "\n\nFile Content:\n" + fileContent

	reply, err := s.generate(prompt.Compose(combined))
	if err != nil {
		return "", err
	}

	turns := []models.Message{
		{Role: models.RoleUser, Text: message},
		{Role: models.RoleAssistant, Text: reply},
	}
	if err := s.appendTurns(chatID, userID, turns); err != nil {
		return "", err
	}

	log.Printf("[INFO] Successfully completed file exchange for chat %s", chatID)
	return reply, nil
}

// Regenerate re-runs the pipeline on a previous user prompt and appends
// only the fresh assistant turn; the user turn being regenerated is
// already stored.
func (s *ChatService) Regenerate(chatID, userID, userPrompt string) (string, error) {
	log.Printf("[INFO] Starting regenerate for chat %s", chatID)

	if !prompt.InDomain(userPrompt) {
		log.Printf("[INFO] Prompt rejected by domain gate for chat %s", chatID)
		return offTopicReply, nil
	}

	reply, err := s.generate(prompt.Compose(userPrompt))
	if err != nil {
		return "", err
	}

	turns := []models.Message{
		{Role: models.RoleAssistant, Text: reply},
	}
	if err := s.appendTurns(chatID, userID, turns); err != nil {
		return "", err
	}

	log.Printf("[INFO] Successfully regenerated reply for chat %s", chatID)
	return reply, nil
}

// Rename sets the conversation title.
func (s *ChatService) Rename(chatID, userID, title string) error {
	if err := s.repo.RenameChat(chatID, userID, title); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("[ERROR] Failed to rename chat %s: %v", chatID, err)
		return fmt.Errorf("failed to rename chat: %w", err)
	}

	log.Printf("[INFO] Successfully renamed chat %s", chatID)
	return nil
}

// Delete removes the conversation. Deleting a missing or foreign chat is
// a successful no-op.
func (s *ChatService) Delete(chatID, userID string) error {
	if err := s.repo.DeleteChat(chatID, userID); err != nil {
		log.Printf("[ERROR] Failed to delete chat %s: %v", chatID, err)
		return fmt.Errorf("failed to delete chat: %w", err)
	}

	log.Printf("[INFO] Deleted chat %s", chatID)
	return nil
}

func (s *ChatService) generate(promptText string) (string, error) {
	ctx := context.Background()

	log.Printf("[INFO] Calling LLM with composed prompt")
	completion, err := llms.GenerateFromSinglePrompt(ctx, s.llm, promptText,
		llms.WithTemperature(0.7),
	)
	if err != nil {
		log.Printf("[ERROR] LLM call failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrModelFailure, err)
	}

	return strings.TrimSpace(completion), nil
}

func (s *ChatService) appendTurns(chatID, userID string, turns []models.Message) error {
	if err := s.repo.AppendMessages(chatID, userID, turns); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		log.Printf("[ERROR] Failed to append messages to chat %s: %v", chatID, err)
		return fmt.Errorf("failed to append messages: %w", err)
	}
	return nil
}
