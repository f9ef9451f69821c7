package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/chat"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/assistant"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/validator"
)

// snapshotLimit bounds how many recent records ride along as assistant
// context.
const snapshotLimit = 100

type ChatServiceImpl struct {
	chat.SnapshotRepository
	assistantClient assistant.Client
}

func NewChatService(snapshotRepo chat.SnapshotRepository, assistantClient assistant.Client) chat.ChatService {
	return &ChatServiceImpl{
		SnapshotRepository: snapshotRepo,
		assistantClient:    assistantClient,
	}
}

// Ask implements chat.ChatService.
func (s *ChatServiceImpl) Ask(ctx context.Context, mensaje string) (*chat.AskResponse, error) {
	// Reject before any I/O
	if validator.IsEmpty(mensaje) {
		return nil, chat.ErrEmptyMessage
	}

	records, err := s.RecentRecords(ctx, snapshotLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build assistant context: %w", err)
	}
	if records == nil {
		records = []chat.RecordSnapshot{}
	}

	datos, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize assistant context: %w", err)
	}

	answer, err := s.assistantClient.Ask(ctx, mensaje, string(datos))
	if err != nil {
		// Internal detail stays in the log; the caller gets a generic error
		slog.Error("assistant call failed", "error", err)
		switch {
		case errors.Is(err, assistant.ErrMalformedReply):
			return nil, chat.ErrMalformedAssistantReply
		default:
			return nil, chat.ErrAssistantUnavailable
		}
	}

	return &chat.AskResponse{
		Respuesta: answer,
		Timestamp: time.Now().Format("2006-01-02 15:04:05"),
	}, nil
}
