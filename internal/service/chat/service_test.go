package chat

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/chat"
	"github.com/datasynergy/asistencia-backend-go/internal/pkg/assistant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotRepo struct {
	records []chat.RecordSnapshot
	err     error
	calls   int
}

func (f *fakeSnapshotRepo) RecentRecords(ctx context.Context, limit int) ([]chat.RecordSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

type fakeAssistant struct {
	answer     string
	err        error
	calls      int
	gotMensaje string
	gotDatos   string
}

func (f *fakeAssistant) Ask(ctx context.Context, mensaje, datos string) (string, error) {
	f.calls++
	f.gotMensaje = mensaje
	f.gotDatos = datos
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestChatService_Ask_Success(t *testing.T) {
	repo := &fakeSnapshotRepo{records: []chat.RecordSnapshot{
		{Nombre: "Ana García", Documento: "12345678", Cargo: "Analista de Datos", TipoEvento: "entrada", FechaHora: "2025-03-03 08:02:11", ValidadoBiometricamente: true},
	}}
	client := &fakeAssistant{answer: "Ana llegó a las 08:02."}
	service := NewChatService(repo, client)

	resp, err := service.Ask(context.Background(), "¿a qué hora llegó Ana?")

	require.NoError(t, err)
	assert.Equal(t, "Ana llegó a las 08:02.", resp.Respuesta)
	assert.NotEmpty(t, resp.Timestamp)
	assert.Equal(t, "¿a qué hora llegó Ana?", client.gotMensaje)

	// The context blob is the serialized snapshot
	var sent []chat.RecordSnapshot
	require.NoError(t, json.Unmarshal([]byte(client.gotDatos), &sent))
	require.Len(t, sent, 1)
	assert.Equal(t, "Ana García", sent[0].Nombre)
}

func TestChatService_Ask_EmptyMessage(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	client := &fakeAssistant{}
	service := NewChatService(repo, client)

	_, err := service.Ask(context.Background(), "   ")

	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
	// Rejected before any I/O: neither the store nor the assistant is touched
	assert.Zero(t, repo.calls)
	assert.Zero(t, client.calls)
}

func TestChatService_Ask_AssistantUnavailable(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	client := &fakeAssistant{err: assistant.ErrUnavailable}
	service := NewChatService(repo, client)

	_, err := service.Ask(context.Background(), "pregunta")

	assert.ErrorIs(t, err, chat.ErrAssistantUnavailable)
	// No retries
	assert.Equal(t, 1, client.calls)
}

func TestChatService_Ask_MalformedReply(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	client := &fakeAssistant{err: assistant.ErrMalformedReply}
	service := NewChatService(repo, client)

	_, err := service.Ask(context.Background(), "pregunta")

	assert.ErrorIs(t, err, chat.ErrMalformedAssistantReply)
}

func TestChatService_Ask_StoreError(t *testing.T) {
	repo := &fakeSnapshotRepo{err: errors.New("connection refused")}
	client := &fakeAssistant{}
	service := NewChatService(repo, client)

	_, err := service.Ask(context.Background(), "pregunta")

	assert.Error(t, err)
	// Never fabricate an answer: the assistant is not called without context
	assert.Zero(t, client.calls)
}

func TestChatService_Ask_EmptyTableSendsEmptyArray(t *testing.T) {
	repo := &fakeSnapshotRepo{}
	client := &fakeAssistant{answer: "Sin datos."}
	service := NewChatService(repo, client)

	_, err := service.Ask(context.Background(), "¿quién llegó hoy?")

	require.NoError(t, err)
	assert.Equal(t, "[]", client.gotDatos)
}
