package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/chat"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChatService struct {
	response *chat.AskResponse
	err      error
	calls    int
}

func (f *fakeChatService) Ask(ctx context.Context, mensaje string) (*chat.AskResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.response != nil {
		return f.response, nil
	}
	if mensaje == "" {
		return nil, chat.ErrEmptyMessage
	}
	return &chat.AskResponse{Respuesta: "ok", Timestamp: "2025-03-03 10:00:00"}, nil
}

func chatTestAuth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", []byte("test-secret-key-for-jwt"), nil)
}

func authedChatRequest(t *testing.T, method string, body []byte) *http.Request {
	ja := chatTestAuth()
	token, _, err := ja.Encode(map[string]interface{}{"user_id": 1, "username": "admin", "type": "access"})
	require.NoError(t, err)

	req := httptest.NewRequest(method, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func decodeChatError(t *testing.T, rec *httptest.ResponseRecorder) string {
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload["error"]
}

func TestChatHandler_Unauthenticated(t *testing.T) {
	service := &fakeChatService{}
	handler := NewChatHandler(service)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader([]byte(`{"mensaje":"hola"}`)))
	req = req.WithContext(jwtauth.NewContext(req.Context(), nil, jwtauth.ErrNoTokenFound))
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "No autorizado", decodeChatError(t, rec))
	assert.Zero(t, service.calls)
}

func TestChatHandler_MethodNotAllowed(t *testing.T) {
	service := &fakeChatService{}
	handler := NewChatHandler(service)

	req := authedChatRequest(t, http.MethodGet, nil)
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "Método no permitido", decodeChatError(t, rec))
	assert.Zero(t, service.calls)
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	service := &fakeChatService{err: chat.ErrEmptyMessage}
	handler := NewChatHandler(service)

	req := authedChatRequest(t, http.MethodPost, []byte(`{"mensaje":""}`))
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mensaje vacío", decodeChatError(t, rec))
}

func TestChatHandler_AssistantUnavailable(t *testing.T) {
	service := &fakeChatService{err: chat.ErrAssistantUnavailable}
	handler := NewChatHandler(service)

	req := authedChatRequest(t, http.MethodPost, []byte(`{"mensaje":"hola"}`))
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error al comunicarse con la IA", decodeChatError(t, rec))
}

func TestChatHandler_MalformedReply(t *testing.T) {
	service := &fakeChatService{err: chat.ErrMalformedAssistantReply}
	handler := NewChatHandler(service)

	req := authedChatRequest(t, http.MethodPost, []byte(`{"mensaje":"hola"}`))
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Respuesta inesperada de la IA", decodeChatError(t, rec))
}

func TestChatHandler_Success(t *testing.T) {
	service := &fakeChatService{response: &chat.AskResponse{
		Respuesta: "Hoy llegaron 8 empleados.",
		Timestamp: "2025-03-03 10:00:00",
	}}
	handler := NewChatHandler(service)

	req := authedChatRequest(t, http.MethodPost, []byte(`{"mensaje":"¿cuántos llegaron hoy?"}`))
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var payload chat.AskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Hoy llegaron 8 empleados.", payload.Respuesta)
	assert.Equal(t, "2025-03-03 10:00:00", payload.Timestamp)
}

func TestChatHandler_InvalidBodyTreatedAsEmpty(t *testing.T) {
	service := &fakeChatService{err: chat.ErrEmptyMessage}
	handler := NewChatHandler(service)

	req := authedChatRequest(t, http.MethodPost, []byte(`{not json`))
	rec := httptest.NewRecorder()

	handler.Ask(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Mensaje vacío", decodeChatError(t, rec))
}
