package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/datasynergy/asistencia-backend-go/internal/domain/chat"
	"github.com/go-chi/jwtauth/v5"
)

// ChatHandler relays questions to the external assistant. The wire shape
// (mensaje/respuesta/timestamp/error, Spanish messages) is fixed by the
// existing frontend, so this endpoint does not use the response envelope.
type ChatHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type chatHandlerImpl struct {
	chatService chat.ChatService
}

func NewChatHandler(chatService chat.ChatService) ChatHandler {
	return &chatHandlerImpl{chatService: chatService}
}

type chatErrorResponse struct {
	Error string `json:"error"`
}

func writeChatJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// Ask handles /chat
func (h *chatHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		writeChatJSON(w, http.StatusUnauthorized, chatErrorResponse{Error: "No autorizado"})
		return
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
		writeChatJSON(w, http.StatusUnauthorized, chatErrorResponse{Error: "No autorizado"})
		return
	}

	if r.Method != http.MethodPost {
		writeChatJSON(w, http.StatusMethodNotAllowed, chatErrorResponse{Error: "Método no permitido"})
		return
	}

	// A body that fails to decode carries no message; same as an empty one
	var askReq chat.AskRequest
	_ = json.NewDecoder(r.Body).Decode(&askReq)

	result, err := h.chatService.Ask(r.Context(), askReq.Mensaje)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			writeChatJSON(w, http.StatusBadRequest, chatErrorResponse{Error: "Mensaje vacío"})
		case errors.Is(err, chat.ErrMalformedAssistantReply):
			writeChatJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "Respuesta inesperada de la IA"})
		case errors.Is(err, chat.ErrAssistantUnavailable):
			writeChatJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "Error al comunicarse con la IA"})
		default:
			writeChatJSON(w, http.StatusInternalServerError, chatErrorResponse{Error: "Error interno"})
		}
		return
	}

	writeChatJSON(w, http.StatusOK, result)
}
