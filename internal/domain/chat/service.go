package chat

import "context"

// ChatService relays a question about attendance data to the external
// assistant. Stateless; each invocation is independent.
type ChatService interface {
	// Ask validates the message, builds the data snapshot and forwards the
	// question. No retries: a single failure surfaces immediately.
	Ask(ctx context.Context, mensaje string) (*AskResponse, error)
}
