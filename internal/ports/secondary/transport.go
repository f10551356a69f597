package secondary

import (
	"context"

	"github.com/example/kwonka/internal/models"
)

// Inbound is a single message arriving from an actor channel.
type Inbound struct {
	Role   models.Role
	ChatID int64
	Text   string
}

// Transport defines the secondary port for delivering prompts to actors.
type Transport interface {
	// Send delivers a prompt to the given actor channel.
	Send(ctx context.Context, role models.Role, chatID int64, prompt models.Prompt) error
}

// Receiver defines the secondary port for consuming inbound actor messages.
type Receiver interface {
	// Receive returns a channel of inbound messages. The channel is closed
	// when ctx is cancelled or the underlying connection is lost.
	Receive(ctx context.Context) (<-chan Inbound, error)
}
