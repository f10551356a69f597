package primary

import (
	"context"

	"github.com/example/kwonka/internal/models"
)

// DialogueService defines the primary port for actor dialogue handling.
// Each inbound message advances the actor's session state machine and
// produces the prompt to send back.
type DialogueService interface {
	// HandleMessage processes one inbound message for the given actor and
	// returns the reply prompt. Side effects requested by the dialogue
	// (placing orders, status changes, subscriptions) happen before the
	// prompt is returned.
	HandleMessage(ctx context.Context, role models.Role, chatID int64, text string) (models.Prompt, error)
}
