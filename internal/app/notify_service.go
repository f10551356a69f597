package app

import (
	"context"
	"log"

	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/secondary"
)

// Notifier pushes one-way status messages across actor channels. Delivery
// failures are logged, never propagated: a dead admin channel must not fail
// the order transition that triggered the message.
type Notifier struct {
	transport secondary.Transport
	sessions  secondary.SessionStore
}

// NewNotifier creates a new Notifier with injected dependencies.
func NewNotifier(transport secondary.Transport, sessions secondary.SessionStore) *Notifier {
	return &Notifier{
		transport: transport,
		sessions:  sessions,
	}
}

// NotifyCustomer sends a status message to a customer chat.
func (n *Notifier) NotifyCustomer(ctx context.Context, chatID int64, text string) {
	n.send(ctx, models.RoleCustomer, chatID, text)
}

// NotifyBarista sends a message to the barista bound to the given shop.
// When no barista is bound there the message is dropped silently.
func (n *Notifier) NotifyBarista(ctx context.Context, shopCode string, text string) bool {
	chatID, ok := n.sessions.BaristaForShop(shopCode)
	if !ok {
		return false
	}
	n.send(ctx, models.RoleBarista, chatID, text)
	return true
}

// NotifyAdmins fans a message out to every chat in the snapshot.
func (n *Notifier) NotifyAdmins(ctx context.Context, chatIDs []int64, text string) {
	for _, chatID := range chatIDs {
		n.send(ctx, models.RoleAdmin, chatID, text)
	}
}

func (n *Notifier) send(ctx context.Context, role models.Role, chatID int64, text string) {
	if err := n.transport.Send(ctx, role, chatID, models.Prompt{Text: text}); err != nil {
		log.Printf("notify %s:%d failed: %v", role, chatID, err)
	}
}
