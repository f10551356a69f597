package secondary

import "github.com/example/kwonka/internal/models"

// SessionStore defines the secondary port for dialogue session state.
// Sessions are keyed by (role, chat ID).
type SessionStore interface {
	// With runs fn against the session for the given key, creating a fresh
	// session when none exists. Calls for the same key are serialized so
	// dialogue handling never races against itself; mutations made by fn
	// are retained unless fn returns an error.
	With(role models.Role, chatID int64, fn func(*models.Session) error) error

	// Peek returns a copy of the session for the given key.
	// The second return value is false when no session exists.
	Peek(role models.Role, chatID int64) (models.Session, bool)

	// BaristaForShop returns the chat ID of a barista currently bound to the
	// given shop code. The second return value is false when no barista is
	// bound there.
	BaristaForShop(shopCode string) (int64, bool)
}
