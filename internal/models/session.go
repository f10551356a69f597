package models

// Role identifies which dialogue an actor is having.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBarista  Role = "barista"
	RoleAdmin    Role = "admin"
)

// Session is one actor's ongoing dialogue context, keyed by (role, chat ID).
// Sessions are in-memory only and are lost on process restart.
type Session struct {
	Role   Role
	ChatID int64
	State  string

	// Selections is the scratch space for an order in progress
	// (drink, size, milk, syrup, shop). Cleared on restart and cancel.
	Selections map[string]string

	// ShopCode is the location a barista session is bound to.
	ShopCode string
}

// NewSession returns a session in the role's initial state with an
// empty selection store.
func NewSession(role Role, chatID int64) *Session {
	return &Session{
		Role:       role,
		ChatID:     chatID,
		State:      "start",
		Selections: make(map[string]string),
	}
}

// Reset returns the session to its initial state and clears the
// selection store. Shop binding survives only an explicit rebind,
// matching the restart semantics of each dialogue.
func (s *Session) Reset() {
	s.State = "start"
	s.Selections = make(map[string]string)
	s.ShopCode = ""
}
