package primary

import "context"

// EscalationService defines the primary port for delayed-order escalation.
type EscalationService interface {
	// Subscribe adds an admin chat to escalation fan-out.
	Subscribe(chatID int64)

	// Unsubscribe removes an admin chat from escalation fan-out.
	Unsubscribe(chatID int64)

	// Subscribers returns the chat IDs currently receiving escalations.
	Subscribers() []int64

	// CheckOrders scans pending orders once and broadcasts an escalation
	// for each order past the critical threshold not yet escalated.
	// It returns the escalations raised by this scan.
	CheckOrders(ctx context.Context) ([]*Escalation, error)

	// DelayedOrders returns the pending orders currently past the delayed
	// threshold, longest-waiting first.
	DelayedOrders(ctx context.Context) ([]*DelayedOrder, error)

	// Start runs the periodic scan and ledger cleanup until ctx is cancelled.
	Start(ctx context.Context)
}

// Escalation represents a raised escalation at the port boundary.
type Escalation struct {
	OrderNumber string
	WaitMinutes int
	ShopCode    string
}

// DelayedOrder is an order past the delayed threshold, with its wait time.
// Critical marks orders that have also crossed the critical threshold.
type DelayedOrder struct {
	Order       *Order
	WaitMinutes int
	Critical    bool
}
