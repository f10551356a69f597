// Package monitor contains the pure wait-time logic of the order
// monitor: computing how long PENDING orders have been waiting and
// partitioning them into the delayed and critical sets. Scanning,
// deduplication and fan-out live in the escalation service.
package monitor

import (
	"sort"
	"strconv"
	"time"

	"github.com/example/kwonka/internal/models"
)

// Wait thresholds in minutes. An order is delayed once it has waited
// five minutes and critical at ten; only critical orders trigger the
// autonomous escalation path.
const (
	DelayedThresholdMinutes  = 5
	CriticalThresholdMinutes = 10
)

// DelayedOrder pairs an order with its computed wait time.
type DelayedOrder struct {
	Order       models.Order
	WaitMinutes int
}

// WaitMinutes returns the whole minutes the order has been waiting.
func WaitMinutes(order models.Order, now time.Time) int {
	return int(now.Sub(order.CreatedAt).Minutes())
}

// Partition splits pending orders into the delayed (>=5 min) and
// critical (>=10 min) sets. Both are sorted by descending wait time
// with ties broken by ascending order number, so the rendered views
// and the escalation order are deterministic.
func Partition(pending []models.Order, now time.Time) (delayed, critical []DelayedOrder) {
	for _, order := range pending {
		wait := WaitMinutes(order, now)
		if wait < DelayedThresholdMinutes {
			continue
		}
		entry := DelayedOrder{Order: order, WaitMinutes: wait}
		delayed = append(delayed, entry)
		if wait >= CriticalThresholdMinutes {
			critical = append(critical, entry)
		}
	}
	sortByWait(delayed)
	sortByWait(critical)
	return delayed, critical
}

func sortByWait(orders []DelayedOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		if orders[i].WaitMinutes != orders[j].WaitMinutes {
			return orders[i].WaitMinutes > orders[j].WaitMinutes
		}
		return numberLess(orders[i].Order.OrderNumber, orders[j].Order.OrderNumber)
	})
}

// numberLess compares order numbers numerically; they are decimal
// strings assigned sequentially by the order service.
func numberLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}
