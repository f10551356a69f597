package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/example/kwonka/internal/adapters/memory"
	"github.com/example/kwonka/internal/models"
)

type dialogueFixture struct {
	svc        *DialogueServiceImpl
	orders     *OrderServiceImpl
	escalation *EscalationServiceImpl
	orderRepo  *mockOrderRepository
	transport  *mockTransport
	sessions   *memory.SessionStore
	clock      *fixedClock
}

func newDialogueFixture() *dialogueFixture {
	orderRepo := newMockOrderRepository()
	shopRepo := newMockShopRepository()
	transport := &mockTransport{}
	sessions := memory.NewSessionStore()
	clock := newFixedClock(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))

	notifier := NewNotifier(transport, sessions)
	orders := NewOrderService(orderRepo, shopRepo, notifier, &mockLogWriter{}, clock)
	shops := NewShopService(shopRepo)
	registry := NewAdminRegistry()
	escalation := NewEscalationService(orderRepo, notifier, registry, clock, 0, 0)
	stats := NewStatsService(orderRepo, shopRepo, clock)

	return &dialogueFixture{
		svc:        NewDialogueService(sessions, orders, shops, escalation, stats, notifier),
		orders:     orders,
		escalation: escalation,
		orderRepo:  orderRepo,
		transport:  transport,
		sessions:   sessions,
		clock:      clock,
	}
}

func (f *dialogueFixture) say(t *testing.T, role models.Role, chatID int64, text string) models.Prompt {
	t.Helper()
	prompt, err := f.svc.HandleMessage(context.Background(), role, chatID, text)
	if err != nil {
		t.Fatalf("HandleMessage(%s, %q) failed: %v", role, text, err)
	}
	return prompt
}

func hasOption(p models.Prompt, option string) bool {
	for _, o := range p.Options {
		if o == option {
			return true
		}
	}
	return false
}

func TestFullOrderJourney(t *testing.T) {
	f := newDialogueFixture()
	const customer, barista = int64(1042), int64(55)

	// Customer walks the whole ordering flow.
	p := f.say(t, models.RoleCustomer, customer, "/start")
	if !hasOption(p, "Start") {
		t.Fatalf("expected Start option, got %+v", p)
	}
	f.say(t, models.RoleCustomer, customer, "Start")
	p = f.say(t, models.RoleCustomer, customer, "I want coffee")
	if !hasOption(p, "One Shott Downtown") || !hasOption(p, "One Shott Mall") {
		t.Fatalf("expected both shops offered, got %+v", p.Options)
	}
	p = f.say(t, models.RoleCustomer, customer, "One Shott Downtown")
	if !hasOption(p, "Americano") {
		t.Fatalf("expected drink options, got %+v", p.Options)
	}
	f.say(t, models.RoleCustomer, customer, "Americano")
	f.say(t, models.RoleCustomer, customer, "Small 250 ml")
	p = f.say(t, models.RoleCustomer, customer, "No add-ons")
	if !strings.Contains(p.Text, "990 tenge") {
		t.Fatalf("expected 990 tenge in summary, got %q", p.Text)
	}
	if !strings.Contains(p.Text, "One Shott Downtown") {
		t.Errorf("expected pickup shop name in summary, got %q", p.Text)
	}
	f.say(t, models.RoleCustomer, customer, "Yes")
	f.say(t, models.RoleCustomer, customer, "Pay")
	p = f.say(t, models.RoleCustomer, customer, "I have paid")
	if !strings.Contains(p.Text, "Order #1 placed") {
		t.Fatalf("expected order placed, got %q", p.Text)
	}

	// Barista binds the shop and works the order through the queues.
	f.say(t, models.RoleBarista, barista, "/start")
	f.say(t, models.RoleBarista, barista, "Start work")
	p = f.say(t, models.RoleBarista, barista, "One Shott Downtown")
	if !strings.Contains(p.Text, "#1") {
		t.Fatalf("expected order 1 in pending queue, got %q", p.Text)
	}
	p = f.say(t, models.RoleBarista, barista, "take:1")
	if strings.Contains(p.Text, "#1") {
		t.Errorf("taken order should leave the pending view: %q", p.Text)
	}
	p = f.say(t, models.RoleBarista, barista, "Orders in progress")
	if !strings.Contains(p.Text, "#1") {
		t.Fatalf("expected order 1 in progress, got %q", p.Text)
	}
	f.say(t, models.RoleBarista, barista, "ready:1")

	// Customer got both status pushes.
	msgs := f.transport.messagesFor(models.RoleCustomer, customer)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 customer notifications, got %d", len(msgs))
	}
	if !strings.Contains(msgs[0].Prompt.Text, "being prepared") || !strings.Contains(msgs[1].Prompt.Text, "ready for pickup") {
		t.Errorf("unexpected notifications: %q, %q", msgs[0].Prompt.Text, msgs[1].Prompt.Text)
	}

	// Customer picks up; the order closes.
	p = f.say(t, models.RoleCustomer, customer, "Picked up")
	if !strings.Contains(p.Text, "Order #1 closed") {
		t.Fatalf("expected pickup confirmation, got %q", p.Text)
	}
	order, err := f.orders.GetOrder(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if order.Status != models.OrderStatusCompleted {
		t.Errorf("expected COMPLETED, got %s", order.Status)
	}
}

func TestUnrecognizedInputKeepsStateAndNags(t *testing.T) {
	f := newDialogueFixture()

	f.say(t, models.RoleCustomer, 1, "/start")
	p := f.say(t, models.RoleCustomer, 1, "give me coffee now")
	if p.Notice == "" {
		t.Error("expected a notice for unrecognized input")
	}
	if !hasOption(p, "Start") {
		t.Errorf("expected the welcome prompt re-rendered, got %+v", p.Options)
	}
}

func TestPickupWithoutReadyOrder(t *testing.T) {
	f := newDialogueFixture()

	f.say(t, models.RoleCustomer, 1, "/start")
	p := f.say(t, models.RoleCustomer, 1, "Picked up")
	if !strings.Contains(p.Notice, "no order") {
		t.Errorf("expected a no-order notice, got %q", p.Notice)
	}
}

func TestMilkAndSyrupAffectTotal(t *testing.T) {
	f := newDialogueFixture()
	const customer = int64(7)

	f.say(t, models.RoleCustomer, customer, "/start")
	f.say(t, models.RoleCustomer, customer, "Start")
	f.say(t, models.RoleCustomer, customer, "I want coffee")
	f.say(t, models.RoleCustomer, customer, "One Shott Mall")
	f.say(t, models.RoleCustomer, customer, "Latte")
	f.say(t, models.RoleCustomer, customer, "Medium 350 ml")
	f.say(t, models.RoleCustomer, customer, "Plant milk")
	f.say(t, models.RoleCustomer, customer, "Oat")
	f.say(t, models.RoleCustomer, customer, "Syrup")
	f.say(t, models.RoleCustomer, customer, "Vanilla")
	p := f.say(t, models.RoleCustomer, customer, "Done")

	// Latte medium 1190 + milk 450 + syrup 160.
	if !strings.Contains(p.Text, "1800 tenge") {
		t.Fatalf("expected 1800 tenge total, got %q", p.Text)
	}

	f.say(t, models.RoleCustomer, customer, "Yes")
	f.say(t, models.RoleCustomer, customer, "Pay")
	f.say(t, models.RoleCustomer, customer, "I have paid")

	order, err := f.orders.GetOrder(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if order.TotalPrice != 1800 || order.MilkType != "Oat" || order.SyrupType != "Vanilla" {
		t.Errorf("unexpected persisted order: %+v", order)
	}
}

func TestAdminMonitoringSubscribesAndNotifies(t *testing.T) {
	f := newDialogueFixture()
	const admin, barista = int64(900), int64(55)

	// A pending order ages past the critical threshold.
	addPending(t, f.orderRepo, "1", f.clock.Now().Add(-12*time.Minute))

	f.say(t, models.RoleAdmin, admin, "/start")
	f.say(t, models.RoleAdmin, admin, "Order monitoring")
	if subs := f.escalation.Subscribers(); len(subs) != 1 || subs[0] != admin {
		t.Fatalf("expected admin subscribed, got %v", subs)
	}

	// Manual check broadcasts the escalation to the subscriber.
	f.say(t, models.RoleAdmin, admin, "Check orders")
	if got := len(f.transport.messagesFor(models.RoleAdmin, admin)); got != 1 {
		t.Fatalf("expected 1 escalation message, got %d", got)
	}

	// Delayed view lists the order; with no barista bound, the nudge reports that.
	p := f.say(t, models.RoleAdmin, admin, "Delayed orders")
	if !strings.Contains(p.Text, "#1") {
		t.Fatalf("expected delayed order listed, got %q", p.Text)
	}
	p = f.say(t, models.RoleAdmin, admin, "notify:1")
	if !strings.Contains(p.Notice, "No barista") {
		t.Errorf("expected no-barista notice, got %q", p.Notice)
	}

	// Bind a barista and nudge again: the reminder lands in their chat.
	f.say(t, models.RoleBarista, barista, "Start work")
	f.say(t, models.RoleBarista, barista, "One Shott Downtown")
	p = f.say(t, models.RoleAdmin, admin, "notify:1")
	if p.Notice != "Barista notified." {
		t.Errorf("expected confirmation notice, got %q", p.Notice)
	}
	reminders := 0
	for _, msg := range f.transport.messagesFor(models.RoleBarista, barista) {
		if strings.Contains(msg.Prompt.Text, "Reminder from admin") {
			reminders++
		}
	}
	if reminders != 1 {
		t.Errorf("expected 1 reminder, got %d", reminders)
	}

	// Main menu unsubscribes; restart must not.
	f.say(t, models.RoleAdmin, admin, "Back")
	f.say(t, models.RoleAdmin, admin, "Main menu")
	if subs := f.escalation.Subscribers(); len(subs) != 0 {
		t.Errorf("expected unsubscribe on main menu, got %v", subs)
	}

	f.say(t, models.RoleAdmin, admin, "Order monitoring")
	f.say(t, models.RoleAdmin, admin, "/start")
	if subs := f.escalation.Subscribers(); len(subs) != 1 {
		t.Errorf("restart must keep the subscription, got %v", subs)
	}
}

func TestAdminDailyReport(t *testing.T) {
	f := newDialogueFixture()
	const admin = int64(900)

	f.say(t, models.RoleAdmin, admin, "/start")
	f.say(t, models.RoleAdmin, admin, "Statistics")
	p := f.say(t, models.RoleAdmin, admin, "Daily report")
	if !strings.Contains(p.Text, "Report for 2026-08-31") {
		t.Fatalf("expected daily report, got %q", p.Text)
	}
	if !strings.Contains(p.Text, "One Shott Downtown") || !strings.Contains(p.Text, "One Shott Mall") {
		t.Errorf("expected all shops in report, got %q", p.Text)
	}
}

func TestBaristaQueuesAreShopScoped(t *testing.T) {
	f := newDialogueFixture()

	addPending(t, f.orderRepo, "1", f.clock.Now()) // DOWNTOWN

	f.say(t, models.RoleBarista, 55, "Start work")
	p := f.say(t, models.RoleBarista, 55, "One Shott Mall")
	if strings.Contains(p.Text, "#1") {
		t.Errorf("mall barista must not see downtown orders: %q", p.Text)
	}

	f.say(t, models.RoleBarista, 55, "Change location")
	p = f.say(t, models.RoleBarista, 55, "One Shott Downtown")
	if !strings.Contains(p.Text, "#1") {
		t.Errorf("downtown barista should see the order: %q", p.Text)
	}
}

func TestTakeAlreadyTakenOrderShowsNotice(t *testing.T) {
	f := newDialogueFixture()
	ctx := context.Background()

	addPending(t, f.orderRepo, "1", f.clock.Now())
	f.say(t, models.RoleBarista, 55, "Start work")
	f.say(t, models.RoleBarista, 55, "One Shott Downtown")

	// Another barista takes it first.
	if _, err := f.orders.AcceptOrder(ctx, "1"); err != nil {
		t.Fatalf("AcceptOrder failed: %v", err)
	}

	p := f.say(t, models.RoleBarista, 55, "take:1")
	if !strings.Contains(p.Notice, "can no longer be taken") {
		t.Errorf("expected stale-action notice, got %q", p.Notice)
	}
}
