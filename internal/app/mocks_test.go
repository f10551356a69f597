package app

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/example/kwonka/internal/models"
	"github.com/example/kwonka/internal/ports/secondary"
)

// mockOrderRepository implements secondary.OrderRepository for testing.
type mockOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*secondary.OrderRecord
	nextID int64
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*secondary.OrderRecord)}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *secondary.OrderRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[order.OrderNumber]; ok {
		return fmt.Errorf("duplicate order number %s", order.OrderNumber)
	}
	m.nextID++
	order.ID = m.nextID
	clone := *order
	m.orders[order.OrderNumber] = &clone
	return nil
}

func (m *mockOrderRepository) GetByNumber(ctx context.Context, number string) (*secondary.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[number]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, fmt.Errorf("order %s not found", number)
}

func (m *mockOrderRepository) List(ctx context.Context, filters secondary.OrderFilters) ([]*secondary.OrderRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*secondary.OrderRecord
	for _, o := range m.orders {
		if len(filters.Statuses) > 0 {
			match := false
			for _, s := range filters.Statuses {
				if o.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		if filters.ShopCode != "" && o.ShopCode != filters.ShopCode {
			continue
		}
		if filters.CustomerID != 0 && o.CustomerID != filters.CustomerID {
			continue
		}
		clone := *o
		result = append(result, &clone)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, number, status string, updatedAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[number]
	if !ok {
		return fmt.Errorf("order %s not found", number)
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	return nil
}

func (m *mockOrderRepository) MaxOrderNumber(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	max := 0
	for number := range m.orders {
		if n, err := strconv.Atoi(number); err == nil && n > max {
			max = n
		}
	}
	return max, nil
}

// mockShopRepository implements secondary.ShopRepository for testing.
type mockShopRepository struct {
	shops map[string]*secondary.ShopRecord
}

func newMockShopRepository() *mockShopRepository {
	return &mockShopRepository{shops: map[string]*secondary.ShopRecord{
		"DOWNTOWN": {ID: 1, Code: "DOWNTOWN", Name: "One Shott Downtown", Active: true},
		"MALL":     {ID: 2, Code: "MALL", Name: "One Shott Mall", Active: true},
	}}
}

func (m *mockShopRepository) Create(ctx context.Context, shop *secondary.ShopRecord) error {
	if _, ok := m.shops[shop.Code]; ok {
		return fmt.Errorf("duplicate shop code %s", shop.Code)
	}
	shop.ID = int64(len(m.shops) + 1)
	m.shops[shop.Code] = shop
	return nil
}

func (m *mockShopRepository) GetByCode(ctx context.Context, code string) (*secondary.ShopRecord, error) {
	if s, ok := m.shops[code]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("shop %s not found", code)
}

func (m *mockShopRepository) ListActive(ctx context.Context) ([]*secondary.ShopRecord, error) {
	var result []*secondary.ShopRecord
	for _, code := range []string{"DOWNTOWN", "MALL"} {
		if s, ok := m.shops[code]; ok && s.Active {
			result = append(result, s)
		}
	}
	for code, s := range m.shops {
		if code != "DOWNTOWN" && code != "MALL" && s.Active {
			result = append(result, s)
		}
	}
	return result, nil
}

func (m *mockShopRepository) SetActive(ctx context.Context, code string, active bool) error {
	s, ok := m.shops[code]
	if !ok {
		return fmt.Errorf("shop %s not found", code)
	}
	s.Active = active
	return nil
}

// sentMessage records one transport delivery.
type sentMessage struct {
	Role   models.Role
	ChatID int64
	Prompt models.Prompt
}

// mockTransport implements secondary.Transport for testing.
type mockTransport struct {
	mu   sync.Mutex
	sent []sentMessage
	fail bool
}

func (m *mockTransport) Send(ctx context.Context, role models.Role, chatID int64, prompt models.Prompt) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return fmt.Errorf("transport down")
	}
	m.sent = append(m.sent, sentMessage{Role: role, ChatID: chatID, Prompt: prompt})
	return nil
}

func (m *mockTransport) messages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMessage(nil), m.sent...)
}

func (m *mockTransport) messagesFor(role models.Role, chatID int64) []sentMessage {
	var out []sentMessage
	for _, msg := range m.messages() {
		if msg.Role == role && msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	return out
}

// mockLogWriter implements secondary.LogWriter for testing.
type mockLogWriter struct {
	creates     []string
	transitions []string
}

func (m *mockLogWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	m.creates = append(m.creates, entityType+":"+entityID)
	return nil
}

func (m *mockLogWriter) LogStatusChange(ctx context.Context, entityType, entityID, oldStatus, newStatus string) error {
	m.transitions = append(m.transitions, fmt.Sprintf("%s:%s %s->%s", entityType, entityID, oldStatus, newStatus))
	return nil
}

// fixedClock implements secondary.Clock with a settable instant.
type fixedClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFixedClock(now time.Time) *fixedClock {
	return &fixedClock{now: now}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
