package sqlite

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/example/kwonka/internal/ports/secondary"
)

func TestOrderRepositoryCreateAndGet(t *testing.T) {
	testDB := setupTestDB(t)
	seedShop(t, testDB, "DOWNTOWN", "One Shott Downtown")
	repo := NewOrderRepository(testDB)
	ctx := context.Background()

	created := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	order := testOrder("1", created)
	order.MilkType = "Oat"
	order.TotalPrice = 1340

	if err := repo.Create(ctx, order); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if order.ID == 0 {
		t.Error("expected Create to backfill ID")
	}

	got, err := repo.GetByNumber(ctx, "1")
	if err != nil {
		t.Fatalf("GetByNumber failed: %v", err)
	}
	if got.Drink != "Americano" || got.MilkType != "Oat" || got.SyrupType != "" {
		t.Errorf("unexpected order fields: %+v", got)
	}
	if got.TotalPrice != 1340 {
		t.Errorf("expected total 1340, got %d", got.TotalPrice)
	}
	if got.Status != "PENDING" {
		t.Errorf("expected PENDING, got %s", got.Status)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("expected created_at %v, got %v", created, got.CreatedAt)
	}
}

func TestOrderRepositoryGetNotFound(t *testing.T) {
	testDB := setupTestDB(t)
	repo := NewOrderRepository(testDB)

	_, err := repo.GetByNumber(context.Background(), "404")
	if err == nil {
		t.Fatal("expected error for missing order")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got: %v", err)
	}
}

func TestOrderRepositoryList(t *testing.T) {
	testDB := setupTestDB(t)
	seedShop(t, testDB, "DOWNTOWN", "One Shott Downtown")
	seedShop(t, testDB, "MALL", "One Shott Mall")
	repo := NewOrderRepository(testDB)
	ctx := context.Background()

	base := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	orders := []*secondary.OrderRecord{
		testOrder("1", base),
		testOrder("2", base.Add(5*time.Minute)),
		testOrder("3", base.Add(10*time.Minute)),
	}
	orders[1].ShopCode = "MALL"
	orders[2].Status = "READY"
	orders[2].CustomerID = 7
	for _, o := range orders {
		if err := repo.Create(ctx, o); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	t.Run("by status", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.OrderFilters{Statuses: []string{"PENDING"}})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 pending orders, got %d", len(got))
		}
		if got[0].OrderNumber != "2" {
			t.Errorf("expected newest first, got %s", got[0].OrderNumber)
		}
	})

	t.Run("by shop and status", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.OrderFilters{Statuses: []string{"PENDING"}, ShopCode: "DOWNTOWN"})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 1 || got[0].OrderNumber != "1" {
			t.Fatalf("expected order 1 only, got %d orders", len(got))
		}
	})

	t.Run("by customer", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.OrderFilters{CustomerID: 7})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 1 || got[0].OrderNumber != "3" {
			t.Fatalf("expected order 3 only, got %d orders", len(got))
		}
	})

	t.Run("multiple statuses", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.OrderFilters{Statuses: []string{"PENDING", "READY"}})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("expected 3 orders, got %d", len(got))
		}
	})

	t.Run("limit", func(t *testing.T) {
		got, err := repo.List(ctx, secondary.OrderFilters{Limit: 2})
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
	})
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	testDB := setupTestDB(t)
	seedShop(t, testDB, "DOWNTOWN", "One Shott Downtown")
	repo := NewOrderRepository(testDB)
	ctx := context.Background()

	created := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	if err := repo.Create(ctx, testOrder("1", created)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated := created.Add(3 * time.Minute)
	if err := repo.UpdateStatus(ctx, "1", "IN_PREPARATION", updated); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	got, err := repo.GetByNumber(ctx, "1")
	if err != nil {
		t.Fatalf("GetByNumber failed: %v", err)
	}
	if got.Status != "IN_PREPARATION" {
		t.Errorf("expected IN_PREPARATION, got %s", got.Status)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Errorf("expected updated_at %v, got %v", updated, got.UpdatedAt)
	}

	if err := repo.UpdateStatus(ctx, "404", "READY", updated); err == nil {
		t.Error("expected error for missing order")
	}
}

func TestOrderRepositoryMaxOrderNumber(t *testing.T) {
	testDB := setupTestDB(t)
	seedShop(t, testDB, "DOWNTOWN", "One Shott Downtown")
	repo := NewOrderRepository(testDB)
	ctx := context.Background()

	max, err := repo.MaxOrderNumber(ctx)
	if err != nil {
		t.Fatalf("MaxOrderNumber failed: %v", err)
	}
	if max != 0 {
		t.Errorf("expected 0 for empty table, got %d", max)
	}

	// "9" vs "10" must compare numerically, not lexically.
	now := time.Now().UTC()
	for _, n := range []string{"9", "10"} {
		if err := repo.Create(ctx, testOrder(n, now)); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	max, err = repo.MaxOrderNumber(ctx)
	if err != nil {
		t.Fatalf("MaxOrderNumber failed: %v", err)
	}
	if max != 10 {
		t.Errorf("expected 10, got %d", max)
	}
}
