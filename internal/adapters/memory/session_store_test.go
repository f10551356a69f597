package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/example/kwonka/internal/models"
)

func TestSessionStoreCreatesFreshSession(t *testing.T) {
	store := NewSessionStore()

	err := store.With(models.RoleCustomer, 1042, func(sess *models.Session) error {
		if sess.State != "start" {
			t.Errorf("expected start state, got %s", sess.State)
		}
		sess.State = "intro"
		sess.Selections["drink"] = "Latte"
		return nil
	})
	if err != nil {
		t.Fatalf("With failed: %v", err)
	}

	got, ok := store.Peek(models.RoleCustomer, 1042)
	if !ok {
		t.Fatal("expected session to exist")
	}
	if got.State != "intro" || got.Selections["drink"] != "Latte" {
		t.Errorf("mutations not retained: %+v", got)
	}
}

func TestSessionStoreRollsBackOnError(t *testing.T) {
	store := NewSessionStore()

	_ = store.With(models.RoleCustomer, 1, func(sess *models.Session) error {
		sess.State = "intro"
		return nil
	})

	err := store.With(models.RoleCustomer, 1, func(sess *models.Session) error {
		sess.State = "confirm"
		sess.Selections["drink"] = "Raf"
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error to propagate")
	}

	got, _ := store.Peek(models.RoleCustomer, 1)
	if got.State != "intro" {
		t.Errorf("expected rollback to intro, got %s", got.State)
	}
	if _, ok := got.Selections["drink"]; ok {
		t.Error("expected selection rollback")
	}
}

func TestSessionStoreKeysAreIndependent(t *testing.T) {
	store := NewSessionStore()

	_ = store.With(models.RoleCustomer, 1, func(sess *models.Session) error {
		sess.State = "intro"
		return nil
	})
	_ = store.With(models.RoleBarista, 1, func(sess *models.Session) error {
		sess.State = "viewing_pending"
		return nil
	})

	cust, _ := store.Peek(models.RoleCustomer, 1)
	bar, _ := store.Peek(models.RoleBarista, 1)
	if cust.State != "intro" || bar.State != "viewing_pending" {
		t.Errorf("role keys leaked into each other: %s / %s", cust.State, bar.State)
	}
}

func TestSessionStorePeekReturnsCopy(t *testing.T) {
	store := NewSessionStore()

	_ = store.With(models.RoleCustomer, 1, func(sess *models.Session) error {
		sess.Selections["drink"] = "Latte"
		return nil
	})

	got, _ := store.Peek(models.RoleCustomer, 1)
	got.Selections["drink"] = "Raf"

	again, _ := store.Peek(models.RoleCustomer, 1)
	if again.Selections["drink"] != "Latte" {
		t.Error("Peek leaked a mutable reference")
	}
}

func TestBaristaForShop(t *testing.T) {
	store := NewSessionStore()

	if _, ok := store.BaristaForShop("DOWNTOWN"); ok {
		t.Error("expected no barista before binding")
	}

	_ = store.With(models.RoleBarista, 55, func(sess *models.Session) error {
		sess.ShopCode = "DOWNTOWN"
		return nil
	})
	_ = store.With(models.RoleCustomer, 1, func(sess *models.Session) error {
		sess.ShopCode = "MALL" // customers never match
		return nil
	})

	chatID, ok := store.BaristaForShop("DOWNTOWN")
	if !ok || chatID != 55 {
		t.Errorf("expected barista 55, got %d (ok=%v)", chatID, ok)
	}

	if _, ok := store.BaristaForShop("MALL"); ok {
		t.Error("customer session must not satisfy a barista lookup")
	}
}

func TestSessionStoreConcurrentSameKey(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.With(models.RoleCustomer, 9, func(sess *models.Session) error {
				sess.Selections["n"] += "x"
				return nil
			})
		}()
	}
	wg.Wait()

	got, _ := store.Peek(models.RoleCustomer, 9)
	if len(got.Selections["n"]) != 50 {
		t.Errorf("expected 50 serialized appends, got %d", len(got.Selections["n"]))
	}
}
