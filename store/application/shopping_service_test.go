package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"thrift-store/store/domain"
	"thrift-store/store/infra"
)

func newShelves(t *testing.T) (*infra.Inventory, domain.Section) {
	t.Helper()
	cat := domain.MustCatalog(domain.DefaultSections...)
	books, err := cat.Parse("books")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return infra.NewInventory(cat, 10), books
}

func waitForInterest(t *testing.T, inv *infra.Inventory, s domain.Section, want int64) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for inv.Interest(s) != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected interest %d, got %d", want, inv.Interest(s))
		}
		time.Sleep(time.Millisecond)
	}
}

func TestShoppingService_Buy_NoShelvesIsNoop(t *testing.T) {
	svc := ShoppingService{}
	if _, err := svc.Buy(context.Background(), 0); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestShoppingService_Buy_TakesAvailableItemImmediately(t *testing.T) {
	inv, books := newShelves(t)
	inv.StockUpTo(books, 2)
	svc := ShoppingService{Shelves: inv}

	if _, err := svc.Buy(context.Background(), books); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := inv.Count(books); got != 1 {
		t.Fatalf("expected 1 left, got %d", got)
	}
	if got := inv.Interest(books); got != 0 {
		t.Fatalf("expected interest released, got %d", got)
	}
}

func TestShoppingService_Buy_HoldsInterestWhileWaiting(t *testing.T) {
	inv, books := newShelves(t)
	svc := ShoppingService{Shelves: inv}

	type result struct {
		waited time.Duration
		err    error
	}
	done := make(chan result, 1)
	go func() {
		w, err := svc.Buy(context.Background(), books)
		done <- result{w, err}
	}()

	waitForInterest(t, inv, books, 1)
	time.Sleep(10 * time.Millisecond)
	inv.StockUpTo(books, 1)

	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("unexpected error: %v", r.err)
		}
		if r.waited < 5*time.Millisecond {
			t.Fatalf("expected waited to cover the time parked, got %s", r.waited)
		}
	case <-time.After(time.Second):
		t.Fatalf("Buy did not return after stock")
	}
	if got := inv.Interest(books); got != 0 {
		t.Fatalf("expected interest released after purchase, got %d", got)
	}
}

func TestShoppingService_Buy_PatienceExceeded(t *testing.T) {
	inv, books := newShelves(t)
	svc := ShoppingService{Shelves: inv, Patience: 15 * time.Millisecond}

	_, err := svc.Buy(context.Background(), books)
	if !errors.Is(err, domain.ErrPatienceExceeded) {
		t.Fatalf("expected ErrPatienceExceeded, got %v", err)
	}
	if got := inv.Interest(books); got != 0 {
		t.Fatalf("expected interest released after giving up, got %d", got)
	}
}

func TestShoppingService_Buy_CancelWhileParked(t *testing.T) {
	inv, books := newShelves(t)
	svc := ShoppingService{Shelves: inv}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.Buy(ctx, books)
		done <- err
	}()

	waitForInterest(t, inv, books, 1)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Buy did not return after cancel")
	}
	if got := inv.Interest(books); got != 0 {
		t.Fatalf("expected interest released after cancel, got %d", got)
	}
	if got := inv.Count(books); got != 0 {
		t.Fatalf("expected nothing taken, got count %d", got)
	}
}
