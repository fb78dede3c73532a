package shop

import (
	"context"
	"errors"
	"strings"
	"time"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/domain/pet"

	"github.com/google/uuid"
)

var (
	ErrInvalidRequest    = errors.New("invalid shop request")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrUnknownPurchase   = errors.New("no pending purchase for token")
)

type UseCase struct {
	TxManager ports.TxManager
	PetRepo   ports.PetSaveRepository
	EventRepo ports.EventRepository
	Catalog   ports.CatalogProvider
	Cart      ports.CartStore
	Now       func() time.Time
}

func (u UseCase) CatalogView(ctx context.Context) (CatalogView, error) {
	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return CatalogView{}, err
	}
	return CatalogView{Items: foods.Items}, nil
}

func (u UseCase) AddToCart(ctx context.Context, req CartRequest) (CartView, error) {
	id := strings.TrimSpace(req.FoodID)
	if id == "" {
		return CartView{}, ErrInvalidRequest
	}
	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return CartView{}, err
	}
	if _, ok := foods.Lookup(id); !ok {
		return CartView{}, pet.ErrUnknownFood
	}
	u.Cart.Add(id)
	return u.cartView(ctx)
}

func (u UseCase) RemoveFromCart(ctx context.Context, req CartRequest) (CartView, error) {
	id := strings.TrimSpace(req.FoodID)
	if id == "" {
		return CartView{}, ErrInvalidRequest
	}
	u.Cart.Remove(id)
	return u.cartView(ctx)
}

func (u UseCase) ClearCart(ctx context.Context) (CartView, error) {
	u.Cart.Clear()
	u.Cart.ClearPending()
	return u.cartView(ctx)
}

func (u UseCase) View(ctx context.Context) (CartView, error) {
	return u.cartView(ctx)
}

// Checkout quotes the current cart: it validates entries and funds and
// registers a pending purchase, but mutates nothing. The commit happens in
// Confirm once the user has said yes. Cart entries the catalog no longer
// prices are dropped from the quote so Confirm never grants them for free.
func (u UseCase) Checkout(ctx context.Context) (Quote, error) {
	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return Quote{}, err
	}

	items := make(map[string]int)
	total := 0
	for id, qty := range u.Cart.Snapshot() {
		item, ok := foods.Lookup(id)
		if !ok || qty <= 0 {
			continue
		}
		items[id] = qty
		total += item.Price * qty
	}
	if len(items) == 0 {
		return Quote{}, ErrEmptyCart
	}

	state, err := u.PetRepo.GetBySlot(ctx, pet.DefaultSlot)
	if err != nil {
		return Quote{}, err
	}
	if state.Money < total {
		return Quote{}, ErrInsufficientFunds
	}

	nowFn := u.now()
	pending := ports.PendingPurchase{
		Token:     uuid.NewString(),
		Items:     items,
		Total:     total,
		CreatedAt: nowFn(),
	}
	u.Cart.SetPending(pending)
	return Quote{Token: pending.Token, Items: items, Total: total}, nil
}

// Confirm commits a quoted purchase atomically: money down by the total,
// each inventory id up by its cart quantity, cart cleared entirely. Any
// failure leaves all three untouched.
func (u UseCase) Confirm(ctx context.Context, req ConfirmRequest) (ConfirmResponse, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return ConfirmResponse{}, ErrInvalidRequest
	}
	pending, ok := u.Cart.Pending(token)
	if !ok {
		return ConfirmResponse{}, ErrUnknownPurchase
	}

	nowFn := u.now()
	var out ConfirmResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		state, err := u.PetRepo.GetBySlot(txCtx, pet.DefaultSlot)
		if err != nil {
			return err
		}
		// Funds may have drifted since the quote (a tick paid a reward, or
		// didn't): re-check before committing.
		if state.Money < pending.Total {
			return ErrInsufficientFunds
		}

		expected := state.Version
		state.Money -= pending.Total
		for id, qty := range pending.Items {
			state.AddItem(id, qty)
		}
		state.Version++
		state.UpdatedAt = nowFn()

		if err := u.PetRepo.SaveWithVersion(txCtx, state, expected); err != nil {
			return err
		}
		evt := pet.DomainEvent{
			Type:       pet.EventPurchaseCompleted,
			OccurredAt: nowFn(),
			Payload: map[string]any{
				"total": pending.Total,
				"items": itemsPayload(pending.Items),
				"money": state.Money,
			},
		}
		if err := u.EventRepo.Append(txCtx, state.Slot, []pet.DomainEvent{evt}); err != nil {
			return err
		}
		out = ConfirmResponse{State: state, Spent: pending.Total}
		return nil
	})
	if err != nil {
		return ConfirmResponse{}, err
	}

	u.Cart.Clear()
	u.Cart.ClearPending()
	return out, nil
}

// Cancel dismisses a quoted purchase with no effect on the cart.
func (u UseCase) Cancel(req ConfirmRequest) error {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return ErrInvalidRequest
	}
	if _, ok := u.Cart.Pending(token); !ok {
		return ErrUnknownPurchase
	}
	u.Cart.ClearPending()
	return nil
}

func (u UseCase) cartView(ctx context.Context) (CartView, error) {
	items := nonZero(u.Cart.Snapshot())
	total, err := u.total(ctx, items)
	if err != nil {
		return CartView{}, err
	}
	return CartView{Items: items, Total: total}, nil
}

func (u UseCase) total(ctx context.Context, items map[string]int) (int, error) {
	foods, err := u.Catalog.Foods(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for id, qty := range items {
		if item, ok := foods.Lookup(id); ok {
			total += item.Price * qty
		}
	}
	return total, nil
}

func (u UseCase) now() func() time.Time {
	if u.Now != nil {
		return u.Now
	}
	return time.Now
}

func nonZero(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for id, qty := range in {
		if qty > 0 {
			out[id] = qty
		}
	}
	return out
}

func itemsPayload(items map[string]int) map[string]any {
	out := make(map[string]any, len(items))
	for id, qty := range items {
		out[id] = qty
	}
	return out
}
