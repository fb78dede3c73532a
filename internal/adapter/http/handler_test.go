package httpadapter

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	staticcatalog "tamaverse/internal/adapter/catalog/static"
	"tamaverse/internal/adapter/repo/memory"
	"tamaverse/internal/app/care"
	"tamaverse/internal/app/evolve"
	"tamaverse/internal/app/replay"
	"tamaverse/internal/app/save"
	"tamaverse/internal/app/shop"
	"tamaverse/internal/app/status"
	"tamaverse/internal/app/tick"
	"tamaverse/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type fakePauser struct{ paused bool }

func (p *fakePauser) Pause()       { p.paused = true }
func (p *fakePauser) Resume()      { p.paused = false }
func (p *fakePauser) Paused() bool { return p.paused }

func newHandler(store *memory.Store) Handler {
	tx := memory.NewTxManager(store)
	petRepo := memory.NewPetSaveRepo(store)
	eventRepo := memory.NewEventRepo(store)
	cart := memory.NewCartStore()
	provider := staticcatalog.Provider{}
	tun := pet.DefaultTuning()
	now := func() time.Time { return time.Unix(1000, 0) }
	pauser := &fakePauser{}

	return Handler{
		CreateUC: save.CreateUseCase{
			TxManager: tx, PetRepo: petRepo, EventRepo: eventRepo,
			Catalog: provider, Scheduler: pauser, Tuning: tun, Now: now,
			ShinyRoll: func() bool { return false },
		},
		DeleteUC: save.DeleteUseCase{
			TxManager: tx, PetRepo: petRepo, EventRepo: eventRepo,
			Cart: cart, Scheduler: pauser, Now: now,
		},
		CareUC: care.UseCase{
			TxManager: tx, PetRepo: petRepo, EventRepo: eventRepo,
			Catalog: provider, Tuning: tun, Now: now,
		},
		TickUC: tick.UseCase{
			TxManager: tx, PetRepo: petRepo, EventRepo: eventRepo,
			Tuning: tun, Now: now,
		},
		EvolveUC: evolve.UseCase{
			TxManager: tx, PetRepo: petRepo, EventRepo: eventRepo,
			Catalog: provider, Tuning: tun, Now: now,
		},
		ShopUC: shop.UseCase{
			TxManager: tx, PetRepo: petRepo, EventRepo: eventRepo,
			Catalog: provider, Cart: cart, Now: now,
		},
		StatusUC: status.UseCase{
			PetRepo: petRepo, Catalog: provider, Cart: cart,
			Scheduler: pauser, Tuning: tun,
		},
		ReplayUC:  replay.UseCase{Events: eventRepo},
		Scheduler: pauser,
	}
}

func TestCreate_ReturnsCreatedState(t *testing.T) {
	h := newHandler(memory.NewStore())
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))

	h.create(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusCreated {
		t.Fatalf("status mismatch: got=%d body=%s", got, ctx.Response.Body())
	}
	var body save.CreateResponse
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.State.Name != "Blu" || body.State.SpeciesID != "mudkip" {
		t.Fatalf("unexpected state: %+v", body.State)
	}
}

func TestCreate_MalformedJSON(t *testing.T) {
	h := newHandler(memory.NewStore())
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"name":`))

	h.create(context.Background(), ctx)

	if got := ctx.Response.StatusCode(); got != consts.StatusBadRequest {
		t.Fatalf("status mismatch: got=%d", got)
	}
}

func TestCreate_SecondSaveConflicts(t *testing.T) {
	h := newHandler(memory.NewStore())
	first := &app.RequestContext{}
	first.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), first)

	second := &app.RequestContext{}
	second.Request.SetBody([]byte(`{"name":"Red","species_id":"torchic"}`))
	h.create(context.Background(), second)

	assertErrorResponse(t, second, consts.StatusConflict, "save_already_exists")
}

func TestStatus_NoSaveIs404(t *testing.T) {
	h := newHandler(memory.NewStore())
	ctx := &app.RequestContext{}

	h.status(context.Background(), ctx)

	assertErrorResponse(t, ctx, consts.StatusNotFound, "not_found")
}

func TestFeedAndTickFlow(t *testing.T) {
	store := memory.NewStore()
	h := newHandler(store)

	createCtx := &app.RequestContext{}
	createCtx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), createCtx)

	feedCtx := &app.RequestContext{}
	feedCtx.Request.SetBody([]byte(`{"food_id":"berry"}`))
	h.feed(context.Background(), feedCtx)
	if got := feedCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("feed status mismatch: got=%d body=%s", got, feedCtx.Response.Body())
	}

	tickCtx := &app.RequestContext{}
	h.tick(context.Background(), tickCtx)
	if got := tickCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("tick status mismatch: got=%d body=%s", got, tickCtx.Response.Body())
	}
	var tickBody tick.Response
	if err := json.Unmarshal(tickCtx.Response.Body(), &tickBody); err != nil {
		t.Fatalf("unmarshal tick response: %v", err)
	}
	if tickBody.After.Satiation != tickBody.Before.Satiation-2 {
		t.Fatalf("unexpected tick effect: %+v", tickBody)
	}
}

func TestFeed_OutOfStockConflicts(t *testing.T) {
	store := memory.NewStore()
	h := newHandler(store)

	createCtx := &app.RequestContext{}
	createCtx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), createCtx)

	// The starter inventory holds one of each; the second feed runs dry.
	for i := 0; i < 2; i++ {
		feedCtx := &app.RequestContext{}
		feedCtx.Request.SetBody([]byte(`{"food_id":"berry"}`))
		h.feed(context.Background(), feedCtx)
		if i == 1 {
			assertErrorResponse(t, feedCtx, consts.StatusConflict, "no_stock")
		}
	}
}

func TestShopFlow_CheckoutConfirm(t *testing.T) {
	store := memory.NewStore()
	h := newHandler(store)

	createCtx := &app.RequestContext{}
	createCtx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), createCtx)

	addCtx := &app.RequestContext{}
	addCtx.Request.SetBody([]byte(`{"food_id":"candy"}`))
	h.cartAdd(context.Background(), addCtx)
	if got := addCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("cartAdd status mismatch: got=%d body=%s", got, addCtx.Response.Body())
	}

	checkoutCtx := &app.RequestContext{}
	h.checkout(context.Background(), checkoutCtx)
	if got := checkoutCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("checkout status mismatch: got=%d body=%s", got, checkoutCtx.Response.Body())
	}
	var quote shop.Quote
	if err := json.Unmarshal(checkoutCtx.Response.Body(), &quote); err != nil {
		t.Fatalf("unmarshal quote: %v", err)
	}
	if quote.Token == "" || quote.Total != 29 {
		t.Fatalf("unexpected quote: %+v", quote)
	}

	confirmCtx := &app.RequestContext{}
	confirmCtx.Request.SetBody([]byte(`{"token":"` + quote.Token + `"}`))
	h.checkoutConfirm(context.Background(), confirmCtx)
	if got := confirmCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("confirm status mismatch: got=%d body=%s", got, confirmCtx.Response.Body())
	}
	var confirmed shop.ConfirmResponse
	if err := json.Unmarshal(confirmCtx.Response.Body(), &confirmed); err != nil {
		t.Fatalf("unmarshal confirm: %v", err)
	}
	if confirmed.Spent != 29 || confirmed.State.Inventory["candy"] != 2 {
		t.Fatalf("unexpected confirm outcome: %+v", confirmed)
	}
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	store := memory.NewStore()
	h := newHandler(store)

	createCtx := &app.RequestContext{}
	createCtx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), createCtx)

	checkoutCtx := &app.RequestContext{}
	h.checkout(context.Background(), checkoutCtx)
	assertErrorResponse(t, checkoutCtx, consts.StatusBadRequest, "empty_cart")
}

func TestPauseResume_TogglesScheduler(t *testing.T) {
	h := newHandler(memory.NewStore())

	pauseCtx := &app.RequestContext{}
	h.pause(context.Background(), pauseCtx)
	if !h.Scheduler.Paused() {
		t.Fatalf("expected scheduler paused")
	}

	resumeCtx := &app.RequestContext{}
	h.resume(context.Background(), resumeCtx)
	if h.Scheduler.Paused() {
		t.Fatalf("expected scheduler resumed")
	}
}

func TestDelete_ThenStatus404(t *testing.T) {
	store := memory.NewStore()
	h := newHandler(store)

	createCtx := &app.RequestContext{}
	createCtx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), createCtx)

	deleteCtx := &app.RequestContext{}
	h.deleteSave(context.Background(), deleteCtx)
	if got := deleteCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("delete status mismatch: got=%d body=%s", got, deleteCtx.Response.Body())
	}

	statusCtx := &app.RequestContext{}
	h.status(context.Background(), statusCtx)
	assertErrorResponse(t, statusCtx, consts.StatusNotFound, "not_found")
}

func TestEvents_ReturnsHistory(t *testing.T) {
	store := memory.NewStore()
	h := newHandler(store)

	createCtx := &app.RequestContext{}
	createCtx.Request.SetBody([]byte(`{"name":"Blu","species_id":"mudkip"}`))
	h.create(context.Background(), createCtx)

	eventsCtx := &app.RequestContext{}
	h.events(context.Background(), eventsCtx)
	if got := eventsCtx.Response.StatusCode(); got != consts.StatusOK {
		t.Fatalf("events status mismatch: got=%d body=%s", got, eventsCtx.Response.Body())
	}
	var body replay.Response
	if err := json.Unmarshal(eventsCtx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal events: %v", err)
	}
	if len(body.Events) != 1 || body.Events[0].Type != pet.EventPetCreated {
		t.Fatalf("unexpected events: %+v", body.Events)
	}
}
