package httpadapter

import (
	"encoding/json"
	"errors"
	"testing"

	"tamaverse/internal/app/ports"
	"tamaverse/internal/app/save"
	"tamaverse/internal/app/shop"
	"tamaverse/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func assertErrorResponse(t *testing.T, ctx *app.RequestContext, status int, code string) {
	t.Helper()
	if got := ctx.Response.StatusCode(); got != status {
		t.Fatalf("status mismatch: got=%d want=%d", got, status)
	}
	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got := body["error"]["code"]; got != code {
		t.Fatalf("error code mismatch: got=%q want=%q", got, code)
	}
}

func TestWriteError_SaveExists(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, save.ErrSaveExists)
	assertErrorResponse(t, ctx, consts.StatusConflict, "save_already_exists")
}

func TestWriteError_NoStock(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, pet.ErrNoStock)
	assertErrorResponse(t, ctx, consts.StatusConflict, "no_stock")
}

func TestWriteError_UnknownFood(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, pet.ErrUnknownFood)
	assertErrorResponse(t, ctx, consts.StatusNotFound, "unknown_food")
}

func TestWriteError_EvolutionNotReady(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, pet.ErrEvolutionNotReady)
	assertErrorResponse(t, ctx, consts.StatusConflict, "evolution_not_ready")
}

func TestWriteError_EmptyCart(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, shop.ErrEmptyCart)
	assertErrorResponse(t, ctx, consts.StatusBadRequest, "empty_cart")
}

func TestWriteError_InsufficientFunds(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, shop.ErrInsufficientFunds)
	assertErrorResponse(t, ctx, consts.StatusConflict, "insufficient_funds")
}

func TestWriteError_NotFound(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrNotFound)
	assertErrorResponse(t, ctx, consts.StatusNotFound, "not_found")
}

func TestWriteError_Conflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, ports.ErrConflict)
	assertErrorResponse(t, ctx, consts.StatusConflict, "conflict")
}

func TestWriteError_UnknownErrorIsOpaque500(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("pg: connection refused"))
	assertErrorResponse(t, ctx, consts.StatusInternalServerError, "internal_error")

	var body map[string]map[string]string
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body["error"]["message"] != "internal error" {
		t.Fatalf("internal detail leaked: %q", body["error"]["message"])
	}
}
