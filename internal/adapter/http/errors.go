package httpadapter

import (
	"errors"

	"tamaverse/internal/app/care"
	"tamaverse/internal/app/ports"
	"tamaverse/internal/app/save"
	"tamaverse/internal/app/shop"
	"tamaverse/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, save.ErrSaveExists):
		writeErrorBody(ctx, consts.StatusConflict, "save_already_exists", err.Error())
	case errors.Is(err, pet.ErrNoStock):
		writeErrorBody(ctx, consts.StatusConflict, "no_stock", err.Error())
	case errors.Is(err, pet.ErrUnknownFood):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_food", err.Error())
	case errors.Is(err, pet.ErrEvolutionNotReady):
		writeErrorBody(ctx, consts.StatusConflict, "evolution_not_ready", err.Error())
	case errors.Is(err, pet.ErrUnknownSpecies):
		writeErrorBody(ctx, consts.StatusConflict, "unknown_species", err.Error())
	case errors.Is(err, shop.ErrEmptyCart):
		writeErrorBody(ctx, consts.StatusBadRequest, "empty_cart", err.Error())
	case errors.Is(err, shop.ErrInsufficientFunds):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_funds", err.Error())
	case errors.Is(err, shop.ErrUnknownPurchase):
		writeErrorBody(ctx, consts.StatusNotFound, "unknown_purchase", err.Error())
	case errors.Is(err, save.ErrInvalidRequest),
		errors.Is(err, care.ErrInvalidRequest),
		errors.Is(err, shop.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
