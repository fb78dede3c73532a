package httpadapter

import (
	"context"
	"encoding/json"
	"strconv"

	"tamaverse/internal/app/care"
	"tamaverse/internal/app/evolve"
	"tamaverse/internal/app/ports"
	"tamaverse/internal/app/replay"
	"tamaverse/internal/app/save"
	"tamaverse/internal/app/shop"
	"tamaverse/internal/app/status"
	"tamaverse/internal/app/tick"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	CreateUC  save.CreateUseCase
	DeleteUC  save.DeleteUseCase
	CareUC    care.UseCase
	TickUC    tick.UseCase
	EvolveUC  evolve.UseCase
	ShopUC    shop.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	Scheduler ports.Pauser
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	petGroup := s.Group("/api/pet")
	petGroup.POST("", h.create)
	petGroup.GET("", h.status)
	petGroup.DELETE("", h.deleteSave)
	petGroup.POST("/feed", h.feed)
	petGroup.POST("/play", h.play)
	petGroup.POST("/tick", h.tick)
	petGroup.POST("/evolve", h.evolve)
	petGroup.POST("/pause", h.pause)
	petGroup.POST("/resume", h.resume)

	shopGroup := s.Group("/api/shop")
	shopGroup.GET("/catalog", h.catalog)
	shopGroup.GET("/cart", h.cart)
	shopGroup.POST("/cart/add", h.cartAdd)
	shopGroup.POST("/cart/remove", h.cartRemove)
	shopGroup.POST("/cart/clear", h.cartClear)
	shopGroup.POST("/checkout", h.checkout)
	shopGroup.POST("/checkout/confirm", h.checkoutConfirm)
	shopGroup.POST("/checkout/cancel", h.checkoutCancel)

	s.GET("/api/events", h.events)
	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) create(c context.Context, ctx *app.RequestContext) {
	var body save.CreateRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CreateUC.Execute(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) deleteSave(c context.Context, ctx *app.RequestContext) {
	if err := h.DeleteUC.Execute(c); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"deleted": true})
}

func (h Handler) feed(c context.Context, ctx *app.RequestContext) {
	var body care.FeedRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CareUC.Feed(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) play(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CareUC.Play(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

// tick is the explicit "let time pass" action. It shares the usecase with
// the scheduler, so the effect is identical to an automatic tick.
func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	resp, err := h.TickUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) evolve(c context.Context, ctx *app.RequestContext) {
	resp, err := h.EvolveUC.Execute(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) pause(_ context.Context, ctx *app.RequestContext) {
	h.Scheduler.Pause()
	ctx.JSON(consts.StatusOK, map[string]bool{"paused": true})
}

func (h Handler) resume(_ context.Context, ctx *app.RequestContext) {
	h.Scheduler.Resume()
	ctx.JSON(consts.StatusOK, map[string]bool{"paused": false})
}

func (h Handler) catalog(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ShopUC.CatalogView(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cart(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ShopUC.View(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cartAdd(c context.Context, ctx *app.RequestContext) {
	var body shop.CartRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.AddToCart(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cartRemove(c context.Context, ctx *app.RequestContext) {
	var body shop.CartRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.RemoveFromCart(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cartClear(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ShopUC.ClearCart(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) checkout(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ShopUC.Checkout(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) checkoutConfirm(c context.Context, ctx *app.RequestContext) {
	var body shop.ConfirmRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.Confirm(c, body)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) checkoutCancel(_ context.Context, ctx *app.RequestContext) {
	var body shop.ConfirmRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	if err := h.ShopUC.Cancel(body); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"cancelled": true})
}

func (h Handler) events(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}
