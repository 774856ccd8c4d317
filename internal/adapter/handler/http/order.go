package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	presenter *WebPresenter
}

func NewOrderHandler(presenter *WebPresenter, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler:   *NewHandler(logger),
		presenter: presenter,
	}, nil
}

func (oh *OrderHandler) Menu(ctx *gin.Context) {
	catalog := oh.presenter.Catalog()
	if catalog == nil {
		oh.handleError(ctx, domain.ErrCatalogMissing)
		return
	}
	oh.handleSuccess(ctx, catalog)
}

func (oh *OrderHandler) State(ctx *gin.Context) {
	state, ok := oh.presenter.State()
	if !ok {
		var messages []string
		if state.Alert != "" {
			messages = append(messages, state.Alert)
		}
		oh.handleError(ctx, domain.ErrSystemNotReady, messages...)
		return
	}
	oh.handleSuccess(ctx, state)
}

type adjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (oh *OrderHandler) AdjustBase(ctx *gin.Context) {
	req := adjustRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	actions, ok := oh.presenter.Actions()
	if !ok {
		oh.handleError(ctx, domain.ErrSystemNotReady)
		return
	}
	if err := actions.AdjustBase(ctx.Param("id"), req.Delta); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.State(ctx)
}

func (oh *OrderHandler) ToggleExtra(ctx *gin.Context) {
	actions, ok := oh.presenter.Actions()
	if !ok {
		oh.handleError(ctx, domain.ErrSystemNotReady)
		return
	}
	if err := actions.ToggleExtra(ctx.Param("id")); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.State(ctx)
}

func (oh *OrderHandler) Reset(ctx *gin.Context) {
	actions, ok := oh.presenter.Actions()
	if !ok {
		oh.handleError(ctx, domain.ErrSystemNotReady)
		return
	}
	if err := actions.Reset(); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.State(ctx)
}

type submitRequest struct {
	Confirm bool `json:"confirm"`
}

type submitResponse struct {
	Receipt  *domain.Receipt `json:"receipt"`
	Messages []string        `json:"messages,omitempty"`
}

type confirmationResponse struct {
	Error    string `json:"error"`
	Advisory string `json:"advisory"`
}

func (oh *OrderHandler) Submit(ctx *gin.Context) {
	req := submitRequest{}
	if ctx.Request.ContentLength != 0 {
		err := ctx.ShouldBindJSON(&req)
		if err != nil {
			oh.handleValidationError(ctx, err)
			return
		}
	}

	actions, ok := oh.presenter.Actions()
	if !ok {
		oh.handleError(ctx, domain.ErrSystemNotReady)
		return
	}

	ui := &requestInteraction{confirm: req.Confirm}
	receipt, err := actions.Submit(ctx, ui)
	if err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			ctx.JSON(http.StatusConflict, confirmationResponse{Error: err.Error(), Advisory: ui.prompt})
			return
		}
		oh.handleError(ctx, err, ui.messages...)
		return
	}

	oh.handleSuccess(ctx, submitResponse{Receipt: receipt, Messages: ui.messages})
}
