package http

import (
	"github.com/MikeRez0/lunchorder/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OperatorHandler struct {
	Handler
	service      port.Service
	tokenService port.TokenService
}

func NewOperatorHandler(service port.Service, tokenService port.TokenService, logger *zap.Logger) (*OperatorHandler, error) {
	return &OperatorHandler{
		Handler:      *NewHandler(logger),
		service:      service,
		tokenService: tokenService,
	}, nil
}

type loginRequest struct {
	Password string `json:"password" binding:"required"`
}

func (oh *OperatorHandler) Login(ctx *gin.Context) {
	req := loginRequest{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.tokenService.CheckPassword(req.Password); err != nil {
		oh.logger.Warn("operator login rejected", zap.String("ip", ctx.ClientIP()))
		oh.handleError(ctx, err)
		return
	}

	token, err := oh.tokenService.CreateToken(port.RoleOperator)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, struct {
		Token string `json:"token"`
	}{Token: token})
}

type phoneBody struct {
	Number string `json:"number"`
}

func (oh *OperatorHandler) Phone(ctx *gin.Context) {
	oh.handleSuccess(ctx, phoneBody{Number: oh.service.Configuration()})
}

// SavePhone stores the number as given; it is validated when an order is sent.
func (oh *OperatorHandler) SavePhone(ctx *gin.Context) {
	req := phoneBody{}
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.SaveConfiguration(ctx, req.Number); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, req)
}
