package http

import (
	"errors"
	"net/http"

	"github.com/MikeRez0/lunchorder/internal/core/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrStorageNotReady: http.StatusServiceUnavailable,
	domain.ErrSystemNotReady:  http.StatusServiceUnavailable,
	domain.ErrCatalogMissing:  http.StatusServiceUnavailable,
	domain.ErrUnknownOption:   http.StatusNotFound,

	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrTokenCreation:              http.StatusInternalServerError,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrEmptyOrder:           http.StatusUnprocessableEntity,
	domain.ErrConfirmationRequired: http.StatusConflict,
	domain.ErrMessageComposition:   http.StatusInternalServerError,
	domain.ErrInvalidPhone:         http.StatusUnprocessableEntity,
	domain.ErrLinkOpen:             http.StatusBadGateway,
}

type errorResponse struct {
	Error    string   `json:"error"`
	Messages []string `json:"messages,omitempty"`
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) statusCode(err error) int {
	for target, code := range errorStatusMap {
		if errors.Is(err, target) {
			return code
		}
	}
	h.logger.Error("unexpected error", zap.Error(err))
	return http.StatusInternalServerError
}

// handleValidationError sends an error response for some specific request validation error
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	h.logger.Debug("bad request", zap.Error(err))
	ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.ErrBadRequest.Error()})
}

// handleAbort sends an error response and aborts the request
func (h *Handler) handleAbort(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(h.statusCode(err), errorResponse{Error: err.Error()})
}

func (h *Handler) handleError(ctx *gin.Context, err error, messages ...string) {
	ctx.JSON(h.statusCode(err), errorResponse{Error: err.Error(), Messages: messages})
}

// handleSuccessWithStatus sends a success response with the specified status code and optional data
func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}
