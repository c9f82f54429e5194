package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/alt-7/task-management/internal/adapter/http/dto"
	"github.com/alt-7/task-management/internal/adapter/http/middleware"
	"github.com/alt-7/task-management/internal/core/domain"
	"github.com/alt-7/task-management/pkg/apierrors"
)

func respondSuccess(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.SuccessResponse{Message: message, Data: data})
}

// respondError is the single boundary that turns any failure from the
// pipeline into the error envelope. Validation failures surface their
// message and per-field details verbatim; anything unexpected is logged
// in full and reported to the client as a generic 500.
func respondError(c *gin.Context, err error) {
	lang := middleware.GetLang(c)

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(
			http.StatusBadRequest,
			apierrors.NewError(http.StatusBadRequest, validationErr.Message, validationErr.Details),
		)
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	default:
		zap.L().Error("unhandled error", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInternalError, lang),
		)
	}
}
