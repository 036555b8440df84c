package adaptor

import (
	"errors"
	"net/http"

	"bike-rental/pkg/apperr"
	"bike-rental/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps the service error taxonomy onto HTTP statuses.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		log.Warn(operation+" failed - validation",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, appErr.Message, nil)

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, appErr.Message)

	case apperr.KindConflict:
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, appErr.Message)

	case apperr.KindGateway:
		log.Warn(operation+" failed - payment gateway",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponsePaymentRequired(w, appErr.Message)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
