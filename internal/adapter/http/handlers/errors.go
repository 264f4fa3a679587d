package handlers

import (
	"errors"
	"net/http"

	"requisiciones_api/internal/domain/documents"
	"requisiciones_api/internal/domain/entities"
	"requisiciones_api/internal/domain/submission"
	"requisiciones_api/internal/usecase"
	"requisiciones_api/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid draft payload", http.StatusBadRequest)
)

func mapDraftError(err error) *pkg.AppError {
	var verr *submission.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("VALIDATION_ERROR", "The draft is not ready to be submitted", verr, http.StatusUnprocessableEntity)
	case errors.Is(err, documents.ErrMissingGeneralData):
		return pkg.NewDomainError("VALIDATION_ERROR", "General data is required to generate documents", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidDraftID), errors.Is(err, usecase.ErrInvalidDraftInput), errors.Is(err, documents.ErrUnknownDocumentKind):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotEditable):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_EDITABLE", "Draft was already submitted and can no longer be edited", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftAlreadySubmitted):
		return pkg.NewDomainErrorSimple("DRAFT_ALREADY_SUBMITTED", "Draft was already submitted", http.StatusConflict)
	case errors.Is(err, entities.ErrProviderStatusRegression):
		return pkg.NewDomainError("PROVIDER_STATUS_REGRESSION", "Invited provider status cannot move backwards", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOperationInFlight):
		return pkg.NewDomainErrorSimple("OPERATION_IN_FLIGHT", "Another export or submission is running for this draft", http.StatusConflict)
	case errors.Is(err, usecase.ErrExternalCall):
		return pkg.NewDomainError("EXTERNAL_CALL_FAILED", "An external service did not respond correctly, try again", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
