package verification

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"signhub/internal/app/server/api/http/response"
	"signhub/internal/domain/verification"
)

// TimeLayout is how verification_time is rendered.
const TimeLayout = "2006-01-02 15:04:05"

type Handler struct {
	service    verification.Servicer
	loc        *time.Location
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service verification.Servicer, loc *time.Location, log *slog.Logger, middleware huma.Middlewares) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		service:    service,
		loc:        loc,
		log:        log.With("component", "verification_handler"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.verifyOp(), h.verify)
}

func (h *Handler) verify(ctx context.Context, input *verifyInput) (*verifyOutput, error) {
	res, err := h.service.Verify(ctx, verification.Request{
		SignatureID:  input.Body.SignatureID,
		OriginalText: input.Body.OriginalText,
		SignatureB64: input.Body.Signature,
	})
	if err != nil {
		status := response.StatusCode(err)
		if status == http.StatusInternalServerError {
			h.log.Error("verification failed", "error", err)
		}
		return &verifyOutput{
			Status: status,
			Body:   VerifyResponse{IsValid: false, Message: response.Message(err)},
		}, nil
	}

	return &verifyOutput{
		Status: http.StatusOK,
		Body: VerifyResponse{
			IsValid:          res.IsValid,
			Message:          res.Message,
			Signer:           res.Signer,
			Algorithm:        res.Algorithm,
			VerificationTime: h.formatTime(res.Timestamp),
		},
	}, nil
}

func (h *Handler) formatTime(epoch int64) string {
	return time.Unix(epoch, 0).In(h.loc).Format(TimeLayout)
}
