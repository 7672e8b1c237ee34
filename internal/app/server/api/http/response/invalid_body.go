package response

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/danielgtaylor/huma/v2"
)

// InvalidJSONMessage answers request bodies that cannot be decoded into the operation input.
const InvalidJSONMessage = "Requisição JSON inválida."

const invalidBodyKey = "signhub.invalid_body"

// InvalidBody builds an operation's own error body for a rejected request body.
type InvalidBody func(message string) any

// WithInvalidBody marks op so that huma's body decode and schema errors are answered with
// 400 and the body returned by fn.
func WithInvalidBody(op huma.Operation, fn InvalidBody) huma.Operation {
	if op.Metadata == nil {
		op.Metadata = map[string]any{}
	}
	op.Metadata[invalidBodyKey] = fn
	return op
}

// BodyError is a huma.StatusError serialized as a plain operation body.
type BodyError struct {
	Status int
	Body   any
}

func (e *BodyError) Error() string {
	return InvalidJSONMessage
}

func (e *BodyError) GetStatus() int {
	return e.Status
}

func (e *BodyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Body)
}

var installOnce sync.Once

// InstallInvalidBody hooks huma's error constructor. Operations without WithInvalidBody
// keep huma's problem+json errors.
func InstallInvalidBody() {
	installOnce.Do(func() {
		next := huma.NewErrorWithContext
		huma.NewErrorWithContext = func(ctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			if fn := invalidBodyFor(ctx, status); fn != nil {
				return &BodyError{Status: http.StatusBadRequest, Body: fn(InvalidJSONMessage)}
			}
			return next(ctx, status, msg, errs...)
		}
	})
}

func invalidBodyFor(ctx huma.Context, status int) InvalidBody {
	if ctx == nil || (status != http.StatusBadRequest && status != http.StatusUnprocessableEntity) {
		return nil
	}
	op := ctx.Operation()
	if op == nil {
		return nil
	}
	fn, _ := op.Metadata[invalidBodyKey].(InvalidBody)
	return fn
}
