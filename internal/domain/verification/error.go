package verification

import "signhub/internal/domain/apperr"

var (
	ErrInsufficientInput = apperr.Validation(
		"insufficient_input",
		"Por favor, forneça o ID da assinatura ou o texto e a assinatura para verificação.",
	)
	ErrSignatureNotFound = apperr.NotFound("signature_not_found", "ID da assinatura não encontrado.")
)
