package signature

import "signhub/internal/domain/apperr"

var (
	ErrFieldsRequired = apperr.Validation("fields_required", "Nome de usuário e mensagem são obrigatórios.")
	ErrNotFound       = apperr.NotFound("signature_not_found", "ID da assinatura não encontrado.")
)
