package user

import "signhub/internal/domain/apperr"

var (
	ErrUsernameRequired = apperr.Validation("username_required", "Nome de usuário é obrigatório.")
	ErrUsernameTooLong  = apperr.Validation("username_too_long", "Nome de usuário muito longo.")
	ErrUsernameTaken    = apperr.Conflict("username_taken", "Nome de usuário já existe.")
	ErrNotFound         = apperr.NotFound("user_not_found", "Usuário não encontrado.")
)
