package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio compartilhados entre as camadas
var (
	ErrNotFound        = errors.New("document not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidPayload  = errors.New("invalid payload")
)

// ValidationError é um erro de ingestão com o detalhe do campo rejeitado
type ValidationError struct {
	Err     error  // Erro base
	Field   string // Campo inválido (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ValidationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError cria um novo ValidationError
func NewValidationError(field string, details string) *ValidationError {
	return &ValidationError{
		Err:     ErrInvalidPayload,
		Field:   field,
		Details: details,
	}
}
