package achieving

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de conquistas
var (
	// Erros de validação
	ErrMissingSalesFile        = errors.New("at least one sales file is required")
	ErrInvalidFactor           = errors.New("factor must be 1 or -1")
	ErrInvalidSpreadsheet      = errors.New("invalid spreadsheet")
	ErrSalespersonNameRequired = errors.New("salesperson name is required")
	ErrSalespersonNotFound     = errors.New("salesperson not found")
	ErrInvalidTarget           = errors.New("targets must not be negative")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrClearPeriod       = errors.New("error clearing period achievements")
	ErrMergeAchievement  = errors.New("error merging achievement")
	ErrSaveBatch         = errors.New("error saving upload batch")

	// Erros de geração de identificadores
	ErrGenerateID = errors.New("error generating ID")
)

// AchievementError é um erro com contexto adicional para conquistas
type AchievementError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AchievementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AchievementError) Unwrap() error {
	return e.Err
}

// NewAchievementError cria um novo AchievementError
func NewAchievementError(err error, code string, details string) *AchievementError {
	return &AchievementError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
