package tracking

import (
	"errors"
	"fmt"
)

// Erros específicos para a análise de SERPs
var (
	// Snapshot ou parâmetro malformado
	ErrInvalidInput = errors.New("invalid snapshot input")
	// Menos de dois snapshots onde uma comparação foi pedida
	ErrInsufficientData = errors.New("insufficient snapshots for comparison")
	// Snapshot "from" posterior ao snapshot "to"
	ErrInconsistentOrdering = errors.New("from snapshot is after to snapshot")
)

// AnalysisError é um erro com contexto adicional da análise
type AnalysisError struct {
	Err     error  // Erro base
	Keyword string // Palavra-chave envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Details: details,
	}
}

// NewAnalysisErrorWithKeyword cria um novo AnalysisError com a palavra-chave
func NewAnalysisErrorWithKeyword(err error, keyword string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Keyword: keyword,
		Details: details,
	}
}
