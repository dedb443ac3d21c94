package dataforseodomain

import "fmt"

// StatusError representa um status_code diferente de 20000 devolvido pela API
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("dataforseo status %d: %s", e.Code, e.Message)
}

// IsRateLimited indica se a conta estourou o limite de requisições por minuto
func (e *StatusError) IsRateLimited() bool {
	return e.Code == 40202
}
