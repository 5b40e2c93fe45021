package charting

import "fmt"

// MissingFieldError indica um registro de spend sem um campo obrigatório.
// A mensagem é exibida literalmente na saída do renderizador, então o
// formato faz parte do contrato
type MissingFieldError struct {
	Key string
}

// Error implementa a interface error
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field '%s'", e.Key)
}
