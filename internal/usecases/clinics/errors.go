package clinics

import (
	"errors"
	"fmt"
)

var (
	ErrFetchClinics   = errors.New("erro ao buscar clínicas")
	ErrClinicNotFound = errors.New("clínica não encontrada")
	ErrUpdateClinic   = errors.New("erro ao atualizar clínica")
)

// ClinicError agrega o erro base com o código de API correspondente
type ClinicError struct {
	Err     error
	Code    string
	Details string
}

func (e *ClinicError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ClinicError) Unwrap() error {
	return e.Err
}

func NewClinicError(baseErr error, code, details string) *ClinicError {
	return &ClinicError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
