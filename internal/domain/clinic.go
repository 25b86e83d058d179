package domain

import "time"

// ClinicStatus representa a situação cadastral de uma clínica
type ClinicStatus string

const (
	ClinicStatusActive   ClinicStatus = "ACTIVE"
	ClinicStatusDisabled ClinicStatus = "DISABLED"
)

// Clinic representa uma clínica operada no Control Tower. PlanLabel é o
// rótulo de plano bruto vindo do cadastro/billing; ele NUNCA é usado
// diretamente em decisão de acesso, sempre passa antes pela normalização
// de plano.
type Clinic struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CNPJ      *string      `json:"cnpj"`
	PlanLabel string       `json:"plan_label"`
	Status    ClinicStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// UpdateClinicRequest é o payload de atualização parcial de uma clínica
type UpdateClinicRequest struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	PlanLabel *string `json:"plan_label"`
	Active    *bool   `json:"active"`
}
