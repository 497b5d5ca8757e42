package editrequest

import (
	"time"

	"github.com/pontofacil/ponto-backend-go/internal/pkg/validator"
)

type CreateEditRequestRequest struct {
	PontoID          string `json:"ponto_id"`
	UserID           string `json:"-"`
	NovaEntrada      string `json:"nova_entrada"` // RFC3339
	NovaSaida        string `json:"nova_saida"`   // RFC3339
	ObservacaoMotivo string `json:"observacao_motivo"`
}

func (r *CreateEditRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PontoID) {
		errs = append(errs, validator.ValidationError{
			Field:   "ponto_id",
			Message: "ponto_id is required",
		})
	}

	var novaEntrada, novaSaida time.Time
	var entradaOK, saidaOK bool

	if validator.IsEmpty(r.NovaEntrada) {
		errs = append(errs, validator.ValidationError{
			Field:   "nova_entrada",
			Message: "nova_entrada is required",
		})
	} else if novaEntrada, entradaOK = validator.IsValidDateTime(r.NovaEntrada); !entradaOK {
		errs = append(errs, validator.ValidationError{
			Field:   "nova_entrada",
			Message: "nova_entrada must be an ISO8601 timestamp",
		})
	}

	if validator.IsEmpty(r.NovaSaida) {
		errs = append(errs, validator.ValidationError{
			Field:   "nova_saida",
			Message: "nova_saida is required",
		})
	} else if novaSaida, saidaOK = validator.IsValidDateTime(r.NovaSaida); !saidaOK {
		errs = append(errs, validator.ValidationError{
			Field:   "nova_saida",
			Message: "nova_saida must be an ISO8601 timestamp",
		})
	}

	if entradaOK && saidaOK && !novaSaida.After(novaEntrada) {
		errs = append(errs, validator.ValidationError{
			Field:   "nova_saida",
			Message: "nova_saida must be after nova_entrada",
		})
	}

	if validator.IsEmpty(r.ObservacaoMotivo) {
		errs = append(errs, validator.ValidationError{
			Field:   "observacao_motivo",
			Message: "observacao_motivo is required",
		})
	} else if len(r.ObservacaoMotivo) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "observacao_motivo",
			Message: "observacao_motivo must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EditRequestFilter struct {
	// Status filters by the aprovado tri-state: pending, approved, rejected
	Status *string `json:"status,omitempty"`
}

func (f *EditRequestFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" {
		if !validator.IsInSlice(*f.Status, []string{StatusPending, StatusApproved, StatusRejected}) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideEditRequestRequest struct {
	RequestID string `json:"-"`
	AdminID   string `json:"-"`
	Approved  *bool  `json:"approved"`
}

func (r *DecideEditRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if r.Approved == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "approved",
			Message: "approved is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EditRequestResponse struct {
	ID               string  `json:"id"`
	PontoID          string  `json:"ponto_id"`
	UserID           string  `json:"user_id"`
	UserName         *string `json:"user_name,omitempty"`
	NovaEntrada      string  `json:"nova_entrada"`
	NovaSaida        string  `json:"nova_saida"`
	ObservacaoMotivo string  `json:"observacao_motivo"`
	Status           string  `json:"status"`
	Aprovado         *bool   `json:"aprovado"`
	AprovadoPor      *string `json:"aprovado_por,omitempty"`
	DataAprovacao    *string `json:"data_aprovacao,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
