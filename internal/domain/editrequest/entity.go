package editrequest

import (
	"time"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// EditRequest is a proposed correction to a closed time entry. Aprovado is
// tri-state: nil while pending, then true/false once decided. A decision is
// terminal.
type EditRequest struct {
	ID               string
	PontoID          string
	UserID           string
	NovaEntrada      time.Time
	NovaSaida        time.Time
	ObservacaoMotivo string
	Aprovado         *bool
	AprovadoPor      *string
	DataAprovacao    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// DTO
	UserName *string
}

// IsDecided reports whether the request has been approved or rejected.
func (e *EditRequest) IsDecided() bool {
	return e.Aprovado != nil
}

// Status maps the aprovado tri-state to pending/approved/rejected.
func (e *EditRequest) Status() string {
	switch {
	case e.Aprovado == nil:
		return StatusPending
	case *e.Aprovado:
		return StatusApproved
	default:
		return StatusRejected
	}
}
