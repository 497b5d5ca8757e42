package editrequest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/editrequest"
	"github.com/pontofacil/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/validator"
	"github.com/pontofacil/ponto-backend-go/internal/repository/postgresql"
)

type EditRequestServiceImpl struct {
	db *database.DB
	editrequest.EditRequestRepository
	timeentry.TimeEntryRepository
}

func NewEditRequestService(db *database.DB, editRequestRepository editrequest.EditRequestRepository, timeEntryRepository timeentry.TimeEntryRepository) editrequest.EditRequestService {
	return &EditRequestServiceImpl{
		db:                    db,
		EditRequestRepository: editRequestRepository,
		TimeEntryRepository:   timeEntryRepository,
	}
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func toResponse(req editrequest.EditRequest) editrequest.EditRequestResponse {
	return editrequest.EditRequestResponse{
		ID:               req.ID,
		PontoID:          req.PontoID,
		UserID:           req.UserID,
		UserName:         req.UserName,
		NovaEntrada:      req.NovaEntrada.UTC().Format(time.RFC3339),
		NovaSaida:        req.NovaSaida.UTC().Format(time.RFC3339),
		ObservacaoMotivo: req.ObservacaoMotivo,
		Status:           req.Status(),
		Aprovado:         req.Aprovado,
		AprovadoPor:      req.AprovadoPor,
		DataAprovacao:    timePtrToString(req.DataAprovacao),
		CreatedAt:        req.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        req.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// RequestEdit implements editrequest.EditRequestService.
func (s *EditRequestServiceImpl) RequestEdit(ctx context.Context, req editrequest.CreateEditRequestRequest) (editrequest.EditRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	entry, err := s.TimeEntryRepository.GetByIDAndUser(ctx, req.PontoID, req.UserID)
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	// Open entries are corrected by clocking out, not through the workflow
	if entry.IsOpen() {
		return editrequest.EditRequestResponse{}, editrequest.ErrEntryStillOpen
	}

	novaEntrada, _ := validator.IsValidDateTime(req.NovaEntrada)
	novaSaida, _ := validator.IsValidDateTime(req.NovaSaida)

	request := editrequest.EditRequest{
		PontoID:          entry.ID,
		UserID:           req.UserID,
		NovaEntrada:      novaEntrada.UTC(),
		NovaSaida:        novaSaida.UTC(),
		ObservacaoMotivo: req.ObservacaoMotivo,
	}

	created, err := s.EditRequestRepository.Create(ctx, request)
	if err != nil {
		return editrequest.EditRequestResponse{}, fmt.Errorf("failed to create edit request: %w", err)
	}

	return toResponse(created), nil
}

// ListEditRequests implements editrequest.EditRequestService.
func (s *EditRequestServiceImpl) ListEditRequests(ctx context.Context, filter editrequest.EditRequestFilter) ([]editrequest.EditRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.EditRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list edit requests: %w", err)
	}

	responses := make([]editrequest.EditRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// GetMyEditRequests implements editrequest.EditRequestService.
func (s *EditRequestServiceImpl) GetMyEditRequests(ctx context.Context, userID string, filter editrequest.EditRequestFilter) ([]editrequest.EditRequestResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.EditRequestRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list edit requests: %w", err)
	}

	responses := make([]editrequest.EditRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}

	return responses, nil
}

// DecideEditRequest implements editrequest.EditRequestService. The decision
// and the conditional time-entry overwrite happen in one transaction so a
// crash cannot leave an approved request whose entry was never corrected.
func (s *EditRequestServiceImpl) DecideEditRequest(ctx context.Context, req editrequest.DecideEditRequestRequest) (editrequest.EditRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	request, err := s.EditRequestRepository.GetByID(ctx, req.RequestID)
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	if request.IsDecided() {
		return editrequest.EditRequestResponse{}, editrequest.ErrRequestAlreadyProcessed
	}

	decidedAt := time.Now().UTC()
	approved := *req.Approved

	var stored editrequest.EditRequest
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		updated, decided, err := s.EditRequestRepository.Decide(txCtx, request.ID, approved, req.AdminID, decidedAt)
		if err != nil {
			return err
		}
		if !decided {
			// Another admin got there first
			return editrequest.ErrRequestAlreadyProcessed
		}
		stored = updated

		if approved {
			if err := s.TimeEntryRepository.OverwriteTimes(txCtx, request.PontoID, request.NovaEntrada, request.NovaSaida); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return editrequest.EditRequestResponse{}, err
	}

	stored.UserName = request.UserName

	return toResponse(stored), nil
}
