package timeentry

import (
	"context"
	"fmt"
	"time"

	"github.com/pontofacil/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
)

type TimeEntryServiceImpl struct {
	db *database.DB
	timeentry.TimeEntryRepository
}

func NewTimeEntryService(db *database.DB, timeEntryRepository timeentry.TimeEntryRepository) timeentry.TimeEntryService {
	return &TimeEntryServiceImpl{
		db:                  db,
		TimeEntryRepository: timeEntryRepository,
	}
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func toResponse(entry timeentry.TimeEntry) timeentry.TimeEntryResponse {
	return timeentry.TimeEntryResponse{
		ID:            entry.ID,
		UserID:        entry.UserID,
		UserName:      entry.UserName,
		Entrada:       entry.Entrada.UTC().Format(time.RFC3339),
		Saida:         timePtrToString(entry.Saida),
		Observacao:    entry.Observacao,
		WorkedMinutes: entry.WorkedMinutes(),
		CreatedAt:     entry.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     entry.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ClockIn implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockIn(ctx context.Context, req timeentry.ClockInRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	open, err := s.TimeEntryRepository.GetOpenEntry(ctx, req.UserID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to check for open entry: %w", err)
	}
	if open != nil {
		return timeentry.TimeEntryResponse{}, timeentry.ErrOpenEntryExists
	}

	entry := timeentry.TimeEntry{
		UserID:     req.UserID,
		Entrada:    time.Now().UTC(),
		Saida:      nil,
		Observacao: req.Observacao,
	}

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return toResponse(created), nil
}

// ClockOut implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ClockOut(ctx context.Context, req timeentry.ClockOutRequest) (timeentry.TimeEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	entry, err := s.TimeEntryRepository.GetByIDAndUser(ctx, req.EntryID, req.UserID)
	if err != nil {
		return timeentry.TimeEntryResponse{}, err
	}

	if !entry.IsOpen() {
		return timeentry.TimeEntryResponse{}, timeentry.ErrEntryAlreadyClosed
	}

	closed, err := s.TimeEntryRepository.Close(ctx, entry.ID, time.Now().UTC(), req.Observacao)
	if err != nil {
		return timeentry.TimeEntryResponse{}, fmt.Errorf("failed to close time entry: %w", err)
	}

	return toResponse(closed), nil
}

// GetMyTimeEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) GetMyTimeEntries(ctx context.Context, userID string, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.TimeEntryRepository.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}

	return responses, nil
}

// ListTimeEntries implements timeentry.TimeEntryService.
func (s *TimeEntryServiceImpl) ListTimeEntries(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.TimeEntryRepository.ListAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	responses := make([]timeentry.TimeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, toResponse(entry))
	}

	return responses, nil
}
