package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pontofacil/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
)

type timeEntryRepositoryImpl struct {
	db *database.DB
}

func NewTimeEntryRepository(db *database.DB) timeentry.TimeEntryRepository {
	return &timeEntryRepositoryImpl{db: db}
}

// Create implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) Create(ctx context.Context, entry timeentry.TimeEntry) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO time_entries (id, user_id, entrada, saida, observacao)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Entrada,
		entry.Saida,
		entry.Observacao,
	).Scan(&entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		// The partial unique index catches clock-ins that race past the
		// service-level open-entry check
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return timeentry.TimeEntry{}, timeentry.ErrOpenEntryExists
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return entry, nil
}

// GetByIDAndUser implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetByIDAndUser(ctx context.Context, id string, userID string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, entrada, saida, observacao, created_at, updated_at
		FROM time_entries
		WHERE id = $1 AND user_id = $2
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, id, userID).Scan(
		&entry.ID, &entry.UserID, &entry.Entrada, &entry.Saida, &entry.Observacao,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to get time entry: %w", err)
	}

	return entry, nil
}

// GetOpenEntry implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) GetOpenEntry(ctx context.Context, userID string) (*timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, entrada, saida, observacao, created_at, updated_at
		FROM time_entries
		WHERE user_id = $1
		  AND saida IS NULL
		ORDER BY entrada DESC
		LIMIT 1
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, userID).Scan(
		&entry.ID, &entry.UserID, &entry.Entrada, &entry.Saida, &entry.Observacao,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // No open entry
		}
		return nil, fmt.Errorf("failed to get open entry: %w", err)
	}

	return &entry, nil
}

// Close implements timeentry.TimeEntryRepository. The observacao is merged:
// a nil argument keeps whatever was written at clock-in.
func (r *timeEntryRepositoryImpl) Close(ctx context.Context, id string, saida time.Time, observacao *string) (timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET saida = $1, observacao = COALESCE($2, observacao), updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, entrada, saida, observacao, created_at, updated_at
	`

	var entry timeentry.TimeEntry
	err := q.QueryRow(ctx, query, saida, observacao, id).Scan(
		&entry.ID, &entry.UserID, &entry.Entrada, &entry.Saida, &entry.Observacao,
		&entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return timeentry.TimeEntry{}, timeentry.ErrEntryNotFound
		}
		return timeentry.TimeEntry{}, fmt.Errorf("failed to close time entry: %w", err)
	}

	return entry, nil
}

// ListByUser implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListByUser(ctx context.Context, userID string, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "t.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND t.entrada::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND t.entrada::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.entrada, t.saida, t.observacao, t.created_at, t.updated_at
		FROM time_entries t
		WHERE %s
		ORDER BY t.entrada DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Entrada, &entry.Saida, &entry.Observacao,
			&entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, nil
}

// ListAll implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) ListAll(ctx context.Context, filter timeentry.TimeEntryFilter) ([]timeentry.TimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.UserID != nil && *filter.UserID != "" {
		baseWhere += fmt.Sprintf(" AND t.user_id = $%d", argIdx)
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND t.entrada::date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND t.entrada::date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.user_id, t.entrada, t.saida, t.observacao, t.created_at, t.updated_at,
			   u.name AS user_name
		FROM time_entries t
		LEFT JOIN users u ON u.id = t.user_id
		WHERE %s
		ORDER BY t.entrada DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query time entries: %w", err)
	}
	defer rows.Close()

	var entries []timeentry.TimeEntry
	for rows.Next() {
		var entry timeentry.TimeEntry
		err := rows.Scan(
			&entry.ID, &entry.UserID, &entry.Entrada, &entry.Saida, &entry.Observacao,
			&entry.CreatedAt, &entry.UpdatedAt,
			&entry.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time entries: %w", err)
	}

	return entries, nil
}

// OverwriteTimes implements timeentry.TimeEntryRepository.
func (r *timeEntryRepositoryImpl) OverwriteTimes(ctx context.Context, id string, entrada time.Time, saida time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_entries
		SET entrada = $1, saida = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, entrada, saida, id)
	if err != nil {
		return fmt.Errorf("failed to overwrite time entry times: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeentry.ErrEntryNotFound
	}

	return nil
}
