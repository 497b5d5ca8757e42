package postgresql

import (
	"context"
	"fmt"

	"github.com/pontofacil/ponto-backend-go/internal/domain/report"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// UserSummaries implements report.ReportRepository. Open entries carry no
// duration yet, so only closed ones count.
func (r *reportRepositoryImpl) UserSummaries(ctx context.Context, filter report.SummaryFilter) ([]report.UserSummary, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "t.saida IS NOT NULL"
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
		SELECT t.user_id,
			   u.name AS user_name,
			   COUNT(*) AS entry_count,
			   COALESCE(SUM(FLOOR(EXTRACT(EPOCH FROM (t.saida - t.entrada)) / 60)), 0)::bigint AS worked_minutes
		FROM time_entries t
		JOIN users u ON u.id = t.user_id
		WHERE %s
		GROUP BY t.user_id, u.name
		ORDER BY u.name ASC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user summaries: %w", err)
	}
	defer rows.Close()

	var summaries []report.UserSummary
	for rows.Next() {
		var s report.UserSummary
		if err := rows.Scan(&s.UserID, &s.UserName, &s.EntryCount, &s.WorkedMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan user summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user summaries: %w", err)
	}

	return summaries, nil
}
