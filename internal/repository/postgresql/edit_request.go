package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/editrequest"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
)

type editRequestRepositoryImpl struct {
	db *database.DB
}

func NewEditRequestRepository(db *database.DB) editrequest.EditRequestRepository {
	return &editRequestRepositoryImpl{db: db}
}

// Create implements editrequest.EditRequestRepository.
func (r *editRequestRepositoryImpl) Create(ctx context.Context, request editrequest.EditRequest) (editrequest.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO edit_requests (id, ponto_id, user_id, nova_entrada, nova_saida, observacao_motivo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.PontoID,
		request.UserID,
		request.NovaEntrada,
		request.NovaSaida,
		request.ObservacaoMotivo,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return editrequest.EditRequest{}, fmt.Errorf("failed to create edit request: %w", err)
	}

	return request, nil
}

// GetByID implements editrequest.EditRequestRepository.
func (r *editRequestRepositoryImpl) GetByID(ctx context.Context, id string) (editrequest.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.ponto_id, e.user_id, e.nova_entrada, e.nova_saida, e.observacao_motivo,
			   e.aprovado, e.aprovado_por, e.data_aprovacao, e.created_at, e.updated_at,
			   u.name AS user_name
		FROM edit_requests e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE e.id = $1
	`

	var req editrequest.EditRequest
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.PontoID, &req.UserID, &req.NovaEntrada, &req.NovaSaida, &req.ObservacaoMotivo,
		&req.Aprovado, &req.AprovadoPor, &req.DataAprovacao, &req.CreatedAt, &req.UpdatedAt,
		&req.UserName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return editrequest.EditRequest{}, editrequest.ErrRequestNotFound
		}
		return editrequest.EditRequest{}, fmt.Errorf("failed to get edit request by ID: %w", err)
	}

	return req, nil
}

// List implements editrequest.EditRequestRepository.
func (r *editRequestRepositoryImpl) List(ctx context.Context, filter editrequest.EditRequestFilter) ([]editrequest.EditRequest, error) {
	return r.list(ctx, nil, filter)
}

// ListByUser implements editrequest.EditRequestRepository.
func (r *editRequestRepositoryImpl) ListByUser(ctx context.Context, userID string, filter editrequest.EditRequestFilter) ([]editrequest.EditRequest, error) {
	return r.list(ctx, &userID, filter)
}

func (r *editRequestRepositoryImpl) list(ctx context.Context, userID *string, filter editrequest.EditRequestFilter) ([]editrequest.EditRequest, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if userID != nil {
		baseWhere += fmt.Sprintf(" AND e.user_id = $%d", argIdx)
		args = append(args, *userID)
		argIdx++
	}

	// The aprovado tri-state encodes the status
	if filter.Status != nil {
		switch *filter.Status {
		case editrequest.StatusPending:
			baseWhere += " AND e.aprovado IS NULL"
		case editrequest.StatusApproved:
			baseWhere += " AND e.aprovado = TRUE"
		case editrequest.StatusRejected:
			baseWhere += " AND e.aprovado = FALSE"
		}
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.ponto_id, e.user_id, e.nova_entrada, e.nova_saida, e.observacao_motivo,
			   e.aprovado, e.aprovado_por, e.data_aprovacao, e.created_at, e.updated_at,
			   u.name AS user_name
		FROM edit_requests e
		LEFT JOIN users u ON u.id = e.user_id
		WHERE %s
		ORDER BY e.created_at DESC
	`, baseWhere)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query edit requests: %w", err)
	}
	defer rows.Close()

	var requests []editrequest.EditRequest
	for rows.Next() {
		var req editrequest.EditRequest
		err := rows.Scan(
			&req.ID, &req.PontoID, &req.UserID, &req.NovaEntrada, &req.NovaSaida, &req.ObservacaoMotivo,
			&req.Aprovado, &req.AprovadoPor, &req.DataAprovacao, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edit request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate edit requests: %w", err)
	}

	return requests, nil
}

// Decide implements editrequest.EditRequestRepository. The aprovado IS NULL
// guard makes the decision single-shot even under concurrent admins.
func (r *editRequestRepositoryImpl) Decide(ctx context.Context, id string, approved bool, adminID string, decidedAt time.Time) (editrequest.EditRequest, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE edit_requests
		SET aprovado = $1, aprovado_por = $2, data_aprovacao = $3, updated_at = NOW()
		WHERE id = $4 AND aprovado IS NULL
		RETURNING id, ponto_id, user_id, nova_entrada, nova_saida, observacao_motivo,
				  aprovado, aprovado_por, data_aprovacao, created_at, updated_at
	`

	var req editrequest.EditRequest
	err := q.QueryRow(ctx, query, approved, adminID, decidedAt, id).Scan(
		&req.ID, &req.PontoID, &req.UserID, &req.NovaEntrada, &req.NovaSaida, &req.ObservacaoMotivo,
		&req.Aprovado, &req.AprovadoPor, &req.DataAprovacao, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return editrequest.EditRequest{}, false, nil
		}
		return editrequest.EditRequest{}, false, fmt.Errorf("failed to decide edit request: %w", err)
	}

	return req, true, nil
}
