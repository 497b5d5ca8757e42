package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/user"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, active, created_at, updated_at
		FROM users
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Active,
			&u.CreatedAt, &u.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.Role, &found.Active,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, email, password_hash, role, active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID, &found.Name, &found.Email, &found.PasswordHash, &found.Role, &found.Active,
		&found.CreatedAt, &found.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return found, nil
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}

	query := `
		INSERT INTO users (id, name, email, password_hash, role, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.ID,
		newUser.Name,
		newUser.Email,
		newUser.PasswordHash,
		newUser.Role,
		newUser.Active,
	).Scan(&newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// ExistsByEmail implements user.UserRepository.
func (r *userRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	args := []interface{}{email}
	if excludeID != nil {
		query = `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND id <> $2)`
		args = append(args, *excludeID)
	}

	var exists bool
	err := q.QueryRow(ctx, query, args...).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// Update implements user.UserRepository. Only the provided fields are touched.
func (r *userRepositoryImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Active != nil {
		setClauses = append(setClauses, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}
	setClauses = append(setClauses, "updated_at = NOW()")

	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, password_hash, role, active, created_at, updated_at
	`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	var updated user.User
	err := q.QueryRow(ctx, query, args...).Scan(
		&updated.ID, &updated.Name, &updated.Email, &updated.PasswordHash, &updated.Role, &updated.Active,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}

// UpdatePassword implements user.UserRepository.
func (r *userRepositoryImpl) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET password_hash = $1, updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, passwordHash, userID)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}
