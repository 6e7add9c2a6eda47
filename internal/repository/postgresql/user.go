package postgresql

import (
	"context"

	"github.com/patpaw111/web-absn/internal/domain/user"
	"github.com/patpaw111/web-absn/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, full_name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, full_name, role, password_hash, created_at, updated_at
	`

	var created user.User
	err := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.FullName,
		newUser.Role,
		newUser.PasswordHash,
	).Scan(
		&created.ID,
		&created.Email,
		&created.FullName,
		&created.Role,
		&created.PasswordHash,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&found.ID,
		&found.Email,
		&found.FullName,
		&found.Role,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var found user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&found.ID,
		&found.Email,
		&found.FullName,
		&found.Role,
		&found.PasswordHash,
		&found.CreatedAt,
		&found.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}

	return found, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context, role *user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, role, password_hash, created_at, updated_at
		FROM users
		WHERE ($1::text IS NULL OR role = $1)
		ORDER BY full_name, id
	`

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.FullName,
			&u.Role,
			&u.PasswordHash,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, full_name = $2, role = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $5
	`

	_, err := q.Exec(ctx, query, u.Email, u.FullName, u.Role, u.PasswordHash, u.ID)
	return err
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
