package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/patpaw111/web-absn/internal/domain/user"
	"github.com/patpaw111/web-absn/internal/pkg/database"
	"github.com/patpaw111/web-absn/internal/repository/postgresql"
)

type UserServiceImpl struct {
	db       *database.DB
	userRepo user.UserRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{db: db, userRepo: userRepo}
}

// CreateEmployee provisions an employee account with a random initial
// password. The plain password is returned once in the response and only the
// bcrypt hash is stored.
func (s *UserServiceImpl) CreateEmployee(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	initialPassword := uuid.NewString()[:12]
	hash, err := bcrypt.GenerateFromPassword([]byte(initialPassword), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		_, err := s.userRepo.GetByEmail(txCtx, req.Email)
		if err == nil {
			return user.ErrEmailExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		created, err = s.userRepo.Create(txCtx, user.User{
			Email:        req.Email,
			FullName:     req.FullName,
			Role:         user.RoleEmployee,
			PasswordHash: &hashStr,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	resp := toResponse(created)
	resp.InitialPassword = &initialPassword
	return resp, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	return toResponse(found), nil
}

func (s *UserServiceImpl) ListEmployees(ctx context.Context) ([]user.UserResponse, error) {
	role := user.RoleEmployee
	employees, err := s.userRepo.List(ctx, &role)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	existing, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, user.ErrUserNotFound
		}
		return user.UserResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Email != nil && *req.Email != existing.Email {
		_, err := s.userRepo.GetByEmail(ctx, *req.Email)
		if err == nil {
			return user.UserResponse{}, user.ErrEmailExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		existing.Email = *req.Email
	}
	if req.FullName != nil {
		existing.FullName = *req.FullName
	}

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update user: %w", err)
	}
	return toResponse(existing), nil
}

func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	_, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}
