package user

import (
	"context"

	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateUserRequest struct {
	ID       string  `json:"-"`
	Email    *string `json:"email"`
	FullName *string `json:"full_name"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`

	// Set only when the account was just provisioned; the generated
	// password is shown once to the admin and never stored in plain text.
	InitialPassword *string `json:"initial_password,omitempty"`
}

type UserService interface {
	CreateEmployee(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetUser(ctx context.Context, id string) (UserResponse, error)
	ListEmployees(ctx context.Context) ([]UserResponse, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	DeleteUser(ctx context.Context, id string) error
}
