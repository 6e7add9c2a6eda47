package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

var RoleValues = []string{
	string(RoleAdmin),
	string(RoleEmployee),
}

// User is a directory entry. Employees are users with RoleEmployee; the
// identity provider owns credentials, this table only mirrors the directory.
type User struct {
	ID           string
	Email        string
	FullName     string
	Role         Role
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
