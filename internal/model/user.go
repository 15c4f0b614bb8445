package model

import "time"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	Created      time.Time
	Updated      time.Time
}

// UserSnapshot is the identity carried inside token claims.
type UserSnapshot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UserCreateRequest struct {
	Username string `json:"username" binding:"required,max=50"`
	Email    string `json:"email" binding:"required,email,max=100"`
	Password string `json:"password" binding:"required,min=5,max=100"`
}

type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserResponse struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     UserRole  `json:"role"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
		Created:  u.Created,
		Updated:  u.Updated,
	}
}

func (u *User) Snapshot() UserSnapshot {
	return UserSnapshot{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
