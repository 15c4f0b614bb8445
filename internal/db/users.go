package db

import (
	"context"

	"github.com/docsim/backend/internal/model"
)

func (db *Postgres) CreateUser(ctx context.Context, username, email, passwordHash string) (*model.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, created, updated)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, username, email, password_hash, role, created, updated
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username, email, passwordHash).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Created,
		&user.Updated,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created, updated
		FROM users
		WHERE email = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Created,
		&user.Updated,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created, updated
		FROM users
		WHERE username = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Created,
		&user.Updated,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetAllUsers(ctx context.Context) ([]model.User, error) {
	query := `
		SELECT id, username, email, password_hash, role, created, updated
		FROM users
		ORDER BY id
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var user model.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Created,
			&user.Updated,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if users == nil {
		users = []model.User{}
	}
	return users, rows.Err()
}
