package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findUserByEmail = `-- name: FindUserByEmail :one
SELECT id, email, password, first_name, last_name, created_at
FROM users
WHERE email = $1
`

func (q *Queries) FindUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRow(ctx, findUserByEmail, email)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.Password, &i.FirstName, &i.LastName, &i.CreatedAt)
	return i, err
}

const findUserById = `-- name: FindUserById :one
SELECT id, email, password, first_name, last_name, created_at
FROM users
WHERE id = $1
`

func (q *Queries) FindUserById(ctx context.Context, id uuid.UUID) (User, error) {
	row := q.db.QueryRow(ctx, findUserById, id)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.Password, &i.FirstName, &i.LastName, &i.CreatedAt)
	return i, err
}

const insertUser = `-- name: InsertUser :one
INSERT INTO users (id, email, password, first_name, last_name)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, email, password, first_name, last_name, created_at
`

type InsertUserParams struct {
	ID        uuid.UUID
	Email     string
	Password  string
	FirstName pgtype.Text
	LastName  pgtype.Text
}

func (q *Queries) InsertUser(ctx context.Context, arg InsertUserParams) (User, error) {
	row := q.db.QueryRow(ctx, insertUser,
		arg.ID,
		arg.Email,
		arg.Password,
		arg.FirstName,
		arg.LastName,
	)
	var i User
	err := row.Scan(&i.ID, &i.Email, &i.Password, &i.FirstName, &i.LastName, &i.CreatedAt)
	return i, err
}
