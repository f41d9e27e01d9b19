package queries

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lojapratica/pix-backend/app/models"
)

// ErrUserNotFound is returned when no row matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateLogin is returned when an insert violates the unique login
// constraint. Handlers map it to a conflict response, distinct from generic
// store failures.
var ErrDuplicateLogin = errors.New("login already registered")

type UserQueries struct {
	DB *sql.DB
}

func (q *UserQueries) CreateUser(u *models.User) error {
	query := `INSERT INTO usuario (id, login, senha, email, nome, cpf, telefone, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := q.DB.Exec(query,
		u.ID,
		u.Login,
		u.PasswordHash,
		u.Email,
		u.Nome,
		u.CPF,
		u.Telefone,
		u.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateLogin
		}
		return fmt.Errorf("unable to create user: %w", err)
	}

	return nil
}

func (q *UserQueries) GetUserByLogin(login string) (models.User, error) {
	user := models.User{}

	query := `SELECT id, login, senha, email, nome, cpf, telefone, created_at
			  FROM usuario WHERE login = $1`

	err := q.DB.QueryRow(query, login).Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&user.Email,
		&user.Nome,
		&user.CPF,
		&user.Telefone,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("unable to get user: %w", err)
	}

	return user, nil
}

func (q *UserQueries) GetUserByID(id uuid.UUID) (models.User, error) {
	user := models.User{}

	query := `SELECT id, login, senha, email, nome, cpf, telefone, created_at
			  FROM usuario WHERE id = $1`

	err := q.DB.QueryRow(query, id).Scan(
		&user.ID,
		&user.Login,
		&user.PasswordHash,
		&user.Email,
		&user.Nome,
		&user.CPF,
		&user.Telefone,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, fmt.Errorf("unable to get user: %w", err)
	}

	return user, nil
}
