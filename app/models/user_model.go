package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Login        string    `json:"login" db:"login"`
	PasswordHash string    `json:"-" db:"senha"`
	Email        string    `json:"email" db:"email"`
	Nome         string    `json:"nome" db:"nome"`
	CPF          string    `json:"cpf" db:"cpf"`
	Telefone     string    `json:"telefone" db:"telefone"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
