package models

type CadastroRequest struct {
	Login    string `json:"login" validate:"required,lte=255"`
	Senha    string `json:"senha" validate:"required,lte=255"`
	Email    string `json:"email" validate:"required,email,lte=255"`
	Nome     string `json:"nome" validate:"required,lte=255"`
	CPF      string `json:"cpf" validate:"required,lte=20"`
	Telefone string `json:"telefone" validate:"required,lte=20"`
}

type LoginRequest struct {
	Login string `json:"login" validate:"required,lte=255"`
	Senha string `json:"senha" validate:"required,lte=255"`
}
