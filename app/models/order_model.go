package models

import "time"

type Order struct {
	ID        int64     `json:"id" db:"id"`
	Nome      string    `json:"nome" db:"nome"`
	Telefone  string    `json:"telefone" db:"telefone"`
	Rua       string    `json:"rua" db:"rua"`
	Numero    string    `json:"numero" db:"numero"`
	Cidade    string    `json:"cidade" db:"cidade"`
	Estado    string    `json:"estado" db:"estado"`
	CEP       string    `json:"cep" db:"cep"`
	Valor     float64   `json:"valor" db:"valor"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type CreateOrderRequest struct {
	Nome     string  `json:"nome"`
	Telefone string  `json:"telefone"`
	Rua      string  `json:"rua"`
	Numero   string  `json:"numero"`
	Cidade   string  `json:"cidade"`
	Estado   string  `json:"estado"`
	CEP      string  `json:"cep"`
	Valor    float64 `json:"valor"`
}
