package queries

import (
	"database/sql"
	"fmt"

	"github.com/lojapratica/pix-backend/app/models"
)

type OrderQueries struct {
	DB *sql.DB
}

// CreateOrder inserts a new order and returns the generated identifier.
func (q *OrderQueries) CreateOrder(o *models.Order) (int64, error) {
	query := `INSERT INTO pedidos (nome, telefone, rua, numero, cidade, estado, cep, valor)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int64
	err := q.DB.QueryRow(query,
		o.Nome,
		o.Telefone,
		o.Rua,
		o.Numero,
		o.Cidade,
		o.Estado,
		o.CEP,
		o.Valor,
	).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("unable to create order: %w", err)
	}

	return id, nil
}
