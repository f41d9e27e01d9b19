package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/lojapratica/pix-backend/app/models"
)

// OrderStore persists incoming orders.
type OrderStore interface {
	CreateOrder(o *models.Order) (int64, error)
}

type OrderController struct {
	Orders OrderStore
	Log    *zap.Logger
}

// CreateOrder handles POST /novo-pedido. Column types are the only
// validation; the response carries the store-generated id.
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	req := &models.CreateOrderRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Corpo da requisição inválido.",
		})
	}

	order := &models.Order{
		Nome:      req.Nome,
		Telefone:  req.Telefone,
		Rua:       req.Rua,
		Numero:    req.Numero,
		Cidade:    req.Cidade,
		Estado:    req.Estado,
		CEP:       req.CEP,
		Valor:     req.Valor,
		CreatedAt: time.Now(),
	}

	id, err := oc.Orders.CreateOrder(order)
	if err != nil {
		oc.Log.Error("order insert failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Erro ao salvar pedido.",
		})
	}

	return c.JSON(fiber.Map{
		"sucesso": true,
		"id":      id,
	})
}
