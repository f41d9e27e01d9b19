package controllers

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lojapratica/pix-backend/app/models"
	"github.com/lojapratica/pix-backend/app/queries"
	"github.com/lojapratica/pix-backend/pkg/utils"
)

var validate = validator.New()

// UserStore is the slice of the credential store the auth handlers need.
type UserStore interface {
	CreateUser(u *models.User) error
	GetUserByLogin(login string) (models.User, error)
	GetUserByID(id uuid.UUID) (models.User, error)
}

type AuthController struct {
	Users UserStore
	Log   *zap.Logger
}

// Cadastro handles POST /cadastro. The password is bcrypt-hashed before it
// reaches the store; a duplicate login surfaces as 409, any other store
// failure as a generic 500 with the cause logged server-side only.
func (ac *AuthController) Cadastro(c *fiber.Ctx) error {
	req := &models.CadastroRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Corpo da requisição inválido.",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": err.Error(),
		})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		ac.Log.Error("password hashing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Erro interno.",
		})
	}

	user := &models.User{
		ID:           uuid.New(),
		Login:        req.Login,
		PasswordHash: string(hashedPassword),
		Email:        req.Email,
		Nome:         req.Nome,
		CPF:          req.CPF,
		Telefone:     req.Telefone,
		CreatedAt:    time.Now(),
	}

	if err := ac.Users.CreateUser(user); err != nil {
		if errors.Is(err, queries.ErrDuplicateLogin) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"sucesso":  false,
				"mensagem": "Login já existe.",
			})
		}
		ac.Log.Error("user insert failed", zap.Error(err), zap.String("login", req.Login))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Erro interno.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"sucesso":  true,
		"mensagem": "Usuário cadastrado!",
	})
}

// Login handles POST /login. Unknown login and wrong password return the
// identical body so the response carries no enumeration signal; an
// unexpected store error maps to a generic 500 instead of escaping.
func (ac *AuthController) Login(c *fiber.Ctx) error {
	req := &models.LoginRequest{}
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Corpo da requisição inválido.",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": err.Error(),
		})
	}

	user, err := ac.Users.GetUserByLogin(req.Login)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			return c.JSON(fiber.Map{
				"sucesso":  false,
				"mensagem": "Usuário ou senha inválidos.",
			})
		}
		ac.Log.Error("login lookup failed", zap.Error(err), zap.String("login", req.Login))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Erro interno.",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Senha)); err != nil {
		return c.JSON(fiber.Map{
			"sucesso":  false,
			"mensagem": "Usuário ou senha inválidos.",
		})
	}

	resp := fiber.Map{
		"sucesso":  true,
		"mensagem": "Login realizado com sucesso.",
	}
	token, err := utils.GenerateAccessToken(user.ID, user.Login)
	if err != nil {
		ac.Log.Warn("access token not issued", zap.Error(err))
	} else {
		resp["token"] = token
	}

	return c.JSON(resp)
}
