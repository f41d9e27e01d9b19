package controllers

import (
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/lojapratica/pix-backend/app/models"
	"github.com/lojapratica/pix-backend/app/queries"
)

type mockUserStore struct {
	CreateUserFunc     func(u *models.User) error
	GetUserByLoginFunc func(login string) (models.User, error)
	GetUserByIDFunc    func(id uuid.UUID) (models.User, error)

	created []*models.User
}

func (m *mockUserStore) CreateUser(u *models.User) error {
	m.created = append(m.created, u)
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(u)
	}
	return nil
}

func (m *mockUserStore) GetUserByLogin(login string) (models.User, error) {
	if m.GetUserByLoginFunc != nil {
		return m.GetUserByLoginFunc(login)
	}
	return models.User{}, queries.ErrUserNotFound
}

func (m *mockUserStore) GetUserByID(id uuid.UUID) (models.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(id)
	}
	return models.User{}, queries.ErrUserNotFound
}

func newAuthApp(store UserStore) *fiber.App {
	app := fiber.New()
	ac := &AuthController{Users: store, Log: zap.NewNop()}
	app.Post("/cadastro", ac.Cadastro)
	app.Post("/login", ac.Login)
	return app
}

const cadastroBody = `{"login":"maria","senha":"s3nh4-forte","email":"maria@example.com","nome":"Maria","cpf":"12345678901","telefone":"11987654321"}`

func TestCadastroHashesPassword(t *testing.T) {
	store := &mockUserStore{}
	app := newAuthApp(store)

	resp := postJSON(t, app, "/cadastro", cadastroBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody(t, resp)
	if body["sucesso"] != true {
		t.Errorf("sucesso = %v", body["sucesso"])
	}

	if len(store.created) != 1 {
		t.Fatalf("created %d users, want 1", len(store.created))
	}
	stored := store.created[0]
	if stored.PasswordHash == "s3nh4-forte" {
		t.Fatal("plaintext password reached the store")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3nh4-forte")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if cost, err := bcrypt.Cost([]byte(stored.PasswordHash)); err != nil || cost != bcrypt.DefaultCost {
		t.Errorf("hash cost = %d (%v), want %d", cost, err, bcrypt.DefaultCost)
	}
}

func TestCadastroDuplicateLoginConflicts(t *testing.T) {
	store := &mockUserStore{
		CreateUserFunc: func(u *models.User) error {
			return queries.ErrDuplicateLogin
		},
	}
	app := newAuthApp(store)

	resp := postJSON(t, app, "/cadastro", cadastroBody)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["mensagem"] != "Login já existe." {
		t.Errorf("mensagem = %v", body["mensagem"])
	}
}

func TestCadastroStoreFailureIsGeneric(t *testing.T) {
	store := &mockUserStore{
		CreateUserFunc: func(u *models.User) error {
			return errors.New("pq: connection reset")
		},
	}
	app := newAuthApp(store)

	resp := postJSON(t, app, "/cadastro", cadastroBody)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["mensagem"] != "Erro interno." {
		t.Errorf("mensagem = %v, want the generic message", body["mensagem"])
	}
}

func TestCadastroMissingFieldsRejected(t *testing.T) {
	store := &mockUserStore{}
	app := newAuthApp(store)

	resp := postJSON(t, app, "/cadastro", `{"login":"maria"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if len(store.created) != 0 {
		t.Errorf("partial account created on invalid input")
	}
}

func loginStoreWithUser(t *testing.T, login, senha string) *mockUserStore {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hashing fixture password: %v", err)
	}
	user := models.User{ID: uuid.New(), Login: login, PasswordHash: string(hash)}
	return &mockUserStore{
		GetUserByLoginFunc: func(l string) (models.User, error) {
			if l == login {
				return user, nil
			}
			return models.User{}, queries.ErrUserNotFound
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newAuthApp(loginStoreWithUser(t, "maria", "s3nh4-forte"))

	resp := postJSON(t, app, "/login", `{"login":"maria","senha":"s3nh4-forte"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["sucesso"] != true {
		t.Errorf("sucesso = %v", body["sucesso"])
	}
	if body["mensagem"] != "Login realizado com sucesso." {
		t.Errorf("mensagem = %v", body["mensagem"])
	}
	if token, _ := body["token"].(string); token == "" {
		t.Error("no access token issued")
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	app := newAuthApp(loginStoreWithUser(t, "maria", "s3nh4-forte"))

	read := func(resp *http.Response) string {
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("reading body: %v", err)
		}
		return string(raw)
	}

	wrongPassword := postJSON(t, app, "/login", `{"login":"maria","senha":"errada"}`)
	unknownUser := postJSON(t, app, "/login", `{"login":"ninguem","senha":"errada"}`)

	if wrongPassword.StatusCode != http.StatusOK || unknownUser.StatusCode != http.StatusOK {
		t.Fatalf("statuses = %d / %d, want 200 / 200", wrongPassword.StatusCode, unknownUser.StatusCode)
	}
	wpBody, uuBody := read(wrongPassword), read(unknownUser)
	if wpBody != uuBody {
		t.Errorf("responses differ, enumeration signal present:\n%s\n%s", wpBody, uuBody)
	}
}

func TestLoginStoreErrorIsReported(t *testing.T) {
	store := &mockUserStore{
		GetUserByLoginFunc: func(login string) (models.User, error) {
			return models.User{}, errors.New("pq: connection reset")
		},
	}
	app := newAuthApp(store)

	resp := postJSON(t, app, "/login", `{"login":"maria","senha":"s3nh4-forte"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["mensagem"] != "Erro interno." {
		t.Errorf("mensagem = %v, want the generic message", body["mensagem"])
	}
}
