package handler

import (
	"testing"

	"financing-backend/internal/middleware"
	"financing-backend/internal/model"
	"financing-backend/internal/repository"
	"financing-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*model.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = f.nextID
	f.nextID++
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(identifier string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == identifier || u.Email == identifier {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Update(user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func setupAuthApp(uc *usecase.UserUsecase) *fiber.App {
	app := fiber.New()
	hdl := NewAuthHandler(uc)

	app.Post("/api/register", hdl.Register)
	app.Post("/api/login", hdl.Login)

	api := app.Group("/api", middleware.Auth)
	api.Get("/profile", hdl.GetProfile)
	api.Post("/change-password", hdl.ChangePassword)
	return app
}

func registerPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":                  "Petugas Satu",
		"username":              "petugas1",
		"email":                 "petugas1@example.com",
		"phone":                 "081234567890",
		"password":              "rahasia-kuat",
		"password_confirmation": "rahasia-kuat",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	app := setupAuthApp(usecase.NewUserUsecase(newFakeUserRepo()))

	resp, err := app.Test(jsonRequest(t, "POST", "/api/register", registerPayload(), ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "petugas1", user["username"])
	assert.NotContains(t, user, "password", "hash password tidak boleh bocor di response")

	login := map[string]interface{}{"email": "petugas1", "password": "rahasia-kuat"}
	resp, err = app.Test(jsonRequest(t, "POST", "/api/login", login, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body = decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "bearer", body["token_type"])
	assert.NotEmpty(t, body["access_token"])
	assert.EqualValues(t, 86400, body["expires_in"])

	// Token hasil login harus bisa dipakai akses route protected
	token := body["access_token"].(string)
	resp, err = app.Test(jsonRequest(t, "GET", "/api/profile", nil, token))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRegisterValidation(t *testing.T) {
	app := setupAuthApp(usecase.NewUserUsecase(newFakeUserRepo()))

	payload := registerPayload()
	payload["password_confirmation"] = "beda-sendiri"

	resp, err := app.Test(jsonRequest(t, "POST", "/api/register", payload, ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody(t, resp)
	errs := body["errors"].(map[string]interface{})
	assert.Contains(t, errs, "password_confirmation")
}

func TestRegisterDuplicate(t *testing.T) {
	app := setupAuthApp(usecase.NewUserUsecase(newFakeUserRepo()))

	resp, err := app.Test(jsonRequest(t, "POST", "/api/register", registerPayload(), ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(jsonRequest(t, "POST", "/api/register", registerPayload(), ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLoginWrongPassword(t *testing.T) {
	app := setupAuthApp(usecase.NewUserUsecase(newFakeUserRepo()))

	resp, err := app.Test(jsonRequest(t, "POST", "/api/register", registerPayload(), ""))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	login := map[string]interface{}{"email": "petugas1", "password": "salah"}
	resp, err = app.Test(jsonRequest(t, "POST", "/api/login", login, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
}

func TestProfileWithoutToken(t *testing.T) {
	app := setupAuthApp(usecase.NewUserUsecase(newFakeUserRepo()))

	resp, err := app.Test(jsonRequest(t, "GET", "/api/profile", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
