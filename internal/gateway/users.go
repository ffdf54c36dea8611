package gateway

import (
	"context"
	"net/http"

	"github.com/gdg-garage/hotel-admin/internal/models"
)

const (
	usersPath = "usuarios"
	loginPath = "../auth/login"
)

type UserGateway struct {
	c *Client
}

func (g *UserGateway) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := g.c.do(ctx, http.MethodGet, usersPath, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (g *UserGateway) Create(ctx context.Context, req models.UserRequest) (models.User, error) {
	var user models.User
	err := g.c.do(ctx, http.MethodPost, usersPath, req, &user)
	return user, err
}

// Delete removes the account by username.
func (g *UserGateway) Delete(ctx context.Context, username string) error {
	return g.c.do(ctx, http.MethodDelete, usersPath+"/"+username, nil, nil)
}

// AuthGateway talks to the login endpoint, which lives beside the API root.
type AuthGateway struct {
	c *Client
}

func (g *AuthGateway) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var res models.LoginResponse
	err := g.c.do(ctx, http.MethodPost, loginPath, models.LoginRequest{Username: username, Password: password}, &res)
	return res, err
}
