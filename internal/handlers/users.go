package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gdg-garage/hotel-admin/internal/auth"
	"github.com/gdg-garage/hotel-admin/internal/database"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

type UserOutput struct {
	Body models.User
}

type UserListOutput struct {
	Body []models.User
}

type CreateUserInput struct {
	Body models.UserRequest
}

type DeleteUserInput struct {
	Username string `path:"username"`
}

func (h *UserHandler) HandleList(ctx context.Context, _ *struct{}) (*UserListOutput, error) {
	var users []database.User
	if err := h.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list users")
	}

	return &UserListOutput{
		Body: lo.Map(users, func(u database.User, _ int) models.User { return u.Record() }),
	}, nil
}

func (h *UserHandler) HandleCreate(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	roles := lo.Uniq(input.Body.Roles)
	if unknown, ok := lo.Find(roles, func(role string) bool { return !models.Roles.Has(role) }); ok {
		return nil, fieldError("roles", "Rol desconocido: "+unknown)
	}

	db := h.db.WithContext(ctx)

	var existing database.User
	err := db.Where("username = ?", input.Body.Username).First(&existing).Error
	if err == nil {
		return nil, huma.Error409Conflict("El nombre de usuario ya existe")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, huma.Error500InternalServerError("Database error")
	}

	hash, err := auth.HashPassword(input.Body.Password)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user := database.User{
		Username:     input.Body.Username,
		PasswordHash: hash,
		Roles:        roles,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user")
	}

	return &UserOutput{Body: user.Record()}, nil
}

func (h *UserHandler) HandleDelete(ctx context.Context, input *DeleteUserInput) (*struct{}, error) {
	if claims, ok := auth.ClaimsFrom(ctx); ok && claims.Username == input.Username {
		return nil, huma.Error409Conflict("No puede eliminar su propio usuario")
	}

	res := h.db.WithContext(ctx).Unscoped().Where("username = ?", input.Username).Delete(&database.User{})
	if res.Error != nil {
		return nil, huma.Error500InternalServerError("Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return nil, huma.Error404NotFound("Usuario no encontrado")
	}

	return nil, nil
}
