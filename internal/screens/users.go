package screens

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gdg-garage/hotel-admin/internal/gateway"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/samber/lo"
)

type UserGateway interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, req models.UserRequest) (models.User, error)
	Delete(ctx context.Context, username string) error
}

const msgUsernameTaken = "El nombre de usuario ya existe"

// UserScreen manages operator accounts. Every mutation needs the admin
// capability. Accounts are addressed by username.
type UserScreen struct {
	gw   UserGateway
	deps Deps

	mu    sync.Mutex
	users []models.User
	modal Modal
	form  UserForm
}

func NewUserScreen(gw UserGateway, deps Deps) *UserScreen {
	return &UserScreen{gw: gw, deps: deps.forScreen("usuarios"), form: NewUserForm()}
}

func (s *UserScreen) Activate(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.deps.Log.WithError(err).Error("Error al cargar usuarios")
	}
}

func (s *UserScreen) Reload(ctx context.Context) error {
	users, err := s.gw.List(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return nil
}

func (s *UserScreen) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.User(nil), s.users...)
}

func (s *UserScreen) Capabilities() Capabilities { return s.deps.Caps }

func (s *UserScreen) ModalState() ModalState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.modal.State()
}

func (s *UserScreen) ModalTitle() string { return "Nuevo Usuario" }

func (s *UserScreen) OpenCreate() error {
	if err := s.deps.requireAdmin(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.OpenCreate()
	s.form = NewUserForm()
	return nil
}

func (s *UserScreen) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modal.Close()
	s.form = NewUserForm()
}

func (s *UserScreen) Form() UserForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

func (s *UserScreen) SetForm(form UserForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.modal.IsOpen() {
		return ErrModalClosed
	}
	s.form = form
	return nil
}

func (s *UserScreen) Submit(ctx context.Context) (models.User, error) {
	s.mu.Lock()
	if !s.modal.IsOpen() {
		s.mu.Unlock()
		return models.User{}, ErrModalClosed
	}
	if err := validateForm(s.form); err != nil {
		s.mu.Unlock()
		return models.User{}, err
	}
	req := s.form.Request()
	s.modal.Submit()
	s.mu.Unlock()

	user, err := s.gw.Create(ctx, req)

	s.mu.Lock()
	if err != nil {
		s.modal.Fail()
		s.mu.Unlock()
		if gateway.IsStatus(err, http.StatusConflict) {
			return models.User{}, s.deps.failWith(ctx, "create user", msgUsernameTaken, err)
		}
		return models.User{}, s.deps.fail(ctx, "create user", "No se pudo crear el usuario", err)
	}
	s.users = append(s.users, user)
	s.modal.Succeed()
	s.form = NewUserForm()
	s.mu.Unlock()

	s.deps.succeed(ctx, "Creado", fmt.Sprintf("Usuario %s creado con éxito", user.Username))
	return user, nil
}

func (s *UserScreen) Delete(ctx context.Context, username string) (bool, error) {
	if err := s.deps.requireAdmin(); err != nil {
		return false, err
	}
	ok, err := s.deps.confirm(ctx, Prompt{
		Title:   "¿Eliminar usuario?",
		Text:    fmt.Sprintf("Se eliminará permanentemente a %s", username),
		Confirm: "Sí, eliminar",
		Cancel:  "Cancelar",
	})
	if err != nil || !ok {
		return false, err
	}

	if err := s.gw.Delete(ctx, username); err != nil {
		return false, s.deps.fail(ctx, "delete user", "No se pudo eliminar el usuario", err)
	}

	s.mu.Lock()
	s.users = lo.Reject(s.users, func(u models.User, _ int) bool { return u.Username == username })
	s.mu.Unlock()
	s.deps.succeed(ctx, "Eliminado", "Usuario eliminado correctamente")
	return true, nil
}
