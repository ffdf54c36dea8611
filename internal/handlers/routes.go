package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gdg-garage/hotel-admin/internal/auth"
	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gorm.io/gorm"
)

var bearerSecurity = []map[string][]string{{"bearer": {}}}

func secured(o *huma.Operation) {
	o.Security = bearerSecurity
}

func adminOnly(o *huma.Operation) {
	o.Security = bearerSecurity
	o.Metadata = map[string]any{auth.RoleMetadata: models.RoleAdmin}
}

func created(o *huma.Operation) {
	o.DefaultStatus = http.StatusCreated
}

// NewRouter wires every handler of the hotel API on a fresh chi router.
func NewRouter(db *gorm.DB, authHandler *auth.AuthHandler) *chi.Mux {
	r := chi.NewRouter()
	RegisterRoutes(r, authHandler,
		NewRoomHandler(db),
		NewGuestHandler(db),
		NewReservationHandler(db),
		NewUserHandler(db),
	)
	return r
}

func RegisterRoutes(
	r *chi.Mux,
	authHandler *auth.AuthHandler,
	rooms *RoomHandler,
	guests *GuestHandler,
	reservations *ReservationHandler,
	users *UserHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	config := huma.DefaultConfig("Hotel API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, config)
	api.UseMiddleware(authHandler.Middleware(api))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	huma.Post(api, "/auth/login", authHandler.HandleLogin)

	// Habitaciones
	huma.Get(api, "/api/habitaciones", rooms.HandleList, secured)
	huma.Post(api, "/api/habitaciones", rooms.HandleCreate, secured, created)
	huma.Put(api, "/api/habitaciones/{id}", rooms.HandleUpdate, adminOnly)
	huma.Delete(api, "/api/habitaciones/{id}", rooms.HandleDelete, adminOnly)

	// Huéspedes
	huma.Get(api, "/api/huespedes", guests.HandleList, secured)
	huma.Post(api, "/api/huespedes", guests.HandleCreate, secured, created)
	huma.Put(api, "/api/huespedes/{id}", guests.HandleUpdate, adminOnly)
	huma.Delete(api, "/api/huespedes/{id}", guests.HandleDelete, adminOnly)

	// Reservas
	huma.Get(api, "/api/reservas", reservations.HandleList, secured)
	huma.Post(api, "/api/reservas", reservations.HandleCreate, secured, created)
	huma.Put(api, "/api/reservas/{id}", reservations.HandleUpdate, secured)
	huma.Delete(api, "/api/reservas/{id}", reservations.HandleDelete, adminOnly)
	huma.Put(api, "/api/reservas/{id}/check-in", reservations.HandleCheckIn, secured)
	huma.Put(api, "/api/reservas/{id}/check-out", reservations.HandleCheckOut, secured)
	huma.Put(api, "/api/reservas/{id}/estado/{code}", reservations.HandleSetStatus, secured)

	// Usuarios
	huma.Get(api, "/api/usuarios", users.HandleList, adminOnly)
	huma.Post(api, "/api/usuarios", users.HandleCreate, adminOnly, created)
	huma.Delete(api, "/api/usuarios/{username}", users.HandleDelete, adminOnly)
}
