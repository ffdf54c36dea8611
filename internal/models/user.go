package models

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

var Roles = NewCatalog(
	Code{ID: 1, Name: RoleUser, Label: "Recepcionista"},
	Code{ID: 2, Name: RoleAdmin, Label: "Administrador"},
)

type UserRequest struct {
	Username string   `json:"username" minLength:"5" maxLength:"20" pattern:"^[a-zA-Z0-9]+$"`
	Password string   `json:"password" minLength:"8" writeOnly:"true"`
	Roles    []string `json:"roles" minItems:"1"`
}

type User struct {
	ID       uint     `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

type LoginRequest struct {
	Username string `json:"username" minLength:"1"`
	Password string `json:"password" minLength:"1"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// ErrorBody is the error payload of the API. Every field is optional.
type ErrorBody struct {
	Mensaje  string            `json:"mensaje,omitempty"`
	Message  string            `json:"message,omitempty"`
	Detalles map[string]string `json:"detalles,omitempty"`
}
