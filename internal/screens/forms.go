package screens

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/gdg-garage/hotel-admin/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var (
	validate       = newValidator()
	alphaSpaceExpr = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	v.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpaceExpr.MatchString(fl.Field().String())
	})
	v.RegisterValidation("nationality", func(fl validator.FieldLevel) bool {
		return models.Nationalities.Has(fl.Field().String())
	})
	return v
}

// FormError carries one message per invalid field, keyed by wire name.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	fields := lo.Keys(e.Fields)
	sort.Strings(fields)
	parts := lo.Map(fields, func(f string, _ int) string { return f + ": " + e.Fields[f] })
	return "formulario inválido: " + strings.Join(parts, "; ")
}

func (e *FormError) Unwrap() error { return ErrInvalidForm }

func fieldError(field, msg string) *FormError {
	return &FormError{Fields: map[string]string{field: msg}}
}

func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	fe := &FormError{Fields: make(map[string]string, len(verrs))}
	for _, v := range verrs {
		if _, seen := fe.Fields[v.Field()]; !seen {
			fe.Fields[v.Field()] = fieldMessage(v)
		}
	}
	return fe
}

func fieldMessage(fe validator.FieldError) string {
	text := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "notblank":
		return "Campo obligatorio"
	case "max":
		if text {
			return fmt.Sprintf("Máximo %s caracteres", fe.Param())
		}
		return fmt.Sprintf("Debe ser como máximo %s", fe.Param())
	case "min":
		if text {
			return fmt.Sprintf("Mínimo %s caracteres", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return "Seleccione al menos una opción"
		}
		return fmt.Sprintf("Debe ser al menos %s", fe.Param())
	case "gt":
		return fmt.Sprintf("Debe ser mayor a %s", fe.Param())
	case "len":
		return fmt.Sprintf("Debe tener %s caracteres", fe.Param())
	case "numeric":
		return "Solo se permiten dígitos"
	case "email":
		return "Correo electrónico inválido"
	case "alphaspace":
		return "Solo se permiten letras y espacios"
	case "alphanum":
		return "Solo se permiten letras y números"
	case "oneof":
		return "Valor no permitido"
	case "nationality":
		return "Nacionalidad desconocida"
	}
	return "Valor inválido"
}

type RoomForm struct {
	Number        string  `json:"numero" validate:"required,max=10"`
	TypeID        int     `json:"idTipo" validate:"required,min=1,max=4"`
	StatusID      int     `json:"idEstado" validate:"required,min=1,max=4"`
	PricePerNight float64 `json:"precioNoche" validate:"required,gt=0"`
	Capacity      int     `json:"capacidad" validate:"required,min=1"`
}

// RoomFormFrom fills the form from a listed room. Type and status come back
// from the API as names and are mapped back to catalog IDs; unknown names
// leave the field empty.
func RoomFormFrom(room models.Room) RoomForm {
	typeID, _ := models.RoomTypes.ID(room.Type)
	statusID, _ := models.RoomStatuses.ID(room.Status)
	return RoomForm{
		Number:        room.Number,
		TypeID:        typeID,
		StatusID:      statusID,
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
	}
}

func (f RoomForm) Request() models.RoomRequest {
	return models.RoomRequest{
		Number:        strings.TrimSpace(f.Number),
		TypeID:        f.TypeID,
		StatusID:      f.StatusID,
		PricePerNight: f.PricePerNight,
		Capacity:      f.Capacity,
	}
}

type GuestForm struct {
	Name          string `json:"nombre" validate:"required,notblank,max=50"`
	FirstSurname  string `json:"apellidoPaterno" validate:"required,max=100,alphaspace"`
	SecondSurname string `json:"apellidoMaterno" validate:"required,max=100,alphaspace"`
	Email         string `json:"email" validate:"required,max=50,email"`
	Phone         string `json:"telefono" validate:"required,len=10,numeric"`
	DocumentType  string `json:"documento" validate:"required,oneof=INE PASAPORTE LICENCIA"`
	Nationality   string `json:"nacionalidad" validate:"required,nationality"`
}

// GuestFormFrom fills the form from a listed guest, normalizing the
// nationality to a catalog value when one matches.
func GuestFormFrom(guest models.Guest) GuestForm {
	return GuestForm{
		Name:          guest.Name,
		FirstSurname:  guest.FirstSurname,
		SecondSurname: guest.SecondSurname,
		Email:         guest.Email,
		Phone:         guest.Phone,
		DocumentType:  guest.DocumentType,
		Nationality:   NormalizeNationality(guest.Nationality),
	}
}

func (f GuestForm) Request() models.GuestFields {
	return models.GuestFields{
		Name:          strings.TrimSpace(f.Name),
		FirstSurname:  strings.TrimSpace(f.FirstSurname),
		SecondSurname: strings.TrimSpace(f.SecondSurname),
		Email:         strings.TrimSpace(f.Email),
		Phone:         f.Phone,
		DocumentType:  f.DocumentType,
		Nationality:   f.Nationality,
	}
}

// ReservationForm dates are checked by the screen against its clock.
type ReservationForm struct {
	GuestID  uint        `json:"idHuesped" validate:"required"`
	RoomID   uint        `json:"idHabitacion" validate:"required"`
	CheckIn  models.Date `json:"fechaEntrada"`
	CheckOut models.Date `json:"fechaSalida"`
}

func (f ReservationForm) Request() models.ReservationRequest {
	return models.ReservationRequest{
		GuestID:  f.GuestID,
		RoomID:   f.RoomID,
		CheckIn:  f.CheckIn.String(),
		CheckOut: f.CheckOut.String(),
	}
}

type UserForm struct {
	Username string   `json:"username" validate:"required,min=5,max=20,alphanum"`
	Password string   `json:"password" validate:"required,min=8"`
	Roles    []string `json:"roles" validate:"min=1,dive,oneof=USER ADMIN"`
}

func NewUserForm() UserForm {
	return UserForm{Roles: []string{models.RoleUser}}
}

func (f UserForm) Request() models.UserRequest {
	return models.UserRequest{
		Username: f.Username,
		Password: f.Password,
		Roles:    lo.Uniq(f.Roles),
	}
}
