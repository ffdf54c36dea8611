package models

const (
	RoomTypeSencilla = "SENCILLA"
	RoomTypeDoble    = "DOBLE"
	RoomTypeSuite    = "SUITE"
	RoomTypeKing     = "KING"

	RoomStatusDisponible    = "DISPONIBLE"
	RoomStatusOcupada       = "OCUPADA"
	RoomStatusLimpieza      = "LIMPIEZA"
	RoomStatusMantenimiento = "MANTENIMIENTO"
)

var RoomTypes = NewCatalog(
	Code{ID: 1, Name: RoomTypeSencilla, Label: "Sencilla"},
	Code{ID: 2, Name: RoomTypeDoble, Label: "Doble"},
	Code{ID: 3, Name: RoomTypeSuite, Label: "Suite"},
	Code{ID: 4, Name: RoomTypeKing, Label: "King"},
)

var RoomStatuses = NewCatalog(
	Code{ID: 1, Name: RoomStatusDisponible, Label: "Disponible"},
	Code{ID: 2, Name: RoomStatusOcupada, Label: "Ocupada"},
	Code{ID: 3, Name: RoomStatusLimpieza, Label: "Limpieza"},
	Code{ID: 4, Name: RoomStatusMantenimiento, Label: "Mantenimiento"},
)

// Room is a habitación as the API returns it. Type and status come back as
// wire names.
type Room struct {
	ID            uint    `json:"id"`
	Number        string  `json:"numero"`
	Type          string  `json:"tipo"`
	Status        string  `json:"estado"`
	PricePerNight float64 `json:"precioNoche"`
	Capacity      int     `json:"capacidad"`
}

// RoomRequest is the create/update payload. Type and status travel as
// catalog IDs.
type RoomRequest struct {
	Number        string  `json:"numero" minLength:"1" maxLength:"10" doc:"Room number"`
	TypeID        int     `json:"idTipo" minimum:"1" maximum:"4" doc:"Room type ID"`
	StatusID      int     `json:"idEstado" minimum:"1" maximum:"4" doc:"Room status ID"`
	PricePerNight float64 `json:"precioNoche" exclusiveMinimum:"0" doc:"Price per night"`
	Capacity      int     `json:"capacidad" minimum:"1" doc:"Number of guests"`
}
