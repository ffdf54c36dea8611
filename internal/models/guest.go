package models

const (
	DocumentINE       = "INE"
	DocumentPasaporte = "PASAPORTE"
	DocumentLicencia  = "LICENCIA"

	NationalityOther = "OTRA"
)

var DocumentTypes = NewCatalog(
	Code{ID: 1, Name: DocumentINE, Label: "INE"},
	Code{ID: 2, Name: DocumentPasaporte, Label: "Pasaporte"},
	Code{ID: 3, Name: DocumentLicencia, Label: "Licencia"},
)

var Nationalities = NewCatalog(
	Code{ID: 1, Name: "MEXICO", Label: "México"},
	Code{ID: 2, Name: "ESTADOS_UNIDOS", Label: "Estados Unidos"},
	Code{ID: 3, Name: "CANADA", Label: "Canadá"},
	Code{ID: 4, Name: "ARGENTINA", Label: "Argentina"},
	Code{ID: 5, Name: "BRASIL", Label: "Brasil"},
	Code{ID: 6, Name: "COLOMBIA", Label: "Colombia"},
	Code{ID: 7, Name: "CHILE", Label: "Chile"},
	Code{ID: 8, Name: "PERU", Label: "Perú"},
	Code{ID: 9, Name: "ESPAÑA", Label: "España"},
	Code{ID: 10, Name: "FRANCIA", Label: "Francia"},
	Code{ID: 11, Name: "ALEMANIA", Label: "Alemania"},
	Code{ID: 12, Name: "ITALIA", Label: "Italia"},
	Code{ID: 13, Name: "REINO_UNIDO", Label: "Reino Unido"},
	Code{ID: 14, Name: "JAPON", Label: "Japón"},
	Code{ID: 15, Name: "CHINA", Label: "China"},
	Code{ID: 16, Name: "COREA_DEL_SUR", Label: "Corea del Sur"},
	Code{ID: 17, Name: "AUSTRALIA", Label: "Australia"},
	Code{ID: 18, Name: NationalityOther, Label: "Otro"},
)

// GuestFields is shared by the guest payload and the guest record.
type GuestFields struct {
	Name           string `json:"nombre" minLength:"1" maxLength:"50" pattern:"\\S" doc:"Given name"`
	FirstSurname   string `json:"apellidoPaterno" maxLength:"100" pattern:"^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$"`
	SecondSurname  string `json:"apellidoMaterno" maxLength:"100" pattern:"^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$"`
	Email          string `json:"email" maxLength:"50" format:"email"`
	Phone          string `json:"telefono" pattern:"^[0-9]{10}$" doc:"10-digit phone number"`
	DocumentType   string `json:"documento" enum:"INE,PASAPORTE,LICENCIA"`
	Nationality    string `json:"nacionalidad" enum:"MEXICO,ESTADOS_UNIDOS,CANADA,ARGENTINA,BRASIL,COLOMBIA,CHILE,PERU,ESPAÑA,FRANCIA,ALEMANIA,ITALIA,REINO_UNIDO,JAPON,CHINA,COREA_DEL_SUR,AUSTRALIA,OTRA"`
}

// Guest is a huésped as the API returns it.
type Guest struct {
	ID uint `json:"id"`
	GuestFields
}

func (g Guest) FullName() string {
	return g.Name + " " + g.FirstSurname + " " + g.SecondSurname
}
