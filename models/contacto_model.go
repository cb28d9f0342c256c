package models

import "gorm.io/gorm"

// Roles de un contacto frente a la transaccion
const (
	RolAntiguoDueno = "antiguo"
	RolNuevoDueno   = "nuevo"
	RolAmbos        = "ambos"
)

type Contacto struct {
	gorm.Model
	Nombres   string  `json:"nombres"`
	Apellidos string  `json:"apellidos"`
	Nit       string  `json:"nit" gorm:"unique"`
	Telefono  string  `json:"telefono"`
	Direccion string  `json:"direccion"`
	Municipio string  `json:"municipio"`
	Rol       string  `json:"rol" gorm:"default:ambos"`
	Fincas    []Finca `json:"fincas"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Finca struct {
	gorm.Model
	ContactoID uint   `json:"contacto_id" gorm:"index"`
	Nombre     string `json:"nombre"`
	Vereda     string `json:"vereda"`
	Municipio  string `json:"municipio"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
