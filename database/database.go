package database

import (
	"ganaderia-app/config"

	"gorm.io/gorm"
)

var db *gorm.DB

// Init abre la conexion unica de la aplicacion.
func Init() (*gorm.DB, error) {
	conn, err := config.ConnectDB()
	if err != nil {
		return nil, err
	}
	db = conn
	return db, nil
}

// GetDB entrega la conexion compartida.
func GetDB() *gorm.DB {
	return db
}
