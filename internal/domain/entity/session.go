package entity

// Claves bajo las que se persiste la sesión. Deben preservarse tal cual por
// compatibilidad con el almacenamiento del cliente móvil original.
const (
	SessionKeyToken     = "jwtToken"
	SessionKeyWarehouse = "selectedWarehouse"
)

// Session credenciales activas: token de autenticación y bodega seleccionada.
// Toda operación de red exige ambas presentes; si falta alguna, la operación
// falla rápido sin tocar la red.
type Session struct {
	Token       string
	WarehouseID string
}

// Complete indica si la sesión tiene token y bodega seleccionada.
func (s Session) Complete() bool {
	return s.Token != "" && s.WarehouseID != ""
}
