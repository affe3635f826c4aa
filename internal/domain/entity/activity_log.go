package entity

import "time"

// Entidades auditadas en el log de actividad.
const (
	ActivityEntityProducto   = "producto"
	ActivityEntitySede       = "sede"
	ActivityEntityVenta      = "venta"
	ActivityEntityInvitacion = "invitacion"
	ActivityEntityAjustes    = "ajustes"
	ActivityEntityInventario = "inventario"
	ActivityEntityUsuario    = "usuario"
)

// Acciones registradas.
const (
	ActivityActionCrear      = "crear"
	ActivityActionActualizar = "actualizar"
	ActivityActionDesactivar = "desactivar"
	ActivityActionAnular     = "anular"
	ActivityActionAjustar    = "ajustar"
	ActivityActionTransferir = "transferir"
	ActivityActionInvitar    = "invitar"
	ActivityActionAceptar    = "aceptar"
	ActivityActionCancelar   = "cancelar"
)

// ActivityLog es un registro append-only de lo que hacen los usuarios.
// Nunca se actualiza ni se borra.
type ActivityLog struct {
	ID        string
	CompanyID string
	UserID    string
	Entity    string // ver constantes ActivityEntity*
	EntityID  string
	Action    string // ver constantes ActivityAction*
	Detail    string
	CreatedAt time.Time
}
