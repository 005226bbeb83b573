package dto

import "github.com/shopspring/decimal"

// Peticiones y respuestas de la pasarela local para el colaborador de UI.

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ScannerStateResponse estado y veredicto actuales de la máquina.
type ScannerStateResponse struct {
	State     string       `json:"state"`
	Verdict   string       `json:"verdict"`
	Product   *WireProduct `json:"product,omitempty"`
	Mutation  string       `json:"mutation,omitempty"`
	LastError string       `json:"lastError,omitempty"`
}

// ScanPayloadRequest cadena cruda decodificada por el escáner.
type ScanPayloadRequest struct {
	Data string `json:"data"`
}

// SubmitAddRequest cantidad y precio capturados para el alta.
type SubmitAddRequest struct {
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// SubmitEditRequest campos editables; nil significa sin cambio.
type SubmitEditRequest struct {
	ProductDescription *string          `json:"productDescription"`
	Price              *decimal.Decimal `json:"price"`
	Quantity           *int             `json:"quantity"`
}

// GatewayLoginRequest credenciales recogidas por la UI.
type GatewayLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// WarehouseOption entrada del selector de bodega tras el login.
type WarehouseOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GatewayLoginResponse bodegas disponibles para seleccionar.
type GatewayLoginResponse struct {
	Warehouses []WarehouseOption `json:"warehouses"`
}

// SelectWarehouseRequest selección de bodega persistida en la sesión.
type SelectWarehouseRequest struct {
	WarehouseID string `json:"warehouseId"`
}
