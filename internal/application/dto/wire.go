package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wims-scanner/internal/domain/entity"
)

// Tipos de alambre de la pasarela WIMS. Los nombres de campo JSON deben
// preservarse exactamente por compatibilidad con el backend existente.

// La pasarela espera price como número JSON, no como cadena.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// WireProduct producto tal como viaja por la pasarela.
type WireProduct struct {
	ID                 string          `json:"id,omitempty"`
	ProductName        string          `json:"productName"`
	ProductDescription string          `json:"productDescription"`
	Price              decimal.Decimal `json:"price"`
	Quantity           int             `json:"quantity"`
	CategoryID         string          `json:"categoryId"`
}

// WireWarehouse bodega con sus productos anidados, según
// GET /Warehouse/getAllWarehouses.
type WireWarehouse struct {
	WarehouseID       string        `json:"warehouseId"`
	WarehouseName     string        `json:"warehouseName"`
	WarehouseProducts []WireProduct `json:"warehouseProducts"`
}

// AddProductsRequest cuerpo de POST /Warehouse/addProducts.
type AddProductsRequest struct {
	WarehouseID string        `json:"warehouseId"`
	Products    []WireProduct `json:"products"`
}

// UpdateProductRequest cuerpo de PUT /Warehouse/updateProductInfo.
type UpdateProductRequest struct {
	WarehouseID string      `json:"warehouseId"`
	Product     WireProduct `json:"product"`
}

// ProductRef referencia por id, usada en el borrado.
type ProductRef struct {
	ID string `json:"id"`
}

// DeleteProductsRequest cuerpo de DELETE /Warehouse/deleteProductFromWarehouse.
type DeleteProductsRequest struct {
	WarehouseID string       `json:"warehouseId"`
	Products    []ProductRef `json:"products"`
}

// LoginRequest cuerpo de POST /User/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse respuesta de POST /User/login.
type LoginResponse struct {
	JWTToken string `json:"jwtToken"`
}

// ToEntity convierte el producto de alambre al tipo de dominio.
func (p WireProduct) ToEntity() entity.Product {
	return entity.Product{
		ID:          p.ID,
		Name:        p.ProductName,
		Description: p.ProductDescription,
		Price:       p.Price,
		Quantity:    p.Quantity,
		CategoryID:  p.CategoryID,
	}
}

// FromProduct convierte un producto de dominio al tipo de alambre.
func FromProduct(p entity.Product) WireProduct {
	return WireProduct{
		ID:                 p.ID,
		ProductName:        p.Name,
		ProductDescription: p.Description,
		Price:              p.Price,
		Quantity:           p.Quantity,
		CategoryID:         p.CategoryID,
	}
}

// ToEntity convierte la bodega de alambre al tipo de dominio.
func (w WireWarehouse) ToEntity() entity.Warehouse {
	products := make([]entity.Product, 0, len(w.WarehouseProducts))
	for _, p := range w.WarehouseProducts {
		products = append(products, p.ToEntity())
	}
	return entity.Warehouse{
		ID:       w.WarehouseID,
		Name:     w.WarehouseName,
		Products: products,
	}
}
