package wims

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/wims-scanner/internal/application/dto"
	"github.com/jhoicas/wims-scanner/internal/application/reconcile"
	"github.com/jhoicas/wims-scanner/internal/domain"
	"github.com/jhoicas/wims-scanner/internal/domain/entity"
	pkgjwt "github.com/jhoicas/wims-scanner/pkg/jwt"
)

const (
	pathGetAllWarehouses = "/Warehouse/getAllWarehouses"
	pathAddProducts      = "/Warehouse/addProducts"
	pathUpdateProduct    = "/Warehouse/updateProductInfo"
	pathDeleteProduct    = "/Warehouse/deleteProductFromWarehouse"
	pathLogin            = "/User/login"
)

// Client consume la pasarela REST de WIMS. Implementa los puertos
// CatalogFetcher y ProductMutator de la máquina de reconciliación, más el
// login del módulo de usuarios.
type Client struct {
	baseURL     string // módulo de inventario
	authBaseURL string // módulo de usuarios
	httpClient  *http.Client
}

// NewClient construye el cliente. La pasarela puede tardar en responder
// desde la red del almacén, de ahí el timeout generoso; no hay reintentos
// internos (la política de reintento es del llamador, aquí: ninguna).
func NewClient(baseURL, authBaseURL string) *Client {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		authBaseURL: strings.TrimRight(authBaseURL, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Login autentica contra el módulo de usuarios y devuelve el token JWT
// emitido.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := dto.LoginRequest{Username: username, Password: password}
	raw, err := c.do(ctx, http.MethodPost, c.authBaseURL+pathLogin, "", body)
	if err != nil {
		return "", err
	}

	var out dto.LoginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	if out.JWTToken == "" {
		return "", fmt.Errorf("%w: respuesta de login sin jwtToken", domain.ErrMalformedResponse)
	}
	return out.JWTToken, nil
}

// FetchCatalog descarga la instantánea completa del catálogo. Lectura pura:
// el resultado se consume y descarta en el mismo ciclo de reconciliación.
func (c *Client) FetchCatalog(ctx context.Context, session entity.Session) (entity.Catalog, error) {
	if err := c.preflight(session.Token); err != nil {
		return nil, err
	}

	raw, err := c.do(ctx, http.MethodGet, c.baseURL+pathGetAllWarehouses, session.Token, nil)
	if err != nil {
		return nil, err
	}

	var wire []dto.WireWarehouse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}
	catalog := make(entity.Catalog, 0, len(wire))
	for _, w := range wire {
		catalog = append(catalog, w.ToEntity())
	}
	return catalog, nil
}

// AddProduct crea el producto escaneado en la bodega de la sesión. La
// validación local ocurre antes de cualquier llamada de red.
func (c *Client) AddProduct(ctx context.Context, session entity.Session, draft reconcile.ProductDraft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return fmt.Errorf("%w: productName requerido", domain.ErrValidation)
	}
	if draft.Quantity <= 0 {
		return fmt.Errorf("%w: quantity debe ser positiva", domain.ErrValidation)
	}
	if draft.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if err := c.preflight(session.Token); err != nil {
		return err
	}

	body := dto.AddProductsRequest{
		WarehouseID: session.WarehouseID,
		Products: []dto.WireProduct{{
			ProductName:        draft.Name,
			ProductDescription: draft.Description,
			Price:              draft.Price,
			Quantity:           draft.Quantity,
			CategoryID:         draft.CategoryID,
		}},
	}
	_, err := c.do(ctx, http.MethodPost, c.baseURL+pathAddProducts, session.Token, body)
	return err
}

// EditProduct reemplaza los datos del producto en la bodega de la sesión.
func (c *Client) EditProduct(ctx context.Context, session entity.Session, updated entity.Product) error {
	if updated.ID == "" {
		return fmt.Errorf("%w: id del producto requerido", domain.ErrValidation)
	}
	if strings.TrimSpace(updated.Name) == "" {
		return fmt.Errorf("%w: productName requerido", domain.ErrValidation)
	}
	if updated.Quantity < 0 {
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	}
	if updated.Price.IsNegative() {
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if err := c.preflight(session.Token); err != nil {
		return err
	}

	body := dto.UpdateProductRequest{
		WarehouseID: session.WarehouseID,
		Product:     dto.FromProduct(updated),
	}
	_, err := c.do(ctx, http.MethodPut, c.baseURL+pathUpdateProduct, session.Token, body)
	return err
}

// DeleteProduct elimina el producto de la bodega de la sesión.
func (c *Client) DeleteProduct(ctx context.Context, session entity.Session, productID string) error {
	if productID == "" {
		return fmt.Errorf("%w: id del producto requerido", domain.ErrValidation)
	}
	if err := c.preflight(session.Token); err != nil {
		return err
	}

	body := dto.DeleteProductsRequest{
		WarehouseID: session.WarehouseID,
		Products:    []dto.ProductRef{{ID: productID}},
	}
	_, err := c.do(ctx, http.MethodDelete, c.baseURL+pathDeleteProduct, session.Token, body)
	return err
}

// preflight falla rápido con Unauthorized si el token falta o ya venció,
// antes de gastar una llamada de red. Un token que no es un JWT legible se
// deja pasar: que decida el backend.
func (c *Client) preflight(token string) error {
	if token == "" {
		return fmt.Errorf("%w: token ausente", domain.ErrUnauthorized)
	}
	expired, err := pkgjwt.Expired(token, time.Now())
	if err != nil {
		return nil
	}
	if expired {
		return fmt.Errorf("%w: token expirado", domain.ErrUnauthorized)
	}
	return nil
}

// do ejecuta la llamada HTTP y mapea el resultado a la taxonomía de dominio:
// fallo de transporte -> ErrNetwork, 401/403 -> ErrUnauthorized, cualquier
// otro estado fuera de 2xx -> RejectedError.
func (c *Client) do(ctx context.Context, method, url, token string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("wims: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("wims: crear request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // máx 1 MB
	if err != nil {
		return nil, fmt.Errorf("%w: leer respuesta: %v", domain.ErrNetwork, err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: HTTP %d", domain.ErrUnauthorized, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &domain.RejectedError{StatusCode: resp.StatusCode}
	}
	return raw, nil
}
