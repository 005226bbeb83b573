package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/wims-scanner/internal/domain"
	"github.com/jhoicas/wims-scanner/internal/domain/entity"
)

// Authenticator puerto hacia el módulo de usuarios de WIMS.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

// WarehouseLister puerto de lectura del catálogo para poblar el selector de
// bodega tras el login.
type WarehouseLister interface {
	FetchCatalog(ctx context.Context, session entity.Session) (entity.Catalog, error)
}

// SessionWriter acceso de escritura al almacén de sesión.
type SessionWriter interface {
	Get() (entity.Session, error)
	SetToken(token string) error
	SetWarehouse(id string) error
	Clear() error
}

// WarehouseOption entrada del selector de bodega.
type WarehouseOption struct {
	ID   string
	Name string
}

// UseCase flujo de login y selección de bodega. La UI de credenciales queda
// fuera del núcleo; aquí vive solo la lógica: autenticar, persistir el token,
// listar bodegas y persistir la selección.
type UseCase struct {
	auth     Authenticator
	catalog  WarehouseLister
	sessions SessionWriter
}

// NewUseCase construye el caso de uso.
func NewUseCase(auth Authenticator, catalog WarehouseLister, sessions SessionWriter) *UseCase {
	return &UseCase{auth: auth, catalog: catalog, sessions: sessions}
}

// Login autentica, persiste el token emitido y devuelve las bodegas
// disponibles para el selector.
func (uc *UseCase) Login(ctx context.Context, username, password string) ([]WarehouseOption, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, fmt.Errorf("%w: usuario y contraseña requeridos", domain.ErrValidation)
	}

	token, err := uc.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.SetToken(token); err != nil {
		return nil, err
	}

	catalog, err := uc.catalog.FetchCatalog(ctx, entity.Session{Token: token})
	if err != nil {
		return nil, err
	}
	options := make([]WarehouseOption, 0, len(catalog))
	for _, w := range catalog {
		options = append(options, WarehouseOption{ID: w.ID, Name: w.Name})
	}
	return options, nil
}

// SelectWarehouse valida la bodega contra el catálogo y persiste la
// selección.
func (uc *UseCase) SelectWarehouse(ctx context.Context, warehouseID string) error {
	if warehouseID == "" {
		return fmt.Errorf("%w: warehouseId requerido", domain.ErrValidation)
	}

	sess, err := uc.sessions.Get()
	if err != nil {
		return err
	}
	if sess.Token == "" {
		return fmt.Errorf("%w: inicie sesión primero", domain.ErrUnauthorized)
	}

	catalog, err := uc.catalog.FetchCatalog(ctx, sess)
	if err != nil {
		return err
	}
	if catalog.FindWarehouse(warehouseID) == nil {
		return fmt.Errorf("%w: %s", domain.ErrWarehouseNotFound, warehouseID)
	}
	return uc.sessions.SetWarehouse(warehouseID)
}

// Logout borra la sesión persistida.
func (uc *UseCase) Logout() error {
	return uc.sessions.Clear()
}
