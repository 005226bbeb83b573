package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/wims-scanner/internal/application/auth"
	"github.com/jhoicas/wims-scanner/internal/domain"
	"github.com/jhoicas/wims-scanner/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type stubAPI struct {
	token    string
	loginErr error
	catalog  entity.Catalog
	fetchErr error

	lastUsername string
	lastSession  entity.Session
}

func (s *stubAPI) Login(_ context.Context, username, _ string) (string, error) {
	s.lastUsername = username
	if s.loginErr != nil {
		return "", s.loginErr
	}
	return s.token, nil
}

func (s *stubAPI) FetchCatalog(_ context.Context, session entity.Session) (entity.Catalog, error) {
	s.lastSession = session
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.catalog, nil
}

// memSessions sesión en memoria con el mismo contrato que el almacén SQLite.
type memSessions struct {
	sess entity.Session
}

func (m *memSessions) Get() (entity.Session, error) { return m.sess, nil }
func (m *memSessions) SetToken(token string) error  { m.sess.Token = token; return nil }
func (m *memSessions) SetWarehouse(id string) error { m.sess.WarehouseID = id; return nil }
func (m *memSessions) Clear() error                 { m.sess = entity.Session{}; return nil }

func dosBodegas() entity.Catalog {
	return entity.Catalog{
		{ID: "wh-1", Name: "Bodega Central"},
		{ID: "wh-2", Name: "Bodega Norte"},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PersisteTokenYListaBodegas(t *testing.T) {
	api := &stubAPI{token: "tok-123", catalog: dosBodegas()}
	sessions := &memSessions{}
	uc := auth.NewUseCase(api, api, sessions)

	options, err := uc.Login(context.Background(), "worker@example.com", "s3creta")
	require.NoError(t, err)

	assert.Equal(t, "worker@example.com", api.lastUsername)
	assert.Equal(t, "tok-123", sessions.sess.Token)
	assert.Equal(t, "tok-123", api.lastSession.Token, "el catálogo se pide con el token recién emitido")
	assert.Equal(t, []auth.WarehouseOption{
		{ID: "wh-1", Name: "Bodega Central"},
		{ID: "wh-2", Name: "Bodega Norte"},
	}, options)
}

func TestLogin_CredencialesVacias(t *testing.T) {
	api := &stubAPI{token: "tok-123"}
	uc := auth.NewUseCase(api, api, &memSessions{})

	_, err := uc.Login(context.Background(), "  ", "s3creta")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Login(context.Background(), "worker@example.com", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Empty(t, api.lastUsername, "la validación local no llega al backend")
}

func TestLogin_RechazoDelBackendNoPersisteNada(t *testing.T) {
	api := &stubAPI{loginErr: domain.ErrUnauthorized}
	sessions := &memSessions{}
	uc := auth.NewUseCase(api, api, sessions)

	_, err := uc.Login(context.Background(), "worker@example.com", "mala")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, sessions.sess.Token)
}

// ──────────────────────────────────────────────────────────────────────────────
// SelectWarehouse / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestSelectWarehouse_PersisteLaSeleccionValida(t *testing.T) {
	api := &stubAPI{catalog: dosBodegas()}
	sessions := &memSessions{sess: entity.Session{Token: "tok-123"}}
	uc := auth.NewUseCase(api, api, sessions)

	require.NoError(t, uc.SelectWarehouse(context.Background(), "wh-2"))
	assert.Equal(t, "wh-2", sessions.sess.WarehouseID)
}

func TestSelectWarehouse_BodegaDesconocida(t *testing.T) {
	api := &stubAPI{catalog: dosBodegas()}
	sessions := &memSessions{sess: entity.Session{Token: "tok-123"}}
	uc := auth.NewUseCase(api, api, sessions)

	err := uc.SelectWarehouse(context.Background(), "wh-99")
	assert.ErrorIs(t, err, domain.ErrWarehouseNotFound)
	assert.Empty(t, sessions.sess.WarehouseID)
}

func TestSelectWarehouse_SinTokenEsNoAutorizado(t *testing.T) {
	api := &stubAPI{catalog: dosBodegas()}
	uc := auth.NewUseCase(api, api, &memSessions{})

	err := uc.SelectWarehouse(context.Background(), "wh-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSelectWarehouse_IdVacio(t *testing.T) {
	api := &stubAPI{catalog: dosBodegas()}
	uc := auth.NewUseCase(api, api, &memSessions{sess: entity.Session{Token: "tok-123"}})

	err := uc.SelectWarehouse(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLogout_BorraLaSesion(t *testing.T) {
	sessions := &memSessions{sess: entity.Session{Token: "tok-123", WarehouseID: "wh-1"}}
	api := &stubAPI{}
	uc := auth.NewUseCase(api, api, sessions)

	require.NoError(t, uc.Logout())
	assert.Empty(t, sessions.sess.Token)
	assert.Empty(t, sessions.sess.WarehouseID)
}
