package session

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/wims-scanner/internal/domain"
	"github.com/jhoicas/wims-scanner/internal/domain/entity"
)

// Store almacén durable de sesión (token y bodega seleccionada) sobre un
// archivo SQLite. Cumple el contrato clave-valor que el cliente móvil tenía
// contra AsyncStorage: dos claves string que sobreviven reinicios.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open abre (o crea) el almacén de sesión en dbPath.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: crear directorio: %v", domain.ErrStorageUnavailable, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: abrir base: %v", domain.ErrStorageUnavailable, err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS session_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("%w: inicializar esquema: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Close cierra la base subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get devuelve la sesión actual. Las claves ausentes se devuelven vacías;
// decidir si la sesión está completa es asunto del llamador.
func (s *Store) Get() (entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.get(entity.SessionKeyToken)
	if err != nil {
		return entity.Session{}, err
	}
	warehouseID, err := s.get(entity.SessionKeyWarehouse)
	if err != nil {
		return entity.Session{}, err
	}
	return entity.Session{Token: token, WarehouseID: warehouseID}, nil
}

// SetToken persiste el token de autenticación. Idempotente.
func (s *Store) SetToken(token string) error {
	return s.set(entity.SessionKeyToken, token)
}

// SetWarehouse persiste la bodega seleccionada. Idempotente.
func (s *Store) SetWarehouse(id string) error {
	return s.set(entity.SessionKeyWarehouse, id)
}

// Clear borra la sesión completa (logout).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM session_store`); err != nil {
		return fmt.Errorf("%w: limpiar sesión: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return value, nil
}

func (s *Store) set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO session_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, key, err)
	}
	return nil
}
