package reconcile

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/wims-scanner/internal/domain"
	"github.com/jhoicas/wims-scanner/internal/domain/entity"
	"github.com/jhoicas/wims-scanner/internal/domain/scan"
)

// State estado de la máquina de reconciliación.
type State int

const (
	// StateIdle sin ciclo activo.
	StateIdle State = iota
	// StateScanning esperando un payload del escáner.
	StateScanning
	// StateResolving fetch del catálogo + emparejamiento en vuelo.
	StateResolving
	// StateResolved veredicto disponible.
	StateResolved
	// StateMutating mutación contra el backend en vuelo.
	StateMutating
	// StateError la resolución falló; se recupera re-escaneando.
	StateError
)

func (s State) String() string {
	switch s {
	case StateScanning:
		return "scanning"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateMutating:
		return "mutating"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// MutationKind tipo de mutación en vuelo.
type MutationKind int

const (
	MutationAdd MutationKind = iota
	MutationEdit
	MutationDelete
)

func (k MutationKind) String() string {
	switch k {
	case MutationEdit:
		return "edit"
	case MutationDelete:
		return "delete"
	default:
		return "add"
	}
}

// ProductDraft producto a crear a partir de un payload escaneado más la
// cantidad y el precio capturados por la UI.
type ProductDraft struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CategoryID  string
}

// EditFields campos editables de un producto; nil significa sin cambio.
type EditFields struct {
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
}

// PendingMutation mutación transitoria en vuelo; se limpia al completar,
// con éxito o sin él.
type PendingMutation struct {
	Kind MutationKind
}

// CatalogFetcher puerto de lectura del catálogo remoto.
type CatalogFetcher interface {
	FetchCatalog(ctx context.Context, session entity.Session) (entity.Catalog, error)
}

// ProductMutator puerto de escritura contra el backend. El mutador nunca
// actualiza un catálogo local: el siguiente ciclo vuelve a descargar.
type ProductMutator interface {
	AddProduct(ctx context.Context, session entity.Session, draft ProductDraft) error
	EditProduct(ctx context.Context, session entity.Session, updated entity.Product) error
	DeleteProduct(ctx context.Context, session entity.Session, productID string) error
}

// SessionSource lectura de la sesión persistida antes de cada llamada de red.
type SessionSource interface {
	Get() (entity.Session, error)
}

// Machine orquesta el flujo escanear -> descargar -> emparejar -> mutar. Es
// la única dueña del veredicto activo y de la mutación pendiente. No tiene
// estado terminal: cicla durante toda la vida de la sesión de pantalla.
type Machine struct {
	fetcher  CatalogFetcher
	mutator  ProductMutator
	sessions SessionSource
	events   Events

	mu      sync.Mutex
	state   State
	verdict scan.Verdict
	payload scan.Payload
	scanTag uuid.UUID
	pending *PendingMutation
	lastErr error
}

// New construye la máquina en estado Idle con veredicto Unscanned.
func New(fetcher CatalogFetcher, mutator ProductMutator, sessions SessionSource, events Events) *Machine {
	if events == nil {
		events = NopEvents{}
	}
	return &Machine{
		fetcher:  fetcher,
		mutator:  mutator,
		sessions: sessions,
		events:   events,
		state:    StateIdle,
		verdict:  scan.Unscanned(),
	}
}

// Snapshot vista consistente del estado actual para la UI.
type Snapshot struct {
	State   State
	Verdict scan.Verdict
	Pending *PendingMutation
	Err     error
}

// Snapshot devuelve el estado, veredicto, mutación pendiente y último error.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Snapshot{State: m.state, Verdict: m.verdict, Err: m.lastErr}
	if m.pending != nil {
		p := *m.pending
		snap.Pending = &p
	}
	return snap
}

// StartScan inicia un nuevo ciclo de escaneo. El veredicto anterior se
// descarta aquí, antes de cualquier trabajo asíncrono; una resolución en
// vuelo queda invalidada por el cambio de etiqueta. Ilegal mientras hay una
// mutación en curso (las escrituras se serializan por sesión).
func (m *Machine) StartScan() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateMutating {
		return fmt.Errorf("%w: mutación en curso", domain.ErrIllegalOperation)
	}
	m.scanTag = uuid.New()
	m.payload = scan.Payload{}
	m.lastErr = nil
	m.state = StateScanning
	m.setVerdict(scan.Unscanned())
	return nil
}

// CancelScan aborta el ciclo de escaneo en curso y vuelve a Idle. Cualquier
// resolución en vuelo queda invalidada. Ilegal durante una mutación.
func (m *Machine) CancelScan() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateMutating {
		return fmt.Errorf("%w: mutación en curso", domain.ErrIllegalOperation)
	}
	m.scanTag = uuid.New()
	m.payload = scan.Payload{}
	m.lastErr = nil
	m.state = StateIdle
	m.setVerdict(scan.Unscanned())
	return nil
}

// PayloadReceived recibe la cadena decodificada del escáner y lanza la
// resolución asíncrona. Un payload nuevo reemplaza e invalida cualquier
// resolución anterior sin resolver (vuelo único por escaneo): solo la
// respuesta etiquetada con el payload más reciente actualiza el veredicto.
func (m *Machine) PayloadReceived(ctx context.Context, raw string) error {
	m.mu.Lock()
	if m.state != StateScanning && m.state != StateResolving {
		m.mu.Unlock()
		return fmt.Errorf("%w: no hay escaneo activo", domain.ErrIllegalOperation)
	}

	payload, err := scan.ParsePayload(raw)
	if err != nil {
		// Fallo de parseo: se invalida el escaneo actual y se queda
		// esperando una etiqueta legible. Sin llamada de red.
		m.scanTag = uuid.New()
		m.payload = scan.Payload{}
		m.state = StateScanning
		m.setVerdict(scan.Unscanned())
		m.mu.Unlock()
		return err
	}

	tag := uuid.New()
	m.scanTag = tag
	m.payload = payload
	m.state = StateResolving
	m.setVerdict(scan.Unscanned())
	m.mu.Unlock()

	go m.resolve(ctx, tag, payload)
	return nil
}

// resolve descarga el catálogo y calcula el veredicto. El resultado solo se
// aplica si la etiqueta sigue siendo la del payload más reciente.
func (m *Machine) resolve(ctx context.Context, tag uuid.UUID, payload scan.Payload) {
	sess, err := m.sessions.Get()
	if err == nil && !sess.Complete() {
		err = fmt.Errorf("%w: sesión incompleta", domain.ErrUnauthorized)
	}

	var verdict scan.Verdict
	if err == nil {
		var catalog entity.Catalog
		catalog, err = m.fetcher.FetchCatalog(ctx, sess)
		if err == nil {
			verdict = scan.Match(payload, catalog, sess.WarehouseID)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if tag != m.scanTag || m.state != StateResolving {
		// Resolución obsoleta: un payload más nuevo la reemplazó.
		return
	}
	if err != nil {
		m.state = StateError
		m.lastErr = err
		m.setVerdict(scan.Unscanned())
		m.events.OperationFailed("resolve", err)
		return
	}
	m.state = StateResolved
	m.lastErr = nil
	m.setVerdict(verdict)
}

// SubmitAdd crea el producto escaneado en la bodega seleccionada. Legal solo
// con veredicto NotFound; cantidad y precio se validan antes de cualquier
// llamada de red.
func (m *Machine) SubmitAdd(ctx context.Context, quantity int, price decimal.Decimal) error {
	m.mu.Lock()

	if m.state != StateResolved || m.verdict.Kind != scan.VerdictNotFound {
		m.mu.Unlock()
		return fmt.Errorf("%w: agregar requiere un producto escaneado y ausente de la bodega", domain.ErrIllegalOperation)
	}
	if quantity <= 0 {
		m.mu.Unlock()
		return fmt.Errorf("%w: quantity debe ser positiva", domain.ErrValidation)
	}
	if price.IsNegative() {
		m.mu.Unlock()
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}

	draft := ProductDraft{
		Name:        m.payload.ProductName,
		Description: m.payload.ProductDescription,
		Price:       price,
		Quantity:    quantity,
		CategoryID:  m.payload.CategoryID,
	}
	prev := m.verdict
	m.pending = &PendingMutation{Kind: MutationAdd}
	m.state = StateMutating
	m.mu.Unlock()

	go m.mutate(MutationAdd, prev, func(sess entity.Session) error {
		return m.mutator.AddProduct(ctx, sess, draft)
	})
	return nil
}

// SubmitEdit actualiza el producto encontrado con los campos capturados.
// Legal solo con veredicto Found. El nombre y la categoría provienen del
// payload escaneado, como en el flujo original de la pasarela.
func (m *Machine) SubmitEdit(ctx context.Context, fields EditFields) error {
	m.mu.Lock()

	if m.state != StateResolved || m.verdict.Kind != scan.VerdictFound {
		m.mu.Unlock()
		return fmt.Errorf("%w: editar requiere un producto escaneado y presente en la bodega", domain.ErrIllegalOperation)
	}
	if fields.Price != nil && fields.Price.IsNegative() {
		m.mu.Unlock()
		return fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	if fields.Quantity != nil && *fields.Quantity < 0 {
		m.mu.Unlock()
		return fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	}

	updated := *m.verdict.Product
	updated.Name = m.payload.ProductName
	updated.CategoryID = m.payload.CategoryID
	if fields.Description != nil {
		updated.Description = *fields.Description
	}
	if fields.Price != nil {
		updated.Price = *fields.Price
	}
	if fields.Quantity != nil {
		updated.Quantity = *fields.Quantity
	}

	prev := m.verdict
	m.pending = &PendingMutation{Kind: MutationEdit}
	m.state = StateMutating
	m.mu.Unlock()

	go m.mutate(MutationEdit, prev, func(sess entity.Session) error {
		return m.mutator.EditProduct(ctx, sess, updated)
	})
	return nil
}

// SubmitDelete elimina el producto encontrado de la bodega. Legal solo con
// veredicto Found.
func (m *Machine) SubmitDelete(ctx context.Context) error {
	m.mu.Lock()

	if m.state != StateResolved || m.verdict.Kind != scan.VerdictFound {
		m.mu.Unlock()
		return fmt.Errorf("%w: borrar requiere un producto escaneado y presente en la bodega", domain.ErrIllegalOperation)
	}

	productID := m.verdict.Product.ID
	prev := m.verdict
	m.pending = &PendingMutation{Kind: MutationDelete}
	m.state = StateMutating
	m.mu.Unlock()

	go m.mutate(MutationDelete, prev, func(sess entity.Session) error {
		return m.mutator.DeleteProduct(ctx, sess, productID)
	})
	return nil
}

// mutate ejecuta la llamada de escritura. En éxito la máquina vuelve a Idle
// con el veredicto limpio; en fallo se restaura el veredicto previo intacto
// (no se asume que el estado remoto cambió cuando la llamada falló).
func (m *Machine) mutate(kind MutationKind, prev scan.Verdict, call func(entity.Session) error) {
	sess, err := m.sessions.Get()
	if err == nil && !sess.Complete() {
		err = fmt.Errorf("%w: sesión incompleta", domain.ErrUnauthorized)
	}
	if err == nil {
		err = call(sess)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = nil
	if err != nil {
		m.state = StateResolved
		m.lastErr = err
		m.setVerdict(prev)
		m.events.OperationFailed(kind.String(), err)
		return
	}
	m.state = StateIdle
	m.payload = scan.Payload{}
	m.lastErr = nil
	m.setVerdict(scan.Unscanned())
	m.events.MutationCompleted(kind)
}

// setVerdict asigna el veredicto y notifica el cambio. Se invoca con el
// mutex tomado; los listeners no deben reentrar en la máquina.
func (m *Machine) setVerdict(v scan.Verdict) {
	changed := m.verdict.Kind != v.Kind || v.Kind == scan.VerdictFound
	m.verdict = v
	if changed {
		m.events.VerdictChanged(v)
	}
}
