package scan

import "github.com/jhoicas/wims-scanner/internal/domain/entity"

// VerdictKind resultado de membresía de un escaneo contra la bodega
// seleccionada.
type VerdictKind int

const (
	// VerdictUnscanned no hay escaneo resuelto.
	VerdictUnscanned VerdictKind = iota
	// VerdictNotFound el producto escaneado no está en la bodega.
	VerdictNotFound
	// VerdictFound el producto escaneado existe en la bodega.
	VerdictFound
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictNotFound:
		return "not_found"
	case VerdictFound:
		return "found"
	default:
		return "unscanned"
	}
}

// Verdict veredicto activo. Product solo está presente cuando Kind es
// VerdictFound. Hay exactamente un veredicto activo a la vez; un escaneo
// nuevo descarta el anterior de inmediato.
type Verdict struct {
	Kind    VerdictKind
	Product *entity.Product
}

// Unscanned veredicto inicial y de reseteo.
func Unscanned() Verdict {
	return Verdict{Kind: VerdictUnscanned}
}
