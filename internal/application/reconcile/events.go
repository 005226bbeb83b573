package reconcile

import (
	"github.com/jhoicas/wims-scanner/internal/domain/scan"
	"github.com/jhoicas/wims-scanner/pkg/logger"
)

// Events notificaciones hacia el colaborador de UI: cambios de veredicto,
// fallos visibles al usuario y mutaciones completadas. Los callbacks se
// invocan con el mutex de la máquina tomado, así que no deben reentrar.
type Events interface {
	VerdictChanged(v scan.Verdict)
	OperationFailed(op string, err error)
	MutationCompleted(kind MutationKind)
}

// NopEvents descarta todas las notificaciones.
type NopEvents struct{}

func (NopEvents) VerdictChanged(scan.Verdict)    {}
func (NopEvents) OperationFailed(string, error)  {}
func (NopEvents) MutationCompleted(MutationKind) {}

// LogEvents registra las notificaciones vía zerolog. Es el listener por
// defecto cuando la UI consulta el estado por sondeo en lugar de
// suscribirse.
type LogEvents struct {
	log *logger.Logger
}

// NewLogEvents construye el listener.
func NewLogEvents(log *logger.Logger) *LogEvents {
	return &LogEvents{log: log}
}

func (e *LogEvents) VerdictChanged(v scan.Verdict) {
	ev := e.log.Info().Str("verdict", v.Kind.String())
	if v.Product != nil {
		ev = ev.Str("product_id", v.Product.ID).Str("product_name", v.Product.Name)
	}
	ev.Msg("veredicto actualizado")
}

func (e *LogEvents) OperationFailed(op string, err error) {
	e.log.Warn().Str("op", op).Err(err).Msg("operación fallida")
}

func (e *LogEvents) MutationCompleted(kind MutationKind) {
	e.log.Info().Str("kind", kind.String()).Msg("mutación completada")
}
