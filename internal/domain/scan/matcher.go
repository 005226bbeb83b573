package scan

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/wims-scanner/internal/domain/entity"
)

// Normalize prepara un nombre de producto para comparación: forma NFC,
// recorte de espacios y minúsculas. Idempotente, de modo que etiquetas
// impresas con composición Unicode distinta comparan iguales.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// Match resuelve el veredicto de membresía de un payload contra la bodega
// seleccionada del catálogo. Función pura y determinista: la primera
// coincidencia en orden de catálogo gana; una bodega ausente o vacía produce
// NotFound (el producto simplemente no puede estar ahí).
func Match(p Payload, catalog entity.Catalog, warehouseID string) Verdict {
	wh := catalog.FindWarehouse(warehouseID)
	if wh == nil {
		return Verdict{Kind: VerdictNotFound}
	}
	want := Normalize(p.ProductName)
	for i := range wh.Products {
		if Normalize(wh.Products[i].Name) == want {
			found := wh.Products[i]
			return Verdict{Kind: VerdictFound, Product: &found}
		}
	}
	return Verdict{Kind: VerdictNotFound}
}
