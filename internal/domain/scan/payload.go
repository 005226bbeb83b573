package scan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/wims-scanner/internal/domain"
)

// Payload contenido decodificado de una etiqueta escaneada. El código QR
// lleva JSON con al menos productName; descripción y categoría son
// opcionales.
type Payload struct {
	ProductName        string `json:"productName"`
	ProductDescription string `json:"productDescription"`
	CategoryID         string `json:"categoryId"`
}

// ParsePayload decodifica la cadena cruda entregada por el escáner. Un JSON
// malformado o sin productName invalida el escaneo actual (ErrParse); no es
// un error de red y se recupera localmente re-escaneando.
func ParsePayload(raw string) (Payload, error) {
	var p Payload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	if strings.TrimSpace(p.ProductName) == "" {
		return Payload{}, fmt.Errorf("%w: productName requerido", domain.ErrParse)
	}
	return p, nil
}
