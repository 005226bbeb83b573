package entity

// Warehouse bodega con su lista de productos anidada.
type Warehouse struct {
	ID       string
	Name     string
	Products []Product
}

// Catalog instantánea completa del catálogo remoto. Se obtiene fresca en
// cada ciclo de reconciliación y se descarta tras el emparejamiento; nunca
// se fusiona incrementalmente ni se cachea entre ciclos.
type Catalog []Warehouse

// FindWarehouse devuelve la bodega con el id dado, o nil si no existe.
func (c Catalog) FindWarehouse(id string) *Warehouse {
	for i := range c {
		if c[i].ID == id {
			return &c[i]
		}
	}
	return nil
}
