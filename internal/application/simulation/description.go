package simulation

import (
	"fmt"

	"github.com/gestock/mockdata/internal/domain/entity"
)

// description arma un texto legible para la transacción a partir de plantillas
// fijas por tipo. El contenido es cosmético; los números de pedido/cliente son
// puro sabor.
func (s *Simulator) description(txType string, product entity.Product, warehouse entity.Warehouse) string {
	if txType == entity.TransactionEntrada {
		switch s.rng.Intn(6) {
		case 0:
			return fmt.Sprintf("Compra a proveedor %s", product.Supplier)
		case 1:
			return fmt.Sprintf("Reposición de stock - %s", product.Name)
		case 2:
			return "Entrada por compra mayorista"
		case 3:
			return fmt.Sprintf("Recepción de mercancía - Pedido #%d", randBetween(s.rng, 1000, 9999))
		case 4:
			return fmt.Sprintf("Reabastecimiento %s", warehouse.Name)
		default:
			return fmt.Sprintf("Compra directa - %s", product.Supplier)
		}
	}

	switch s.rng.Intn(7) {
	case 0:
		return fmt.Sprintf("Venta al cliente - Pedido #%d", randBetween(s.rng, 1000, 9999))
	case 1:
		return "Salida por venta mostrador"
	case 2:
		return fmt.Sprintf("Entrega a cliente - %s", product.Name)
	case 3:
		return "Venta corporativa"
	case 4:
		return fmt.Sprintf("Despacho desde %s", warehouse.Name)
	case 5:
		return "Salida por venta directa"
	default:
		return fmt.Sprintf("Entrega domicilio - Cliente #%d", randBetween(s.rng, 100, 999))
	}
}
