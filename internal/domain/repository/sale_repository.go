package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicolasct/ventapos-api/internal/domain/entity"
)

// SaleFilter filtros del historial de ventas (rango de fechas y de total).
type SaleFilter struct {
	Desde    *time.Time
	Hasta    *time.Time
	TotalMin *decimal.Decimal
	TotalMax *decimal.Decimal
	Limit    int
	Offset   int
}

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son de solo-agregado: se crean una vez y nunca se mutan.
// El registro del comprador guarda solo la referencia (id de venta),
// no el cuerpo completo, para evitar duplicación y datos obsoletos.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	List(filter SaleFilter) ([]*entity.Sale, error)
	// AppendUserSale agrega la referencia venta-usuario para el historial personal.
	AppendUserSale(userID, saleID string) error
	// ListByUser resuelve el historial del usuario vía las referencias guardadas.
	ListByUser(userID string, filter SaleFilter) ([]*entity.Sale, error)
}
