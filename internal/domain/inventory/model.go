package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID             string
	MedicationName string
	Unit           string
	Quantity       int
	ReorderLevel   int
	Supplier       string
	Price          decimal.Decimal
	LastUpdated    time.Time
}

// IsLowStock: el nivel de reorden ya cuenta como stock bajo.
func (i Item) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// Patch: solo se aplican los campos no nil.
type Patch struct {
	MedicationName *string
	Unit           *string
	Quantity       *int
	ReorderLevel   *int
	Supplier       *string
	Price          *decimal.Decimal
}

func (p Patch) apply(it Item) Item {
	if p.MedicationName != nil {
		it.MedicationName = *p.MedicationName
	}
	if p.Unit != nil {
		it.Unit = *p.Unit
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.ReorderLevel != nil {
		it.ReorderLevel = *p.ReorderLevel
	}
	if p.Supplier != nil {
		it.Supplier = *p.Supplier
	}
	if p.Price != nil {
		it.Price = *p.Price
	}
	return it
}
