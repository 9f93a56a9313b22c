package models

import "gorm.io/gorm"

// A catalog entry. Read-only from this service's perspective; rows are
// seeded at startup from data/products.json.
type Product struct {
	gorm.Model
	Categories string
	Weight     float64
	Title      string `gorm:"not null;index"`
	Calories   float64

	// One explicit flag per blood type 1-4 instead of the catalog's
	// sparse array with an unused index 0.
	NotAllowedType1 bool
	NotAllowedType2 bool
	NotAllowedType3 bool
	NotAllowedType4 bool
}

// NotAllowedFor reports whether the product is restricted for the given
// blood type. Unknown types are never restricted.
func (p *Product) NotAllowedFor(bloodType int) bool {
	switch bloodType {
	case 1:
		return p.NotAllowedType1
	case 2:
		return p.NotAllowedType2
	case 3:
		return p.NotAllowedType3
	case 4:
		return p.NotAllowedType4
	default:
		return false
	}
}
