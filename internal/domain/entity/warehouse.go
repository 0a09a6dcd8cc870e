package entity

import "time"

// Warehouse representa una bodega. Cada bodega pertenece a exactamente una empresa,
// identificada solo por su ID (no se materializa una entidad Company).
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
