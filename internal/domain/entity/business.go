package entity

import "time"

// Tamaños de negocio; escalan el número de usuarios, almacenes y el stock inicial.
const (
	SizeSmall  = "Pequeña"
	SizeMedium = "Mediana"
	SizeLarge  = "Grande"
)

// Business representa un negocio (tenant) del sistema demo.
type Business struct {
	ID           int
	Name         string
	Industry     string
	BusinessType string // Supermercado, Farmacia, Ferretería, etc.
	Size         string
	City         string
	Region       string
	CreatedAt    time.Time
}
