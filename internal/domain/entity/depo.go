package entity

import "time"

// Depo bir şantiyedeki malzeme deposunu temsil eder.
type Depo struct {
	ID        string
	SantiyeID string
	Ad        string
	Sorumlu   string // depo sorumlusunun adı
	CreatedAt time.Time
	UpdatedAt time.Time
}
