package models

import "gorm.io/gorm"

// Project groups up to MaxProductsPerProject products under one monitoring
// campaign. Once closed it stays closed.
type Project struct {
	gorm.Model

	Name     string `gorm:"not null"`
	OwnerID  uint   `gorm:"not null;index"`
	IsClosed bool   `gorm:"not null;default:false"`

	// Relationships
	Owner    User      `gorm:"foreignKey:OwnerID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Products []Product `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// MaxProductsPerProject caps how many installations one project may monitor.
const MaxProductsPerProject = 3
