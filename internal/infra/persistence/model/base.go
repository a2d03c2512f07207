// Package model holds the GORM-specific structs that mirror the database tables.
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID fills a zero primary key with a time-ordered UUIDv7.
func newID(id *uuid.UUID) error {
	if *id != uuid.Nil {
		return nil
	}

	generated, err := uuid.NewV7()
	if err != nil {
		return err
	}
	*id = generated

	return nil
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&RoleModel{},
		&UserModel{},
		&AddressModel{},
		&CategoryModel{},
		&ProductModel{},
		&VariantModel{},
		&ImageModel{},
		&CartModel{},
		&CartItemModel{},
	}
}

// BeforeCreate assigns the primary key.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *RoleModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *AddressModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *CartModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *CartItemModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *CategoryModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *ProductModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *VariantModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }

// BeforeCreate assigns the primary key.
func (m *ImageModel) BeforeCreate(_ *gorm.DB) error { return newID(&m.ID) }
