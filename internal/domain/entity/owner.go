// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"

	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// Owner represents a co-owner listed on a khatiyan.
type Owner struct {
	ID    uuid.UUID
	Name  string
	Share valueobject.LandUnits
	// IsSelling marks an owner who has sold part of their land.
	IsSelling bool
	// SoldAmount is expressed in decimal land area, not in tiers.
	SoldAmount float64
}

// NewOwner creates a new Owner entity with a fresh identifier.
func NewOwner(name string, share valueobject.LandUnits) *Owner {
	return &Owner{
		ID:    uuid.New(),
		Name:  name,
		Share: share,
	}
}

// EffectiveSoldAmount returns the sale amount that applies to the calculation.
func (o Owner) EffectiveSoldAmount() float64 {
	if !o.IsSelling {
		return 0
	}
	return o.SoldAmount
}

// OwnerUpdate carries a partial update for an owner. Nil fields are left unchanged.
type OwnerUpdate struct {
	Name       *string
	Share      *valueobject.LandUnits
	IsSelling  *bool
	SoldAmount *float64
}

// apply mutates the owner in place.
func (u OwnerUpdate) apply(o *Owner) {
	if u.Name != nil {
		o.Name = *u.Name
	}
	if u.Share != nil {
		o.Share = *u.Share
	}
	if u.IsSelling != nil {
		o.IsSelling = *u.IsSelling
	}
	if u.SoldAmount != nil {
		o.SoldAmount = *u.SoldAmount
	}
}
