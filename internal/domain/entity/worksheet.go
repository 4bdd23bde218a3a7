// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/google/uuid"

	domainerror "github.com/khatiyan/backend/internal/domain/error"
	"github.com/khatiyan/backend/internal/domain/valueobject"
)

// Worksheet holds the inputs of one khatiyan calculation and the results of
// the last explicit Calculate call. Any mutation clears the cached results,
// so stale figures are never served. A Worksheet is not safe for concurrent use.
type Worksheet struct {
	totalArea float64
	owners    []*Owner
	labels    valueobject.TierLabels

	results    []CalculationResult
	warning    *valueobject.ShareWarning
	calculated bool
}

// NewWorksheet creates an empty worksheet that formats with labels.
func NewWorksheet(labels valueobject.TierLabels) *Worksheet {
	return &Worksheet{labels: labels}
}

// TotalArea returns the declared khatiyan area.
func (w *Worksheet) TotalArea() float64 {
	return w.totalArea
}

// SetTotalArea sets the declared khatiyan area.
func (w *Worksheet) SetTotalArea(area float64) {
	w.totalArea = area
	w.invalidate()
}

// AddOwner appends an owner with a zero share. An empty name is replaced by
// the default name for the owner's position.
func (w *Worksheet) AddOwner(name string) *Owner {
	return w.AppendOwner(Owner{Name: name})
}

// AppendOwner appends a copy of owner. A nil ID is replaced by a fresh one and
// an empty name by the default name for the owner's position.
func (w *Worksheet) AppendOwner(owner Owner) *Owner {
	if owner.ID == uuid.Nil {
		owner.ID = uuid.New()
	}
	if owner.Name == "" {
		owner.Name = w.labels.DefaultOwnerName(len(w.owners) + 1)
	}
	o := &owner
	w.owners = append(w.owners, o)
	w.invalidate()
	return o
}

// UpdateOwner applies a partial update to the owner with the given id.
func (w *Worksheet) UpdateOwner(id uuid.UUID, update OwnerUpdate) error {
	owner := w.find(id)
	if owner == nil {
		return ownerNotFound()
	}
	update.apply(owner)
	w.invalidate()
	return nil
}

// RemoveOwner removes the owner with the given id.
func (w *Worksheet) RemoveOwner(id uuid.UUID) error {
	for i, o := range w.owners {
		if o.ID == id {
			w.owners = append(w.owners[:i], w.owners[i+1:]...)
			w.invalidate()
			return nil
		}
	}
	return ownerNotFound()
}

// Reset clears the area, owners and results.
func (w *Worksheet) Reset() {
	w.totalArea = 0
	w.owners = nil
	w.invalidate()
}

// Owners returns a snapshot of the owners in insertion order.
func (w *Worksheet) Owners() []Owner {
	owners := make([]Owner, len(w.owners))
	for i, o := range w.owners {
		owners[i] = *o
	}
	return owners
}

// Results returns the results of the last calculation. ok is false when the
// worksheet changed since, or was never calculated.
func (w *Worksheet) Results() (results []CalculationResult, ok bool) {
	if !w.calculated {
		return nil, false
	}
	return w.results, true
}

// Warning returns the advisory warning of the last calculation, if any.
func (w *Worksheet) Warning() *valueobject.ShareWarning {
	return w.warning
}

// Calculate validates the inputs and recomputes every result.
// On a blocking error no results are kept.
func (w *Worksheet) Calculate() error {
	w.invalidate()

	owners := w.Owners()
	if err := ValidateInputs(w.totalArea, owners); err != nil {
		return err
	}

	w.results, w.warning = ApportionShares(w.totalArea, owners, w.labels)
	w.calculated = true
	return nil
}

func (w *Worksheet) invalidate() {
	w.results = nil
	w.warning = nil
	w.calculated = false
}

func (w *Worksheet) find(id uuid.UUID) *Owner {
	for _, o := range w.owners {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func ownerNotFound() error {
	return domainerror.NewCalculationError(
		domainerror.ErrCodeOwnerNotFound,
		"owner not found",
		domainerror.ErrOwnerNotFound,
	)
}
