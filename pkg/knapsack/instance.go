// Package knapsack describes 0/1 knapsack problem instances and the cliff
// scorer that rates bit-vector solutions against them.
package knapsack

import (
	"github.com/evoknap/evoknap/pkg/core"
	"github.com/evoknap/evoknap/pkg/errors"
)

// Item is one item available to pack.
type Item struct {
	ID     uint64
	Value  uint64
	Weight uint64
}

// Instance is a static knapsack problem: the items to choose from and the
// capacity. Instances are immutable once constructed and safe to share
// read-only across any number of concurrent scorer invocations.
type Instance struct {
	name     string
	items    []Item
	capacity uint64
}

// New constructs an instance from items and a capacity. The item slice is
// copied so the caller cannot alias the instance's state.
func New(name string, items []Item, capacity uint64) (*Instance, error) {
	if len(items) == 0 {
		return nil, errors.New(errors.InvalidInput, "knapsack instance must have at least one item")
	}
	owned := make([]Item, len(items))
	copy(owned, items)
	return &Instance{name: name, items: owned, capacity: capacity}, nil
}

// Name returns the instance's display name (usually the source file name).
func (inst *Instance) Name() string {
	return inst.name
}

// NumItems returns the number of items, which is also the genome length for
// any run against this instance.
func (inst *Instance) NumItems() int {
	return len(inst.items)
}

// Capacity returns the maximum total weight the knapsack can hold.
func (inst *Instance) Capacity() uint64 {
	return inst.capacity
}

// Item returns the item at index i.
func (inst *Instance) Item(i int) Item {
	return inst.items[i]
}

// WeightOf returns the total weight of the items selected by the genome.
func (inst *Instance) WeightOf(g core.Genome) uint64 {
	var total uint64
	for i := range inst.items {
		if g.Has(i) {
			total += inst.items[i].Weight
		}
	}
	return total
}

// ValueOf returns the total value of the items selected by the genome.
func (inst *Instance) ValueOf(g core.Genome) uint64 {
	var total uint64
	for i := range inst.items {
		if g.Has(i) {
			total += inst.items[i].Value
		}
	}
	return total
}
