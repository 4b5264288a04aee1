package storage

import "stakedrop/internal/model"

// Storage defines a sink for drop allocations.
type Storage interface {
	PutAllocations(rows []model.Allocation) error
}
