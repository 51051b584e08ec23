package inmem

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// UnitOfWorkFactory creates pass-through units of work over one shared
// in-memory repository.
type UnitOfWorkFactory struct {
	repo *Repository
}

// NewUnitOfWorkFactory creates a factory bound to the given repository.
func NewUnitOfWorkFactory(repo *Repository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repo: repo}
}

// Create produces a new pass-through UnitOfWork.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repo: f.repo}
}

// UnitOfWork satisfies the transaction contract without transactional
// behavior: the in-memory store applies every operation immediately.
type UnitOfWork struct {
	repo *Repository
}

// Begin is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (uow *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op; already-applied operations stay applied.
func (uow *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the shared in-memory repository.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.repo
}
