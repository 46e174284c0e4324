package unitofwork

import (
	"context"

	"guruvela-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	JosaaCutoffRepository() contract.CutoffRepository
	CsabCutoffRepository() contract.CutoffRepository
	FixedResponseRepository() contract.FixedResponseRepository
	ContentPageRepository() contract.ContentPageRepository
}
