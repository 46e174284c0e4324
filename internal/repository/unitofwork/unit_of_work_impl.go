package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"guruvela-be/internal/model"
	"guruvela-be/internal/repository/contract"
	"guruvela-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) JosaaCutoffRepository() contract.CutoffRepository {
	return implementation.NewCutoffRepository(u.getDB(), model.CollegeCutoffTable)
}

func (u *UnitOfWorkImpl) CsabCutoffRepository() contract.CutoffRepository {
	return implementation.NewCutoffRepository(u.getDB(), model.CsabCutoffTable)
}

func (u *UnitOfWorkImpl) FixedResponseRepository() contract.FixedResponseRepository {
	return implementation.NewFixedResponseRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContentPageRepository() contract.ContentPageRepository {
	return implementation.NewContentPageRepository(u.getDB())
}
