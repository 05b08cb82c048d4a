package sqldb

import (
	"context"

	"gorm.io/gorm"
)

// txKey context中事务DB的key
type txKey struct{}

// TxManager 事务管理器
// 通过context传递事务DB，fn内所有Repository操作在同一事务中执行
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时ROLLBACK，返回nil时COMMIT；嵌套调用复用外层事务
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    b, err := bookRepo.LockByID(ctx, bookID)
//	    if err != nil {
//	        return err
//	    }
//	    if err := orderRepo.Create(ctx, o); err != nil {
//	        return err // 回滚
//	    }
//	    return bookRepo.DecrStock(ctx, bookID, quantity)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn 从context获取事务DB，没有则使用默认DB
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
