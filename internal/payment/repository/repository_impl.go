package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/hotaeshwar/crm-sub000/internal/payment/domain"
	"github.com/hotaeshwar/crm-sub000/pkg/db/option"
	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, payment *domain.Payment) error {
	return db.WithContext(ctx).Create(payment).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, userID snowflake.ID, invoiceID snowflake.ID, page pagination.Pagination) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	stmt := db.WithContext(ctx).
		Model(&domain.Payment{}).
		Where("user_id = ?", userID)
	if invoiceID != 0 {
		stmt = stmt.Where("invoice_id = ?", invoiceID)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&domain.Payment{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteByInvoiceIDs(ctx context.Context, db *gorm.DB, userID snowflake.ID, invoiceIDs []snowflake.ID) (int64, error) {
	if len(invoiceIDs) == 0 {
		return 0, nil
	}
	tx := db.WithContext(ctx).
		Where("user_id = ? AND invoice_id IN ?", userID, invoiceIDs).
		Delete(&domain.Payment{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
