package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) error
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID, invoiceID snowflake.ID, page pagination.Pagination) ([]*Payment, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error
	DeleteByInvoiceIDs(ctx context.Context, db *gorm.DB, userID snowflake.ID, invoiceIDs []snowflake.ID) (int64, error)
}
