package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	Save(ctx context.Context, db *gorm.DB, invoice *Invoice) error
	FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*Invoice, error)
	List(ctx context.Context, db *gorm.DB, userID snowflake.ID, filter ListInvoiceFilter, page pagination.Pagination) ([]*Invoice, error)
	ListAll(ctx context.Context, db *gorm.DB, userID snowflake.ID) ([]*Invoice, error)
	ListByIssueDateRange(ctx context.Context, db *gorm.DB, userID snowflake.ID, from, to time.Time) ([]*Invoice, error)
	Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error
	DeleteByIssueDateRange(ctx context.Context, db *gorm.DB, userID snowflake.ID, from, to time.Time) (int64, error)
}
