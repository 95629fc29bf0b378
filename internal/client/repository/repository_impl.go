package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/hotaeshwar/crm-sub000/internal/client/domain"
	"github.com/hotaeshwar/crm-sub000/pkg/db/option"
	"github.com/hotaeshwar/crm-sub000/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO clients (id, user_id, name, email, phone, company, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		client.ID,
		client.UserID,
		client.Name,
		client.Email,
		client.Phone,
		client.Company,
		client.Metadata,
		client.CreatedAt,
		client.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) (*domain.Client, error) {
	var client domain.Client
	err := db.WithContext(ctx).Raw(
		`SELECT id, user_id, name, email, phone, company, metadata, created_at, updated_at
		 FROM clients WHERE user_id = ? AND id = ?`,
		userID,
		id,
	).Scan(&client).Error
	if err != nil {
		return nil, err
	}
	if client.ID == 0 {
		return nil, nil
	}
	return &client, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, userID snowflake.ID, filter domain.ListClientFilter, page pagination.Pagination) ([]*domain.Client, error) {
	var clients []*domain.Client
	stmt := db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("user_id = ?", userID)
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		stmt = stmt.Where("(name LIKE ? OR email LIKE ? OR company LIKE ?)", pattern, pattern, pattern)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, client *domain.Client) error {
	tx := db.WithContext(ctx).Exec(
		`UPDATE clients SET name = ?, email = ?, phone = ?, company = ?, updated_at = ?
		 WHERE user_id = ? AND id = ?`,
		client.Name,
		client.Email,
		client.Phone,
		client.Company,
		client.UpdatedAt,
		client.UserID,
		client.ID,
	)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, userID, id snowflake.ID) error {
	tx := db.WithContext(ctx).Exec(
		`DELETE FROM clients WHERE user_id = ? AND id = ?`,
		userID,
		id,
	)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
