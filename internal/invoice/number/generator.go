// Package number generates human-readable invoice numbers.
package number

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Generator issues invoice numbers of the form INV-DDMMYYYY-NNNN.
//
// NNNN comes from a per-user per-day counter persisted in
// invoice_sequences, so numbers are unique by construction. The first
// number of a day ends in 1000 and the suffix grows from there; past
// 9000 numbers in a day it widens to five digits instead of wrapping,
// keeping numbers unique at the cost of the fixed width.
type Generator struct {
	db *gorm.DB
}

func NewGenerator(db *gorm.DB) *Generator {
	return &Generator{db: db}
}

// Next reserves and returns the next invoice number for the user on the
// given date. The counter increment is a single atomic upsert.
func (g *Generator) Next(ctx context.Context, userID snowflake.ID, date time.Time) (string, error) {
	day := date.Format("02012006")

	var counter int64
	err := g.db.WithContext(ctx).Raw(
		`INSERT INTO invoice_sequences (user_id, day, counter)
		 VALUES (?, ?, 1)
		 ON CONFLICT (user_id, day)
		 DO UPDATE SET counter = invoice_sequences.counter + 1
		 RETURNING counter`,
		userID,
		day,
	).Scan(&counter).Error
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("INV-%s-%d", day, 999+counter), nil
}
