package repository

import (
	"context"

	"gorm.io/gorm"
)

// CountRelated counts rows of model whose foreign key column references id.
// A record with no related rows yields zero, not an error.
func CountRelated(ctx context.Context, db *gorm.DB, model any, column string, id uint) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(model).Where(column+" = ?", id).Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
