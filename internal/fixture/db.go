package fixture

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"jadwal-guru/internal/model"
)

// LoadDB reads every table once from a SQL database.
func LoadDB(ctx context.Context, db *gorm.DB) (*Dataset, error) {
	ds := &Dataset{}
	for _, t := range ds.tables() {
		if err := db.WithContext(ctx).Table(t.name).Order("id ASC").Find(t.dst).Error; err != nil {
			return nil, fmt.Errorf("load table %s: %w", t.name, err)
		}
	}
	return ds, nil
}

// Seed copies ds into empty tables inside one transaction.
// It reports false without writing when users already holds rows.
func Seed(ctx context.Context, db *gorm.DB, ds *Dataset) (bool, error) {
	seeded := false
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, t := range ds.tables() {
			if rowCount(t.dst) == 0 {
				continue
			}
			if err := tx.Table(t.name).CreateInBatches(t.dst, 200).Error; err != nil {
				return fmt.Errorf("seed table %s: %w", t.name, err)
			}
		}
		seeded = true
		return nil
	})
	return seeded, err
}
