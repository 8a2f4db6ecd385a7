package lookuplog

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository records terminal pipeline outcomes for operators. Nothing reads it
// back on the request path.
type Repository interface {
	LogLookup(ctx context.Context, lookup Lookup) error
	GetRecentLookup(ctx context.Context, postalCode string) (*Lookup, error)
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

func (r *LookupSQLRepository) LogLookup(ctx context.Context, lookup Lookup) error {
	lookup.ID = 0
	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = time.Now()
	}

	return r.db.WithContext(ctx).Create(&lookup).Error
}

func (r *LookupSQLRepository) GetRecentLookup(ctx context.Context, postalCode string) (*Lookup, error) {
	var lookup Lookup
	err := r.db.WithContext(ctx).Where("postal_code = ?", postalCode).Order("created_at DESC").First(&lookup).Error
	if err != nil {
		return nil, err
	}
	return &lookup, nil
}
