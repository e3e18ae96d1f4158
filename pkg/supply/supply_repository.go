package supply

import (
	"context"

	"Supply-Map-Dashboard/entities"

	"gorm.io/gorm"
)

type (
	SupplyRepository interface {
		CreateSupplyRequest(ctx context.Context, request *entities.SupplyRequest) error
		GetSupplyRequests(ctx context.Context, status string, page, limit int) ([]*entities.SupplyRequest, int64, error)
	}

	supplyRepository struct {
		db *gorm.DB
	}
)

func NewSupplyRepository(db *gorm.DB) SupplyRepository {
	return &supplyRepository{db: db}
}

func (r *supplyRepository) CreateSupplyRequest(ctx context.Context, request *entities.SupplyRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *supplyRepository) GetSupplyRequests(ctx context.Context, status string, page, limit int) ([]*entities.SupplyRequest, int64, error) {
	var requests []*entities.SupplyRequest
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.SupplyRequest{})
	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}
