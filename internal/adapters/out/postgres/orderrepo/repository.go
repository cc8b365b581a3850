package orderrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/pkg/errs"
)

// GormOrderRepository implements order persistence for the directory service
// using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order, line items included.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order. Line items are replaced wholesale; they
// never change independently of their order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("Items").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if len(dto.Items) > 0 {
			if err := tx.Create(&dto.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Assign saves a carrier assignment, but only when the stored row still has
// no carrier. The WHERE clause arbitrates racing accepts: the loser's write
// touches zero rows and comes back as order.ErrCarrierAlreadyAssigned.
func (r *GormOrderRepository) Assign(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND carrier_id IS NULL", dto.ID).
		Select("*").
		Omit("Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return order.ErrCarrierAlreadyAssigned
	}
	return nil
}

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByShipper retrieves one page of a shipper's orders, newest first,
// together with the total count.
func (r *GormOrderRepository) ListByShipper(
	ctx context.Context, shipperID kernel.UUID, page, pageSize int,
) ([]*order.Order, int64, error) {
	return r.list(ctx, page, pageSize, "shipper_id = ?", shipperID.Bytes())
}

// ListByCarrier retrieves one page of a carrier's assigned orders, newest
// first, together with the total count.
func (r *GormOrderRepository) ListByCarrier(
	ctx context.Context, carrierID kernel.UUID, page, pageSize int,
) ([]*order.Order, int64, error) {
	return r.list(ctx, page, pageSize, "carrier_id = ?", carrierID.Bytes())
}

// ListUnassignedPending retrieves one page of pending orders without a
// carrier, newest first, together with the total count.
func (r *GormOrderRepository) ListUnassignedPending(
	ctx context.Context, page, pageSize int,
) ([]*order.Order, int64, error) {
	return r.list(ctx, page, pageSize, "status = ? AND carrier_id IS NULL", int(order.Pending))
}

func (r *GormOrderRepository) list(
	ctx context.Context, page, pageSize int, condition string, args ...any,
) ([]*order.Order, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	query := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where(condition, args...).
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []OrderDTO
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, 0, convErr
		}
		orders = append(orders, aggregate)
	}

	return orders, total, nil
}
