package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
// It works on PostgreSQL and MySQL; only Reset needs dialect specific SQL.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db: db,
	}
}

// Add saves a new order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update overwrites the order row and reconciles its items: rows the aggregate
// no longer holds are deleted, items with an id are updated, the rest inserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"customer_name": dto.CustomerName,
		"address":       dto.Address,
		"payment_type":  dto.PaymentType,
		"delivery_type": dto.DeliveryType,
		"status":        dto.Status,
	})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), gorm.ErrRecordNotFound)
	}

	kept := make([]int64, 0, len(dto.Items))
	for _, item := range dto.Items {
		if item.ID != 0 {
			kept = append(kept, item.ID)
		}
	}

	orphans := db.Where("order_id = ?", dto.ID)
	if len(kept) > 0 {
		orphans = orphans.Where("id NOT IN ?", kept)
	}
	if err := orphans.Delete(&ItemDTO{}).Error; err != nil {
		return nil, err
	}

	for i := range dto.Items {
		item := &dto.Items[i]
		if item.ID == 0 {
			if err := db.Create(item).Error; err != nil {
				return nil, err
			}
			continue
		}

		// a map keeps zero quantity and price in the update
		err := db.Model(&ItemDTO{}).
			Where("id = ? AND order_id = ?", item.ID, dto.ID).
			Updates(map[string]any{
				"item_name": item.ItemName,
				"quantity":  item.Quantity,
				"price":     item.Price,
			}).Error
		if err != nil {
			return nil, err
		}
	}

	return toDomain(dto)
}

// Get retrieves an order by ID with its items in id order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", id.Int64()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an order and its items. A missing order is not an error.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id.Int64()).Delete(&ItemDTO{}).Error; err != nil {
		return err
	}

	return db.Where("id = ?", id.Int64()).Delete(&OrderDTO{}).Error
}

// Reset deletes all items and orders and restarts both id sequences at 1.
// On MySQL the sequence restart commits implicitly, so only the deletes are
// covered by the surrounding transaction.
func (r *GormOrderRepository) Reset(ctx context.Context) error {
	db := r.db.WithContext(ctx)
	all := db.Session(&gorm.Session{AllowGlobalUpdate: true})

	if err := all.Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if err := all.Delete(&OrderDTO{}).Error; err != nil {
		return err
	}

	tables := []string{ItemDTO{}.TableName(), OrderDTO{}.TableName()}
	dialect := db.Dialector.Name()

	for _, table := range tables {
		var stmt string
		switch dialect {
		case "postgres":
			stmt = "ALTER SEQUENCE " + pq.QuoteIdentifier(table+"_id_seq") + " RESTART WITH 1"
		case "mysql":
			stmt = "ALTER TABLE `" + table + "` AUTO_INCREMENT = 1"
		default:
			return fmt.Errorf("restarting ids is not supported for dialect %q", dialect)
		}

		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
