package postgres

import (
	"ordermanagement/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or alters the orders and order_items tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
}
