package migration

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/litmart/litmart-backend/internal/domain"
)

// Run executes AutoMigrate for all tables and seeds default data if empty.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.Member{},
		&domain.Author{},
		&domain.Publisher{},
		&domain.Series{},
		&domain.Category{},
		&domain.Book{},
		&domain.CartItem{},
		&domain.ShippingMethod{},
		&domain.Bill{},
		&domain.BillItem{},
		&domain.Event{},
		&domain.EventTarget{},
		&domain.EventRule{},
		&domain.EventAction{},
		&domain.EventImage{},
		&domain.EventLog{},
		&domain.Payment{},
		&domain.Notification{},
		&domain.ChatMessage{},
	); err != nil {
		return err
	}

	var count int64
	db.Model(&domain.ShippingMethod{}).Count(&count)
	if count == 0 {
		return seedShippingMethods(db)
	}

	return nil
}

func seedShippingMethods(db *gorm.DB) error {
	methods := []domain.ShippingMethod{
		{Name: "Standard", Price: decimal.NewFromInt(3000), IsActive: true},
		{Name: "Express", Price: decimal.NewFromInt(6000), IsActive: true},
		{Name: "Pickup", Price: decimal.Zero, IsActive: true},
	}

	return db.Create(&methods).Error
}
