package configs

import (
	"campuseats/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{}, &entity.EmailOTP{},
		&entity.Vendor{},
		&entity.MenuItem{}, &entity.MenuInstruction{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderItemInstruction{},
		&entity.Cart{}, &entity.CartItem{}, &entity.CartItemInstruction{},
		&entity.Favorite{},
		&entity.Notification{},
	)
}
