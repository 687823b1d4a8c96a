package models

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusFulfilled OrderStatus = "fulfilled"
)

type Customer struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"        json:"id"`
	Name  string `gorm:"size:100;not null"               json:"name"`
	Email string `gorm:"size:120;uniqueIndex;not null"   json:"email"`
	Phone string `gorm:"size:15;not null"                json:"phone"`
}

type CustomerAccount struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"        json:"id"`
	Username     string    `gorm:"size:100;uniqueIndex;not null"   json:"username"`
	PasswordHash string    `gorm:"not null"                        json:"-"`
	CustomerID   uint      `gorm:"index;not null"                  json:"customer_id"`
	Customer     *Customer `gorm:"constraint:OnDelete:CASCADE"     json:"-"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string  `gorm:"size:100;not null"         json:"name"`
	Price float64 `gorm:"not null;check:price>=0"   json:"price"`
	Stock int     `gorm:"not null;default:0"        json:"stock"`
}

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement"                        json:"id"`
	CustomerID uint        `gorm:"index;not null"                                  json:"customer_id"`
	Customer   *Customer   `gorm:"constraint:OnDelete:CASCADE"                     json:"-"`
	Date       time.Time   `gorm:"not null"                                        json:"date"`
	Status     OrderStatus `gorm:"size:20;not null;default:'placed'"               json:"status"`
	Lines      []OrderLine `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
}

type OrderLine struct {
	OrderID   uint     `gorm:"primaryKey;autoIncrement:false"   json:"-"`
	ProductID uint     `gorm:"primaryKey;autoIncrement:false"   json:"product_id"`
	Product   *Product `gorm:"constraint:OnDelete:RESTRICT"     json:"-"`
	Quantity  int      `gorm:"not null"                         json:"quantity"`
}

func (OrderLine) TableName() string {
	return "order_lines"
}

// All returns every entity in migration order.
func All() []any {
	return []any{&Customer{}, &CustomerAccount{}, &Product{}, &Order{}, &OrderLine{}}
}
