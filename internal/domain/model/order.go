package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// 配送先（注文時点のスナップショット）
type ShippingAddress struct {
	FullName string `gorm:"type:varchar(255)" json:"full_name"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	City     string `gorm:"type:varchar(100)" json:"city"`
	District string `gorm:"type:varchar(100)" json:"district"`
	Note     string `gorm:"type:text" json:"note"`
}

// 注文。user_idは作成後に変わらない（所有権は移転しない）。
// 削除はしない（キャンセルは終端ステータス）。
type Order struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	//作成時点のユーザー名
	Username string `gorm:"type:varchar(255);not null" json:"username"`
	Email    string `gorm:"type:varchar(255)" json:"email"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`

	TotalAmount int64 `gorm:"not null" json:"total_amount"`

	Status OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`

	//COD / BANK_TRANSFER / MOMO / VNPAY など
	PaymentMethod string        `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
