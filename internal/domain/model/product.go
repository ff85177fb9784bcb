package model

import "time"

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusSold      ProductStatus = "sold"
	ProductStatusPending   ProductStatus = "pending"
)

// 作品（出品）
type Product struct {
	ID          string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"type:varchar(255);not null" json:"title"`
	Artist      string        `gorm:"type:varchar(255);not null" json:"artist"`
	Price       int64         `gorm:"not null" json:"price"`
	Description string        `gorm:"type:text" json:"description"`
	Category    string        `gorm:"type:varchar(100);index" json:"category"`
	ImageURL    string        `gorm:"type:text" json:"image_url"`
	Status      ProductStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null" json:"updated_at"`
}
