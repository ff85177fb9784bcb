package model

// 注文明細。タイトル・画像・単価は注文時点のスナップショットで、
// 後からカタログが変わっても注文履歴は変わらない。
type OrderItem struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID   string `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string `gorm:"type:uuid;not null;index" json:"product_id"`

	ProductTitleSnapshot    string `gorm:"type:varchar(255);not null" json:"product_title"`
	ProductImageURLSnapshot string `gorm:"type:text" json:"product_image_url"`
	UnitPriceSnapshot       int64  `gorm:"not null" json:"price"`

	Quantity int64 `gorm:"not null" json:"quantity"`
}
