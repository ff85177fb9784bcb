package model

// トップページ表示設定。1行だけ存在する想定。
type HomeSettings struct {
	ID                string   `gorm:"type:uuid;primaryKey" json:"id"`
	HeroImageURL      string   `gorm:"type:text" json:"hero_image_url"`
	FeaturedImageURLs []string `gorm:"type:text;serializer:json" json:"featured_image_urls"`
}
