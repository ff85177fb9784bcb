package model

import "time"

// チャットメッセージ。保存後は不変（更新も削除もしない）。
// ReceiverIDが空ならブロードキャスト予約（会話取得では使わない）。
type ChatMessage struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	SenderID   string    `gorm:"type:uuid;not null;index" json:"sender_id"`
	ReceiverID string    `gorm:"type:uuid;index" json:"receiver_id"`
	Content    string    `gorm:"type:text" json:"content"`
	Timestamp  time.Time `gorm:"not null;index" json:"timestamp"`
}
