package repository

import (
	"context"

	"artspace/internal/domain/model"
)

type ChatMessageRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) error

	//userIDが送信者または受信者のメッセージを全部返す（片側指定のみ）。
	//相手ごとの絞り込みは呼び出し側でやる。
	FindBySenderOrReceiver(ctx context.Context, userID string) ([]model.ChatMessage, error)
}
