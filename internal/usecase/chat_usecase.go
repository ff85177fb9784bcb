package usecase

import (
	"context"
	"net/http"
	"sort"

	"artspace/internal/authz"
	"artspace/internal/domain/model"
	repo "artspace/internal/repository"
)

type ChatUsecase struct {
	messages repo.ChatMessageRepository
	idGen    IDGenerator
	clock    Clock
}

func NewChatUsecase(messages repo.ChatMessageRepository, idGen IDGenerator, clock Clock) *ChatUsecase {
	return &ChatUsecase{
		messages: messages,
		idGen:    idGen,
		clock:    clock,
	}
}

type SendMessageInput struct {
	ReceiverID string
	Content    string
}

// Sendはメッセージを保存して返す。
// 送信者IDはクライアントの値を使わず必ず認証済みのprincipalで上書きする。
// timestampもサーバー時刻。受信者と本文はそのまま通す（空文も可）。
func (u *ChatUsecase) Send(ctx context.Context, p authz.Principal, in SendMessageInput) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:         u.idGen.NewID(),
		SenderID:   p.ID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
		Timestamp:  u.clock.Now(),
	}

	if err := u.messages.Create(ctx, &msg); err != nil {
		return model.ChatMessage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return msg, nil
}

// Conversationは自分と相手の二者間の履歴をtimestamp昇順で返す。
// ストアは片側指定の検索しかできないので、自分宛て・自分発の全件を取って
// 相手との分だけ残す。第三者との分は含めない。0件でも成功（空配列）。
func (u *ChatUsecase) Conversation(ctx context.Context, p authz.Principal, partnerID string) ([]model.ChatMessage, error) {
	all, err := u.messages.FindBySenderOrReceiver(ctx, p.ID)
	if err != nil {
		return []model.ChatMessage{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	conv := make([]model.ChatMessage, 0, len(all))
	for _, m := range all {
		if (m.SenderID == p.ID && m.ReceiverID == partnerID) ||
			(m.SenderID == partnerID && m.ReceiverID == p.ID) {
			conv = append(conv, m)
		}
	}

	//同時刻のメッセージの並びを安定させるためstable sort
	sort.SliceStable(conv, func(i, j int) bool {
		return conv[i].Timestamp.Before(conv[j].Timestamp)
	})

	return conv, nil
}
