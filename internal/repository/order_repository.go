package repository

import (
	"context"
	"errors"

	"artspace/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Order, error)
	FindAll(ctx context.Context) ([]model.Order, error)

	//読み出し→書き換え→保存で使う。明細は更新しない。
	Save(ctx context.Context, order *model.Order) error
}
