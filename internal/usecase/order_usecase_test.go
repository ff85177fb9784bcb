package usecase

import (
	"context"
	"net/http"
	"testing"
	"time"

	"artspace/internal/authz"
	"artspace/internal/domain/model"
	repo "artspace/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	buyer = authz.Principal{ID: "user-1", Username: "alice", Roles: []string{"USER"}}
	admin = authz.Principal{ID: "admin-1", Username: "boss", Roles: []string{"USER", "ADMIN"}}
	other = authz.Principal{ID: "user-2", Username: "carol", Roles: []string{"USER"}}
)

func newOrderUsecaseForTest() (*OrderUsecase, *OrderRepoMock, *ProductRepoMock, *fixedClock) {
	orders := &OrderRepoMock{}
	products := &ProductRepoMock{}
	clock := newFixedClock()
	uc := NewOrderUsecase(orders, products, &seqIDGen{}, clock)
	return uc, orders, products, clock
}

func artwork() model.Product {
	return model.Product{
		ID:       "prod-1",
		Title:    "Sunset over Lake",
		Artist:   "Huy Arthur",
		Price:    2500000,
		ImageURL: "https://img.example/sunset.jpg",
		Status:   model.ProductStatusAvailable,
	}
}

func TestOrderUsecase_Create_MockPaymentDecidesStatus(t *testing.T) {
	tests := []struct {
		method string
		want   model.OrderStatus
	}{
		{"VNPAY", model.OrderStatusPaid},
		{"vnpay", model.OrderStatusPaid},
		{"MoMo", model.OrderStatusPaid},
		{"COD", model.OrderStatusPending},
		{"bank_transfer", model.OrderStatusPending},
		{"BANK_TRANSFER", model.OrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			uc, orders, products, clock := newOrderUsecaseForTest()
			products.On("FindByID", mock.Anything, "prod-1").Return(artwork(), nil)
			orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

			out, err := uc.Create(context.Background(), buyer, CreateOrderInput{
				Items:         []CreateOrderItemInput{{ProductID: "prod-1", Quantity: 2}},
				PaymentMethod: tt.method,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.want, out.Status)

			//モック決済の結果はstatusに入る。payment_statusは常にpendingで始まる
			//（支払い結果の反映は管理者の明示的な更新だけ）。
			assert.Equal(t, model.PaymentStatusPending, out.PaymentStatus)

			assert.Equal(t, buyer.ID, out.UserID)
			assert.Equal(t, "alice", out.Username)
			assert.Equal(t, clock.Now(), out.CreatedAt)
			assert.Equal(t, clock.Now(), out.UpdatedAt)
		})
	}
}

func TestOrderUsecase_Create_SnapshotsFromCatalog(t *testing.T) {
	uc, orders, products, _ := newOrderUsecaseForTest()
	products.On("FindByID", mock.Anything, "prod-1").Return(artwork(), nil)

	var saved *model.Order
	orders.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Return(nil).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Order)
		})

	out, err := uc.Create(context.Background(), buyer, CreateOrderInput{
		Items:         []CreateOrderItemInput{{ProductID: "prod-1", Quantity: 3}},
		PaymentMethod: "COD",
		ShippingAddress: model.ShippingAddress{
			FullName: "Alice",
			City:     "Hanoi",
			District: "Ba Dinh",
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, saved)
	assert.Len(t, out.Items, 1)

	it := out.Items[0]
	assert.Equal(t, "prod-1", it.ProductID)
	assert.Equal(t, "Sunset over Lake", it.ProductTitleSnapshot)
	assert.Equal(t, "https://img.example/sunset.jpg", it.ProductImageURLSnapshot)
	assert.Equal(t, int64(2500000), it.UnitPriceSnapshot)
	assert.Equal(t, int64(3), it.Quantity)

	assert.Equal(t, int64(7500000), out.TotalAmount)
	assert.Equal(t, "Hanoi", out.ShippingAddress.City)
	assert.NotEmpty(t, out.ID)
}

func TestOrderUsecase_Create_RejectsBadInput(t *testing.T) {
	uc, _, products, _ := newOrderUsecaseForTest()

	//明細なし
	_, err := uc.Create(context.Background(), buyer, CreateOrderInput{PaymentMethod: "COD"})
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//数量0
	_, err = uc.Create(context.Background(), buyer, CreateOrderInput{
		Items: []CreateOrderItemInput{{ProductID: "prod-1", Quantity: 0}},
	})
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//存在しない作品
	products.On("FindByID", mock.Anything, "ghost").Return(model.Product{}, repo.ErrNotFound)
	_, err = uc.Create(context.Background(), buyer, CreateOrderInput{
		Items: []CreateOrderItemInput{{ProductID: "ghost", Quantity: 1}},
	})
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestOrderUsecase_Get_OwnershipAndRoles(t *testing.T) {
	uc, orders, _, _ := newOrderUsecaseForTest()
	stored := model.Order{ID: "order-1", UserID: buyer.ID, Status: model.OrderStatusPending}
	orders.On("FindByID", mock.Anything, "order-1").Return(stored, nil)

	//所有者は見られる
	out, err := uc.Get(context.Background(), buyer, "order-1")
	assert.NoError(t, err)
	assert.Equal(t, "order-1", out.ID)

	//管理者も見られる
	_, err = uc.Get(context.Background(), admin, "order-1")
	assert.NoError(t, err)

	//他人は403
	_, err = uc.Get(context.Background(), other, "order-1")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestOrderUsecase_Get_NotFound(t *testing.T) {
	uc, orders, _, _ := newOrderUsecaseForTest()
	orders.On("FindByID", mock.Anything, "missing").Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), buyer, "missing")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestOrderUsecase_ListMine_EmptyIsSuccess(t *testing.T) {
	uc, orders, _, _ := newOrderUsecaseForTest()
	orders.On("FindByUserID", mock.Anything, buyer.ID).Return([]model.Order{}, nil)

	out, err := uc.ListMine(context.Background(), buyer)
	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestOrderUsecase_ListAll_AdminOnly(t *testing.T) {
	uc, orders, _, _ := newOrderUsecaseForTest()
	orders.On("FindAll", mock.Anything).Return([]model.Order{{ID: "order-1"}}, nil)

	out, err := uc.ListAll(context.Background(), admin)
	assert.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = uc.ListAll(context.Background(), buyer)
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
	orders.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestOrderUsecase_UpdateStatus_AdminOverride(t *testing.T) {
	uc, orders, _, clock := newOrderUsecaseForTest()

	//deliveredからpendingへ戻すのも通す（前進のみの制限はない）
	stored := model.Order{
		ID:        "order-1",
		UserID:    buyer.ID,
		Status:    model.OrderStatusDelivered,
		UpdatedAt: clock.Now(),
	}
	orders.On("FindByID", mock.Anything, "order-1").Return(stored, nil)
	orders.On("Save", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	clock.Advance(10 * time.Minute)

	out, err := uc.UpdateStatus(context.Background(), admin, "order-1", "pending")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, out.Status)
	assert.Equal(t, clock.Now(), out.UpdatedAt)
}

func TestOrderUsecase_UpdateStatus_Guards(t *testing.T) {
	uc, orders, _, _ := newOrderUsecaseForTest()

	//管理者以外は403（所有者でも不可）
	_, err := uc.UpdateStatus(context.Background(), buyer, "order-1", "confirmed")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)

	//未知の値は400
	_, err = uc.UpdateStatus(context.Background(), admin, "order-1", "teleported")
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//存在しない注文は404
	orders.On("FindByID", mock.Anything, "missing").Return(model.Order{}, repo.ErrNotFound)
	_, err = uc.UpdateStatus(context.Background(), admin, "missing", "confirmed")
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestOrderUsecase_UpdatePaymentStatus(t *testing.T) {
	uc, orders, _, clock := newOrderUsecaseForTest()
	stored := model.Order{
		ID:            "order-1",
		UserID:        buyer.ID,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
	}
	orders.On("FindByID", mock.Anything, "order-1").Return(stored, nil)
	orders.On("Save", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	out, err := uc.UpdatePaymentStatus(context.Background(), admin, "order-1", "paid")
	assert.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, out.PaymentStatus)
	//statusのほうは触らない
	assert.Equal(t, model.OrderStatusPending, out.Status)
	assert.Equal(t, clock.Now(), out.UpdatedAt)

	//値のチェック
	_, err = uc.UpdatePaymentStatus(context.Background(), admin, "order-1", "maybe")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)

	//管理者以外は403
	_, err = uc.UpdatePaymentStatus(context.Background(), buyer, "order-1", "paid")
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestOrderUsecase_Cancel_PendingByOwner(t *testing.T) {
	uc, orders, _, clock := newOrderUsecaseForTest()
	createdAt := clock.Now()
	stored := model.Order{
		ID:        "order-1",
		UserID:    buyer.ID,
		Status:    model.OrderStatusPending,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	orders.On("FindByID", mock.Anything, "order-1").Return(stored, nil)
	orders.On("Save", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	clock.Advance(5 * time.Minute)

	out, err := uc.Cancel(context.Background(), buyer, "order-1")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusCancelled, out.Status)
	assert.True(t, out.UpdatedAt.After(createdAt))
}

func TestOrderUsecase_Cancel_NonPendingFails(t *testing.T) {
	statuses := []model.OrderStatus{
		model.OrderStatusPaid,
		model.OrderStatusConfirmed,
		model.OrderStatusShipping,
		model.OrderStatusDelivered,
		model.OrderStatusCancelled,
	}

	for _, st := range statuses {
		t.Run(string(st), func(t *testing.T) {
			uc, orders, _, _ := newOrderUsecaseForTest()
			orders.On("FindByID", mock.Anything, "order-1").
				Return(model.Order{ID: "order-1", UserID: buyer.ID, Status: st}, nil)

			_, err := uc.Cancel(context.Background(), buyer, "order-1")
			he, ok := AsHTTPError(err)
			assert.True(t, ok)
			assert.Equal(t, http.StatusBadRequest, he.Status)
			assert.Contains(t, he.Message, string(st))

			//状態は変えない
			orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderUsecase_Cancel_OwnerOnly(t *testing.T) {
	uc, orders, _, _ := newOrderUsecaseForTest()
	orders.On("FindByID", mock.Anything, "order-1").
		Return(model.Order{ID: "order-1", UserID: buyer.ID, Status: model.OrderStatusPending}, nil)

	//他人は403
	_, err := uc.Cancel(context.Background(), other, "order-1")
	he, ok := AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)

	//管理者でも所有者でなければキャンセルはできない
	_, err = uc.Cancel(context.Background(), admin, "order-1")
	he, ok = AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)

	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
