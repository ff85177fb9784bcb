package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"artspace/internal/authz"
	"artspace/internal/domain/model"
	repo "artspace/internal/repository"
)

// OrderUsecaseは注文のライフサイクルを持つ。
// 同じ注文への同時更新は後勝ち（read-modify-saveでロックしない）。
type OrderUsecase struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
	idGen    IDGenerator
	clock    Clock
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	products repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		orders:   orders,
		products: products,
		idGen:    idGen,
		clock:    clock,
	}
}

type CreateOrderItemInput struct {
	ProductID string
	Quantity  int64
}

type CreateOrderInput struct {
	Email           string
	Phone           string
	Items           []CreateOrderItemInput
	ShippingAddress model.ShippingAddress
	PaymentMethod   string
}

// モック決済で自動承認する支払い方法（大文字小文字は区別しない）
func isMockApprovedPayment(method string) bool {
	return strings.EqualFold(method, "MOMO") || strings.EqualFold(method, "VNPAY")
}

// Createは注文を作成する。
// タイトル・画像・単価はカタログから注文時点の値をスナップショットする。
// モック決済: MOMO/VNPAYならstatusをpaidにする（payment_statusはpendingのまま）。
func (u *OrderUsecase) Create(ctx context.Context, p authz.Principal, in CreateOrderInput) (model.Order, error) {
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "empty order")
	}

	items := make([]model.OrderItem, 0, len(in.Items))
	var total int64 = 0

	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid item")
		}

		prod, err := u.products.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid product")
		}
		if err != nil {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//スナップショット
		items = append(items, model.OrderItem{
			ProductID:               prod.ID,
			ProductTitleSnapshot:    prod.Title,
			ProductImageURLSnapshot: prod.ImageURL,
			UnitPriceSnapshot:       prod.Price,
			Quantity:                it.Quantity,
		})

		total += prod.Price * it.Quantity
	}

	status := model.OrderStatusPending
	if isMockApprovedPayment(in.PaymentMethod) {
		status = model.OrderStatusPaid
	}

	now := u.clock.Now()
	order := model.Order{
		ID:              u.idGen.NewID(),
		UserID:          p.ID,
		Username:        p.Username,
		Email:           in.Email,
		Phone:           in.Phone,
		Items:           items,
		TotalAmount:     total,
		Status:          status,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   model.PaymentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.orders.Create(ctx, &order); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return order, nil
}

// Getは注文を1件返す。所有者か管理者だけが見られる。
func (u *OrderUsecase) Get(ctx context.Context, p authz.Principal, orderID string) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !authz.CanAccessOrder(p, o) {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "access denied")
	}
	return o, nil
}

// ListMineは自分の注文一覧。0件でも成功（空配列）。
func (u *OrderUsecase) ListMine(ctx context.Context, p authz.Principal) ([]model.Order, error) {
	orders, err := u.orders.FindByUserID(ctx, p.ID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// ListAllは全注文一覧（管理者のみ）。
func (u *OrderUsecase) ListAll(ctx context.Context, p authz.Principal) ([]model.Order, error) {
	if !p.IsAdmin() {
		return []model.Order{}, NewHTTPError(http.StatusForbidden, "admin only")
	}

	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// UpdateStatusは管理者による上書き。前進のみの制限は設けない
// （delivered -> pending も通す）。値が既知のステータスかだけ確認する。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, p authz.Principal, orderID string, newStatus string) (model.Order, error) {
	if !p.IsAdmin() {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "admin only")
	}

	status := model.OrderStatus(strings.TrimSpace(newStatus))
	switch status {
	case model.OrderStatusPending, model.OrderStatusPaid, model.OrderStatusConfirmed,
		model.OrderStatusShipping, model.OrderStatusDelivered, model.OrderStatusCancelled:
		// OK
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.Status = status
	o.UpdatedAt = u.clock.Now()

	if err := u.orders.Save(ctx, &o); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// UpdatePaymentStatusは管理者による支払いステータスの上書き。
func (u *OrderUsecase) UpdatePaymentStatus(ctx context.Context, p authz.Principal, orderID string, newStatus string) (model.Order, error) {
	if !p.IsAdmin() {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "admin only")
	}

	status := model.PaymentStatus(strings.TrimSpace(newStatus))
	switch status {
	case model.PaymentStatusPending, model.PaymentStatusPaid, model.PaymentStatusFailed:
		// OK
	default:
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid payment status")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	o.PaymentStatus = status
	o.UpdatedAt = u.clock.Now()

	if err := u.orders.Save(ctx, &o); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// Cancelは所有者本人だけができる（管理者でも他人の注文は不可）。
// pending以外からはキャンセルできない。
func (u *OrderUsecase) Cancel(ctx context.Context, p authz.Principal, orderID string) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//所有チェック
	if o.UserID != p.ID {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "access denied")
	}

	if o.Status != model.OrderStatusPending {
		return model.Order{}, NewHTTPError(http.StatusBadRequest,
			"cannot cancel order with status: "+string(o.Status))
	}

	o.Status = model.OrderStatusCancelled
	o.UpdatedAt = u.clock.Now()

	if err := u.orders.Save(ctx, &o); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}
