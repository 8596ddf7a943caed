// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/order/internal/event"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/pkg/mqx"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

var (
	ErrOrderNotFound       = dao.ErrRecordNotFound
	ErrOrderExists         = errors.New("订单已存在")
	ErrIllegalBasketStatus = errors.New("购物车未冻结, 不能下单")
	ErrIllegalOrderStatus  = dao.ErrStatusChanged
)

type PlaceOrderReq struct {
	Metadata domain.Metadata
	Basket   basket.Basket
	UserID   int64
	// 默认 SourceCheckout
	Source domain.OrderSource
}

//go:generate mockgen -source=./service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// GetOrderMetadata 根据购物车计算订单号, 配送方式和总价
	GetOrderMetadata(b basket.Basket) domain.Metadata
	// PlaceOrder 购物车必须处于冻结状态, 总价为 0 的订单直接完成
	PlaceOrder(ctx context.Context, req PlaceOrderReq) (domain.Order, error)
	FindOrderByNumber(ctx context.Context, number string) (domain.Order, error)
	FindUserOrderByNumber(ctx context.Context, uid int64, number string) (domain.Order, error)
	ListOrders(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	// CloseExpiredOrders 取消 ctime 之前仍未支付的订单, 返回取消的数量
	CloseExpiredOrders(ctx context.Context, ctime int64, batchSize int) (int64, error)
}

type service struct {
	repo         repository.OrderRepository
	basketSvc    basket.Service
	voucherSvc   voucher.Service
	catalogSvc   catalogue.Service
	producer     mqx.Producer[event.OrderEvent]
	numberPrefix string
	logger       *elog.Component
}

func NewService(repo repository.OrderRepository,
	basketSvc basket.Service,
	voucherSvc voucher.Service,
	catalogSvc catalogue.Service,
	producer mqx.Producer[event.OrderEvent],
	numberPrefix string) Service {
	return &service{
		repo:         repo,
		basketSvc:    basketSvc,
		voucherSvc:   voucherSvc,
		catalogSvc:   catalogSvc,
		producer:     producer,
		numberPrefix: numberPrefix,
		logger:       elog.DefaultLogger,
	}
}

func (s *service) GetOrderMetadata(b basket.Basket) domain.Metadata {
	shippingCharge := decimal.Zero
	return domain.Metadata{
		Number: domain.OrderNumber(s.numberPrefix, b.ID),
		ShippingMethod: domain.ShippingMethod{
			Name: domain.FreeShippingName,
			Code: domain.FreeShippingCode,
		},
		ShippingCharge: shippingCharge,
		Total:          b.TotalInclTax().Add(shippingCharge),
	}
}

func (s *service) PlaceOrder(ctx context.Context, req PlaceOrderReq) (domain.Order, error) {
	b := req.Basket
	if b.Status != basket.StatusFrozen {
		return domain.Order{}, fmt.Errorf("%w: basketId=%d, status=%d", ErrIllegalBasketStatus, b.ID, b.Status)
	}
	order, err := s.newOrder(ctx, req)
	if err != nil {
		return domain.Order{}, err
	}
	order.ID, err = s.repo.Create(ctx, order)
	if errors.Is(err, dao.ErrDuplicateNumber) {
		return domain.Order{}, fmt.Errorf("%w: %w", ErrOrderExists, err)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}

	// 先提交购物车, 之后无论成败这个购物车都不会再被用来下单
	if _, err = s.basketSvc.Submit(ctx, b.ID); err != nil {
		if er := s.repo.Delete(ctx, order.ID); er != nil {
			s.logger.Error("回滚订单失败", elog.FieldErr(er), elog.String("number", order.Number))
		}
		return domain.Order{}, fmt.Errorf("提交购物车失败: %w", err)
	}

	if err = s.recordVoucherUsage(ctx, order); err != nil {
		// 兑换券已经被别人用掉, 这个订单作废
		if er := s.repo.UpdateStatus(ctx, order.ID, order.Status, domain.StatusCanceled); er != nil {
			s.logger.Error("取消订单失败", elog.FieldErr(er), elog.String("number", order.Number))
		}
		return domain.Order{}, err
	}

	s.logger.Info("下单成功",
		elog.String("number", order.Number),
		elog.Int64("uid", order.UserID),
		elog.String("status", order.Status.String()),
		elog.String("total", order.TotalInclTax.StringFixed(2)))

	evt := event.OrderEvent{
		OrderID:      order.ID,
		OrderNumber:  order.Number,
		BasketID:     order.BasketID,
		UserID:       order.UserID,
		Status:       order.Status.ToUint8(),
		Currency:     order.Currency,
		TotalInclTax: order.TotalInclTax.StringFixed(2),
		DatePlaced:   order.DatePlaced,
	}
	if er := s.producer.Produce(ctx, evt); er != nil {
		// 订单已经落库, 发送失败不影响下单结果
		s.logger.Error("发送订单事件失败",
			elog.FieldErr(er),
			elog.String("number", order.Number))
	}
	return order, nil
}

func (s *service) newOrder(ctx context.Context, req PlaceOrderReq) (domain.Order, error) {
	b := req.Basket
	productIDs := slice.Map(b.Lines, func(idx int, src basket.Line) int64 {
		return src.ProductID
	})
	products, err := s.catalogSvc.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return domain.Order{}, fmt.Errorf("查找订单商品失败: %w", err)
	}
	productMap := make(map[int64]catalogue.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	status := domain.StatusOpen
	if req.Metadata.Total.IsZero() {
		status = domain.StatusComplete
	}
	source := req.Source
	if source == 0 {
		source = domain.SourceCheckout
	}
	return domain.Order{
		Number:          req.Metadata.Number,
		BasketID:        b.ID,
		UserID:          req.UserID,
		Currency:        b.Currency(),
		TotalInclTax:    req.Metadata.Total,
		TotalExclTax:    b.TotalExclTax().Add(req.Metadata.ShippingCharge),
		ShippingMethod:  req.Metadata.ShippingMethod,
		ShippingInclTax: req.Metadata.ShippingCharge,
		ShippingExclTax: req.Metadata.ShippingCharge,
		Status:          status,
		Source:          source,
		DatePlaced:      time.Now().UnixMilli(),
		Lines: slice.Map(b.Lines, func(idx int, src basket.Line) domain.Line {
			p := productMap[src.ProductID]
			return domain.Line{
				ProductID:     src.ProductID,
				StockRecordID: src.StockRecordID,
				Title:         p.Title,
				UPC:           p.UPC,
				Quantity:      src.Quantity,
				UnitPrice:     src.PriceExclTax,
				LinePrice:     src.LineTotal(),
			}
		}),
		Discounts: slice.Map(b.Discounts, func(idx int, src basket.Discount) domain.Discount {
			return domain.Discount{
				VoucherID:   src.VoucherID,
				VoucherCode: src.VoucherCode,
				OfferID:     src.OfferID,
				Amount:      src.Amount,
				Description: src.Description,
			}
		}),
	}, nil
}

// recordVoucherUsage 同一张券的多条优惠合并为一条使用记录
func (s *service) recordVoucherUsage(ctx context.Context, order domain.Order) error {
	amounts := make(map[int64]decimal.Decimal, len(order.Discounts))
	ids := make([]int64, 0, len(order.Discounts))
	for _, d := range order.Discounts {
		if _, ok := amounts[d.VoucherID]; !ok {
			ids = append(ids, d.VoucherID)
		}
		amounts[d.VoucherID] = amounts[d.VoucherID].Add(d.Amount)
	}
	for _, vid := range ids {
		err := s.voucherSvc.RecordUsage(ctx, vid, order.ID, order.UserID, amounts[vid])
		if err != nil {
			return fmt.Errorf("记录兑换券使用失败 voucherId=%d: %w", vid, err)
		}
	}
	return nil
}

func (s *service) FindOrderByNumber(ctx context.Context, number string) (domain.Order, error) {
	return s.repo.FindByNumber(ctx, number)
}

func (s *service) FindUserOrderByNumber(ctx context.Context, uid int64, number string) (domain.Order, error) {
	return s.repo.FindByNumberAndUserID(ctx, number, uid)
}

func (s *service) ListOrders(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.ListByUserID(ctx, uid, offset, limit)
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *service) CloseExpiredOrders(ctx context.Context, ctime int64, batchSize int) (int64, error) {
	var total int64
	for {
		ids, err := s.repo.FindExpiredIDs(ctx, ctime, batchSize)
		if err != nil {
			return total, fmt.Errorf("获取过期订单失败: %w", err)
		}
		if len(ids) == 0 {
			return total, nil
		}
		cnt, err := s.repo.CancelByIDs(ctx, ids)
		if err != nil {
			return total, fmt.Errorf("关闭过期订单失败: %w", err)
		}
		total += cnt
		if len(ids) < batchSize {
			return total, nil
		}
	}
}
