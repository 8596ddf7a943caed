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

package repository

import (
	"context"

	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go OrderRepository
type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) (int64, error)
	Delete(ctx context.Context, id int64) error
	FindByNumber(ctx context.Context, number string) (domain.Order, error)
	FindByNumberAndUserID(ctx context.Context, number string, uid int64) (domain.Order, error)
	ListByUserID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error)
	List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error
	FindExpiredIDs(ctx context.Context, ctime int64, limit int) ([]int64, error)
	CancelByIDs(ctx context.Context, ids []int64) (int64, error)
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

func (o *orderRepository) Create(ctx context.Context, order domain.Order) (int64, error) {
	lines := slice.Map(order.Lines, func(idx int, src domain.Line) dao.OrderLine {
		return dao.OrderLine{
			ProductId:     src.ProductID,
			StockRecordId: src.StockRecordID,
			Title:         src.Title,
			Upc:           src.UPC,
			Quantity:      src.Quantity,
			UnitPrice:     src.UnitPrice,
			LinePrice:     src.LinePrice,
		}
	})
	discounts := slice.Map(order.Discounts, func(idx int, src domain.Discount) dao.OrderDiscount {
		return dao.OrderDiscount{
			VoucherId:   src.VoucherID,
			VoucherCode: src.VoucherCode,
			OfferId:     src.OfferID,
			Amount:      src.Amount,
			Description: src.Description,
		}
	})
	return o.dao.Create(ctx, o.toEntity(order), lines, discounts)
}

func (o *orderRepository) Delete(ctx context.Context, id int64) error {
	return o.dao.Delete(ctx, id)
}

func (o *orderRepository) FindByNumber(ctx context.Context, number string) (domain.Order, error) {
	order, err := o.dao.FindByNumber(ctx, number)
	if err != nil {
		return domain.Order{}, err
	}
	return o.load(ctx, order)
}

func (o *orderRepository) FindByNumberAndUserID(ctx context.Context, number string, uid int64) (domain.Order, error) {
	order, err := o.dao.FindByNumberAndUserID(ctx, number, uid)
	if err != nil {
		return domain.Order{}, err
	}
	return o.load(ctx, order)
}

func (o *orderRepository) load(ctx context.Context, order dao.Order) (domain.Order, error) {
	var (
		eg        errgroup.Group
		lines     []dao.OrderLine
		discounts []dao.OrderDiscount
	)
	eg.Go(func() error {
		var err error
		lines, err = o.dao.FindLines(ctx, order.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		discounts, err = o.dao.FindDiscounts(ctx, order.Id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Order{}, err
	}
	res := o.toDomain(order)
	res.Lines = slice.Map(lines, func(idx int, src dao.OrderLine) domain.Line {
		return domain.Line{
			ID:            src.Id,
			ProductID:     src.ProductId,
			StockRecordID: src.StockRecordId,
			Title:         src.Title,
			UPC:           src.Upc,
			Quantity:      src.Quantity,
			UnitPrice:     src.UnitPrice,
			LinePrice:     src.LinePrice,
		}
	})
	res.Discounts = slice.Map(discounts, func(idx int, src dao.OrderDiscount) domain.Discount {
		return domain.Discount{
			VoucherID:   src.VoucherId,
			VoucherCode: src.VoucherCode,
			OfferID:     src.OfferId,
			Amount:      src.Amount,
			Description: src.Description,
		}
	})
	return res, nil
}

func (o *orderRepository) ListByUserID(ctx context.Context, uid int64, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = o.dao.ListByUserID(ctx, uid, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = o.dao.CountByUserID(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), total, nil
}

func (o *orderRepository) List(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg     errgroup.Group
		orders []dao.Order
		total  int64
	)
	eg.Go(func() error {
		var err error
		orders, err = o.dao.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = o.dao.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return slice.Map(orders, func(idx int, src dao.Order) domain.Order {
		return o.toDomain(src)
	}), total, nil
}

func (o *orderRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.OrderStatus) error {
	return o.dao.UpdateStatus(ctx, id, from.ToUint8(), to.ToUint8())
}

func (o *orderRepository) FindExpiredIDs(ctx context.Context, ctime int64, limit int) ([]int64, error) {
	// 发票结算的订单由客户线下付款, 不会超时关闭
	return o.dao.FindExpiredIDs(ctx, domain.StatusOpen.ToUint8(), domain.SourceCheckout.ToUint8(), ctime, limit)
}

func (o *orderRepository) CancelByIDs(ctx context.Context, ids []int64) (int64, error) {
	return o.dao.UpdateStatusByIDs(ctx, ids, domain.StatusOpen.ToUint8(), domain.StatusCanceled.ToUint8())
}

func (o *orderRepository) toEntity(order domain.Order) dao.Order {
	return dao.Order{
		Id:                 order.ID,
		Number:             order.Number,
		BasketId:           order.BasketID,
		UserId:             order.UserID,
		Currency:           order.Currency,
		TotalInclTax:       order.TotalInclTax,
		TotalExclTax:       order.TotalExclTax,
		ShippingMethodName: order.ShippingMethod.Name,
		ShippingMethodCode: order.ShippingMethod.Code,
		ShippingInclTax:    order.ShippingInclTax,
		ShippingExclTax:    order.ShippingExclTax,
		Status:             order.Status.ToUint8(),
		Source:             order.Source.ToUint8(),
		DatePlaced:         order.DatePlaced,
	}
}

func (o *orderRepository) toDomain(order dao.Order) domain.Order {
	return domain.Order{
		ID:       order.Id,
		Number:   order.Number,
		BasketID: order.BasketId,
		UserID:   order.UserId,
		Currency: order.Currency,
		ShippingMethod: domain.ShippingMethod{
			Name: order.ShippingMethodName,
			Code: order.ShippingMethodCode,
		},
		TotalInclTax:    order.TotalInclTax,
		TotalExclTax:    order.TotalExclTax,
		ShippingInclTax: order.ShippingInclTax,
		ShippingExclTax: order.ShippingExclTax,
		Status:          domain.OrderStatus(order.Status),
		Source:          domain.OrderSource(order.Source),
		DatePlaced:      order.DatePlaced,
		Ctime:           order.Ctime,
		Utime:           order.Utime,
	}
}
