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
	"testing"

	"github.com/ecodeclub/ecommerce/internal/basket"
	basketmocks "github.com/ecodeclub/ecommerce/internal/basket/mocks"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	cataloguemocks "github.com/ecodeclub/ecommerce/internal/catalogue/mocks"
	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/order/internal/event"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository/dao"
	repomocks "github.com/ecodeclub/ecommerce/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	vouchermocks "github.com/ecodeclub/ecommerce/internal/voucher/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeProducer struct {
	events []event.OrderEvent
	err    error
}

func (f *fakeProducer) Produce(_ context.Context, evt event.OrderEvent) error {
	f.events = append(f.events, evt)
	return f.err
}

func newFrozenBasket(price, discount string) basket.Basket {
	b := basket.Basket{
		ID:      7,
		OwnerID: 9,
		Status:  basket.StatusFrozen,
		Lines: []basket.Line{
			{
				ProductID:     101,
				StockRecordID: 201,
				Quantity:      1,
				PriceCurrency: "USD",
				PriceExclTax:  decimal.RequireFromString(price),
			},
		},
	}
	if discount != "" {
		b.VoucherIDs = []int64{3}
		b.Discounts = []basket.Discount{
			{
				VoucherID:   3,
				VoucherCode: "ABCDEFGHJKLMNPQR",
				OfferID:     5,
				ProductID:   101,
				Amount:      decimal.RequireFromString(discount),
				Description: "100% discount",
			},
		}
	}
	return b
}

func TestService_GetOrderMetadata(t *testing.T) {
	testCases := []struct {
		name       string
		prefix     string
		basket     basket.Basket
		wantNumber string
		wantTotal  string
	}{
		{
			name:       "免费",
			prefix:     "EDX",
			basket:     newFrozenBasket("100", "100"),
			wantNumber: "EDX-100007",
			wantTotal:  "0",
		},
		{
			name:       "自定义前缀",
			prefix:     "ECOM",
			basket:     newFrozenBasket("59.9", "10"),
			wantNumber: "ECOM-100007",
			wantTotal:  "49.9",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(nil, nil, nil, nil, nil, tc.prefix)
			meta := svc.GetOrderMetadata(tc.basket)
			assert.Equal(t, tc.wantNumber, meta.Number)
			assert.Equal(t, domain.FreeShippingName, meta.ShippingMethod.Name)
			assert.Equal(t, domain.FreeShippingCode, meta.ShippingMethod.Code)
			assert.True(t, meta.ShippingCharge.IsZero())
			assert.True(t, decimal.RequireFromString(tc.wantTotal).Equal(meta.Total))
		})
	}
}

func TestService_PlaceOrder(t *testing.T) {
	type mocks struct {
		repo    *repomocks.MockOrderRepository
		basket  *basketmocks.MockService
		voucher *vouchermocks.MockService
		catalog *cataloguemocks.MockService
	}
	products := []catalogue.Product{{ID: 101, Title: "Seat in Demo Course", UPC: "0123456789"}}

	testCases := []struct {
		name       string
		basket     basket.Basket
		mock       func(m mocks)
		wantStatus domain.OrderStatus
		wantEvents int
		wantErr    error
	}{
		{
			name:   "免费订单直接完成",
			basket: newFrozenBasket("100", "100"),
			mock: func(m mocks) {
				m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{101}).Return(products, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, o domain.Order) (int64, error) {
						assert.Equal(t, "EDX-100007", o.Number)
						assert.Equal(t, domain.StatusComplete, o.Status)
						assert.Equal(t, int64(9), o.UserID)
						require.Len(t, o.Lines, 1)
						assert.Equal(t, "Seat in Demo Course", o.Lines[0].Title)
						require.Len(t, o.Discounts, 1)
						return 11, nil
					})
				m.voucher.EXPECT().RecordUsage(gomock.Any(), int64(3), int64(11), int64(9), gomock.Any()).
					DoAndReturn(func(ctx context.Context, voucherID, orderID, uid int64, discount decimal.Decimal) error {
						assert.True(t, decimal.NewFromInt(100).Equal(discount))
						return nil
					})
				m.basket.EXPECT().Submit(gomock.Any(), int64(7)).Return(basket.Basket{ID: 7, Status: basket.StatusSubmitted}, nil)
			},
			wantStatus: domain.StatusComplete,
			wantEvents: 1,
		},
		{
			name:   "非免费订单待支付",
			basket: newFrozenBasket("100", ""),
			mock: func(m mocks) {
				m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{101}).Return(products, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				m.basket.EXPECT().Submit(gomock.Any(), int64(7)).Return(basket.Basket{ID: 7, Status: basket.StatusSubmitted}, nil)
			},
			wantStatus: domain.StatusOpen,
			wantEvents: 1,
		},
		{
			name: "购物车未冻结",
			basket: func() basket.Basket {
				b := newFrozenBasket("100", "100")
				b.Status = basket.StatusOpen
				return b
			}(),
			mock:    func(m mocks) {},
			wantErr: ErrIllegalBasketStatus,
		},
		{
			name:   "订单号重复",
			basket: newFrozenBasket("100", "100"),
			mock: func(m mocks) {
				m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{101}).Return(products, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), dao.ErrDuplicateNumber)
			},
			wantErr: ErrOrderExists,
		},
		{
			name:   "兑换券已被使用",
			basket: newFrozenBasket("100", "100"),
			mock: func(m mocks) {
				m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{101}).Return(products, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(13), nil)
				// 购物车先提交, 订单作废后不会再用同一个订单号下单
				m.basket.EXPECT().Submit(gomock.Any(), int64(7)).Return(basket.Basket{ID: 7, Status: basket.StatusSubmitted}, nil)
				m.voucher.EXPECT().RecordUsage(gomock.Any(), int64(3), int64(13), int64(9), gomock.Any()).
					Return(voucher.ErrVoucherUsed)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), int64(13), domain.StatusComplete, domain.StatusCanceled).Return(nil)
			},
			wantErr: voucher.ErrVoucherUsed,
		},
		{
			name:   "提交购物车失败删除订单",
			basket: newFrozenBasket("100", "100"),
			mock: func(m mocks) {
				m.catalog.EXPECT().FindProductsByIDs(gomock.Any(), []int64{101}).Return(products, nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(15), nil)
				m.basket.EXPECT().Submit(gomock.Any(), int64(7)).Return(basket.Basket{}, basket.ErrIllegalStatus)
				m.repo.EXPECT().Delete(gomock.Any(), int64(15)).Return(nil)
			},
			wantErr: basket.ErrIllegalStatus,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := mocks{
				repo:    repomocks.NewMockOrderRepository(ctrl),
				basket:  basketmocks.NewMockService(ctrl),
				voucher: vouchermocks.NewMockService(ctrl),
				catalog: cataloguemocks.NewMockService(ctrl),
			}
			tc.mock(m)
			producer := &fakeProducer{}
			svc := NewService(m.repo, m.basket, m.voucher, m.catalog, producer, domain.DefaultNumberPrefix)

			order, err := svc.PlaceOrder(context.Background(), PlaceOrderReq{
				Metadata: svc.GetOrderMetadata(tc.basket),
				Basket:   tc.basket,
				UserID:   9,
			})
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Len(t, producer.events, tc.wantEvents)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantStatus, order.Status)
			assert.Equal(t, order.Number, producer.events[0].OrderNumber)
			assert.Equal(t, tc.wantStatus.ToUint8(), producer.events[0].Status)
		})
	}
}

func TestService_PlaceOrderIgnoreProduceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrderRepository(ctrl)
	basketSvc := basketmocks.NewMockService(ctrl)
	catalogSvc := cataloguemocks.NewMockService(ctrl)
	catalogSvc.EXPECT().FindProductsByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(14), nil)
	basketSvc.EXPECT().Submit(gomock.Any(), int64(7)).Return(basket.Basket{}, nil)

	producer := &fakeProducer{err: errors.New("mock mq error")}
	svc := NewService(repo, basketSvc, vouchermocks.NewMockService(ctrl), catalogSvc, producer, "")
	b := newFrozenBasket("10", "")
	order, err := svc.PlaceOrder(context.Background(), PlaceOrderReq{
		Metadata: svc.GetOrderMetadata(b),
		Basket:   b,
		UserID:   9,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(14), order.ID)
	assert.Equal(t, "EDX-100007", order.Number)
}

func TestService_CloseExpiredOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockOrderRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().FindExpiredIDs(gomock.Any(), int64(1000), 2).Return([]int64{1, 2}, nil),
		repo.EXPECT().CancelByIDs(gomock.Any(), []int64{1, 2}).Return(int64(2), nil),
		repo.EXPECT().FindExpiredIDs(gomock.Any(), int64(1000), 2).Return([]int64{3}, nil),
		repo.EXPECT().CancelByIDs(gomock.Any(), []int64{3}).Return(int64(1), nil),
	)
	svc := NewService(repo, nil, nil, nil, nil, "")
	cnt, err := svc.CloseExpiredOrders(context.Background(), 1000, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cnt)
}
