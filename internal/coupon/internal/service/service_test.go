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
	"time"

	"github.com/ecodeclub/ecommerce/internal/basket"
	basketmocks "github.com/ecodeclub/ecommerce/internal/basket/mocks"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	cataloguemocks "github.com/ecodeclub/ecommerce/internal/catalogue/mocks"
	"github.com/ecodeclub/ecommerce/internal/course"
	coursemocks "github.com/ecodeclub/ecommerce/internal/course/mocks"
	"github.com/ecodeclub/ecommerce/internal/order"
	ordermocks "github.com/ecodeclub/ecommerce/internal/order/mocks"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	vouchermocks "github.com/ecodeclub/ecommerce/internal/voucher/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mocks struct {
	catalog *cataloguemocks.MockService
	voucher *vouchermocks.MockService
	basket  *basketmocks.MockService
	order   *ordermocks.MockService
	course  *coursemocks.MockService
}

func newMocks(ctrl *gomock.Controller) mocks {
	return mocks{
		catalog: cataloguemocks.NewMockService(ctrl),
		voucher: vouchermocks.NewMockService(ctrl),
		basket:  basketmocks.NewMockService(ctrl),
		order:   ordermocks.NewMockService(ctrl),
		course:  coursemocks.NewMockService(ctrl),
	}
}

func (m mocks) svc() Service {
	return NewService(m.catalog, m.voucher, m.basket, m.order, m.course)
}

const testCode = "ABCDEFGHJKLMNPQR"

func activeVoucher(benefitType voucher.BenefitType, value string) voucher.Voucher {
	now := time.Now()
	return voucher.Voucher{
		ID:      3,
		Code:    testCode,
		Usage:   voucher.UsageSingleUse,
		StartAt: now.Add(-time.Hour).UnixMilli(),
		EndAt:   now.Add(time.Hour).UnixMilli(),
		Offers: []voucher.Offer{
			{
				ID: 5,
				Benefit: voucher.Benefit{
					Type:  benefitType,
					Value: decimal.RequireFromString(value),
					Range: voucher.Range{ProductIDs: []int64{101}},
				},
			},
		},
	}
}

func expiredVoucher() voucher.Voucher {
	v := activeVoucher(voucher.BenefitTypePercentage, "100")
	v.EndAt = time.Now().Add(-time.Minute).UnixMilli()
	return v
}

var seat = catalogue.Product{
	ID:         101,
	Title:      "Seat in Demo Course",
	ClassName:  catalogue.ClassSeat,
	CourseID:   "course-v1:edX+DemoX+Demo_Course",
	Attributes: map[string]string{catalogue.AttrCourseKey: "course-v1:edX+DemoX+Demo_Course"},
}

func availableInfo(price string) catalogue.PurchaseInfo {
	return catalogue.PurchaseInfo{
		Price:        decimal.RequireFromString(price),
		Availability: catalogue.Availability{IsAvailableToBuy: true},
	}
}

func TestService_GetOffer(t *testing.T) {
	testCases := []struct {
		name         string
		code         string
		mock         func(m mocks)
		wantErr      error
		wantPrice    string
		wantNewPrice string
	}{
		{
			name:    "没有兑换码",
			code:    "",
			mock:    func(m mocks) {},
			wantErr: ErrCodeNotValid,
		},
		{
			name: "兑换码不存在",
			code: testCode,
			mock: func(m mocks) {
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).
					Return(voucher.Voucher{}, catalogue.Product{}, voucher.ErrVoucherNotFound)
			},
			wantErr: ErrCodeNotValid,
		},
		{
			name: "兑换码已过期",
			code: testCode,
			mock: func(m mocks) {
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(expiredVoucher(), seat, nil)
			},
			wantErr: ErrCodeNotValid,
		},
		{
			name: "用户已经用过",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "100")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.voucher.EXPECT().IsAvailableToUser(gomock.Any(), v, int64(9)).
					Return(false, "This voucher has already been used", nil)
			},
			wantErr: ErrCodeNotValid,
		},
		{
			name: "课程接口失败",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "100")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.voucher.EXPECT().IsAvailableToUser(gomock.Any(), v, int64(9)).Return(true, "", nil)
				m.course.EXPECT().Course(gomock.Any(), seat.CourseID, "token").
					Return(course.Course{}, course.ErrCourseAPI)
			},
			wantErr: ErrCourseInfo,
		},
		{
			name: "百分比折扣",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "20")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.voucher.EXPECT().IsAvailableToUser(gomock.Any(), v, int64(9)).Return(true, "", nil)
				m.course.EXPECT().Course(gomock.Any(), seat.CourseID, "token").
					Return(course.Course{ID: seat.CourseID, Name: "Demo Course"}, nil)
				m.catalog.EXPECT().FetchForProduct(gomock.Any(), int64(101)).Return(availableInfo("100"), nil)
			},
			wantPrice:    "100",
			wantNewPrice: "80",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)

			offer, err := m.svc().GetOffer(context.Background(), tc.code, 9, "token")
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, testCode, offer.Code)
			assert.Equal(t, "Demo Course", offer.Course.Name)
			assert.True(t, decimal.RequireFromString(tc.wantPrice).Equal(offer.Price))
			assert.True(t, decimal.RequireFromString(tc.wantNewPrice).Equal(offer.NewPrice))
		})
	}
}

func TestCourseIDOf(t *testing.T) {
	assert.Equal(t, "course-v1:a+b+c", courseIDOf(catalogue.Product{
		CourseID:   "ignored",
		Attributes: map[string]string{catalogue.AttrCourseKey: "course-v1:a+b+c"},
	}))
	assert.Equal(t, "course-v1:x+y+z", courseIDOf(catalogue.Product{CourseID: "course-v1:x+y+z"}))
}

func freeBasket() basket.Basket {
	return basket.Basket{
		ID:      7,
		OwnerID: 9,
		Status:  basket.StatusOpen,
		Lines: []basket.Line{
			{ProductID: 101, StockRecordID: 201, Quantity: 1, PriceExclTax: decimal.NewFromInt(100)},
		},
		VoucherIDs: []int64{3},
		Discounts: []basket.Discount{
			{VoucherID: 3, VoucherCode: testCode, OfferID: 5, ProductID: 101, Amount: decimal.NewFromInt(100)},
		},
	}
}

func TestService_Redeem(t *testing.T) {
	testCases := []struct {
		name         string
		code         string
		mock         func(m mocks)
		wantErr      error
		wantRedirect string
		wantTotal    string
	}{
		{
			name:    "没有兑换码",
			mock:    func(m mocks) {},
			wantErr: ErrCodeNotExist,
		},
		{
			name: "兑换码不存在",
			code: testCode,
			mock: func(m mocks) {
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).
					Return(voucher.Voucher{}, catalogue.Product{}, voucher.ErrVoucherNotFound)
			},
			wantErr: ErrCodeNotExist,
		},
		{
			name: "兑换码已过期",
			code: testCode,
			mock: func(m mocks) {
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(expiredVoucher(), seat, nil)
			},
			wantErr: ErrCodeExpired,
		},
		{
			name: "商品不可购买",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "100")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.catalog.EXPECT().FetchForProduct(gomock.Any(), int64(101)).Return(catalogue.PurchaseInfo{
					Availability: catalogue.Availability{Message: "Unavailable"},
				}, nil)
			},
			wantErr: ErrProductUnavailable,
		},
		{
			name: "购物车不是免费的",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "50")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.catalog.EXPECT().FetchForProduct(gomock.Any(), int64(101)).Return(availableInfo("100"), nil)
				b := freeBasket()
				b.Discounts[0].Amount = decimal.NewFromInt(50)
				m.basket.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(b, nil)
			},
			wantErr:   ErrBasketNotFree,
			wantTotal: "50",
		},
		{
			name: "订单没有完成",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "100")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.catalog.EXPECT().FetchForProduct(gomock.Any(), int64(101)).Return(availableInfo("100"), nil)
				b := freeBasket()
				m.basket.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(b, nil)
				b.Status = basket.StatusFrozen
				m.basket.EXPECT().Freeze(gomock.Any(), int64(7)).Return(b, nil)
				m.order.EXPECT().GetOrderMetadata(b).Return(order.Metadata{Number: "EDX-100007"})
				m.order.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					Return(order.Order{ID: 1, Number: "EDX-100007", Status: order.StatusOpen}, nil)
			},
			wantErr: ErrOrderNotComplete,
		},
		{
			name: "下单失败",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "100")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.catalog.EXPECT().FetchForProduct(gomock.Any(), int64(101)).Return(availableInfo("100"), nil)
				b := freeBasket()
				m.basket.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(b, nil)
				b.Status = basket.StatusFrozen
				m.basket.EXPECT().Freeze(gomock.Any(), int64(7)).Return(b, nil)
				m.order.EXPECT().GetOrderMetadata(b).Return(order.Metadata{Number: "EDX-100007"})
				m.order.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					Return(order.Order{}, voucher.ErrVoucherUsed)
			},
			wantErr: ErrOrderNotComplete,
		},
		{
			name: "兑换成功",
			code: testCode,
			mock: func(m mocks) {
				v := activeVoucher(voucher.BenefitTypePercentage, "100")
				m.voucher.EXPECT().GetVoucher(gomock.Any(), testCode).Return(v, seat, nil)
				m.catalog.EXPECT().FetchForProduct(gomock.Any(), int64(101)).Return(availableInfo("100"), nil)
				b := freeBasket()
				m.basket.EXPECT().Prepare(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req basket.PrepareReq) (basket.Basket, error) {
						assert.Equal(t, int64(9), req.UID)
						assert.Equal(t, int64(101), req.ProductID)
						assert.Equal(t, int64(1), req.Quantity)
						require.NotNil(t, req.Voucher)
						assert.Equal(t, testCode, req.Voucher.Code)
						return b, nil
					})
				frozen := b
				frozen.Status = basket.StatusFrozen
				m.basket.EXPECT().Freeze(gomock.Any(), int64(7)).Return(frozen, nil)
				meta := order.Metadata{Number: "EDX-100007", Total: decimal.Zero}
				m.order.EXPECT().GetOrderMetadata(frozen).Return(meta)
				m.order.EXPECT().PlaceOrder(gomock.Any(), order.PlaceOrderReq{
					Metadata: meta,
					Basket:   frozen,
					UserID:   9,
				}).Return(order.Order{ID: 1, Number: "EDX-100007", Status: order.StatusComplete}, nil)
				m.course.EXPECT().LMSURL("").Return("http://lms.example.com")
			},
			wantRedirect: "http://lms.example.com",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)

			res, err := m.svc().Redeem(context.Background(), tc.code, 9)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantTotal != "" {
				assert.True(t, decimal.RequireFromString(tc.wantTotal).Equal(res.Basket.TotalExclTax()))
			}
			if errors.Is(tc.wantErr, ErrProductUnavailable) {
				assert.Equal(t, seat.Title, res.Product.String())
			}
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRedirect, res.RedirectURL)
			assert.True(t, res.Order.IsComplete())
		})
	}
}

func validCreateReq() CreateCouponReq {
	now := time.Now()
	return CreateCouponReq{
		Title:          "Demo Coupon",
		ClientUID:      66,
		StartAt:        now.UnixMilli(),
		EndAt:          now.Add(24 * time.Hour).UnixMilli(),
		StockRecordIDs: []int64{201, 202},
		Usage:          voucher.UsageSingleUse,
		Quantity:       2,
		Price:          decimal.NewFromInt(100),
		BenefitType:    voucher.BenefitTypePercentage,
		BenefitValue:   decimal.NewFromInt(100),
		Category:       "Other",
	}
}

func TestCreateCouponReq_validate(t *testing.T) {
	testCases := []struct {
		name    string
		modify  func(r *CreateCouponReq)
		wantErr error
	}{
		{name: "合法", modify: func(r *CreateCouponReq) {}},
		{name: "没有标题", modify: func(r *CreateCouponReq) { r.Title = "" }, wantErr: ErrInvalidCoupon},
		{name: "没有客户", modify: func(r *CreateCouponReq) { r.ClientUID = 0 }, wantErr: ErrInvalidCoupon},
		{name: "时间颠倒", modify: func(r *CreateCouponReq) { r.EndAt = r.StartAt }, wantErr: ErrInvalidCoupon},
		{name: "没有库存记录", modify: func(r *CreateCouponReq) { r.StockRecordIDs = nil }, wantErr: ErrInvalidCoupon},
		{name: "数量为 0", modify: func(r *CreateCouponReq) { r.Quantity = 0 }, wantErr: ErrInvalidCoupon},
		{name: "指定兑换码但数量大于 1", modify: func(r *CreateCouponReq) { r.Code = "FIXEDCODE" }, wantErr: ErrInvalidCoupon},
		{name: "指定兑换码数量为 1", modify: func(r *CreateCouponReq) { r.Code = "FIXEDCODE"; r.Quantity = 1 }},
		{name: "负价格", modify: func(r *CreateCouponReq) { r.Price = decimal.NewFromInt(-1) }, wantErr: ErrInvalidCoupon},
		{name: "未知优惠类型", modify: func(r *CreateCouponReq) { r.BenefitType = "Free" }, wantErr: ErrInvalidCoupon},
		{
			name:    "折扣超过 100",
			modify:  func(r *CreateCouponReq) { r.BenefitValue = decimal.NewFromInt(101) },
			wantErr: ErrInvalidCoupon,
		},
		{
			name: "固定金额可以超过 100",
			modify: func(r *CreateCouponReq) {
				r.BenefitType = voucher.BenefitTypeAbsolute
				r.BenefitValue = decimal.NewFromInt(150)
			},
		},
		{name: "没有分类", modify: func(r *CreateCouponReq) { r.Category = "" }, wantErr: ErrInvalidCoupon},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateReq()
			tc.modify(&req)
			assert.ErrorIs(t, req.validate(), tc.wantErr)
		})
	}
}

func TestService_CreateCoupon(t *testing.T) {
	stockRecords := []catalogue.StockRecord{
		// 故意和请求顺序不同
		{ID: 202, ProductID: 102, PartnerID: 2},
		{ID: 201, ProductID: 101, PartnerID: 1},
	}
	catalog := catalogue.Catalog{ID: 11, Name: "Demo Coupon", PartnerID: 1, StockRecordIDs: []int64{201, 202}}

	vouchers := []voucher.Voucher{{ID: 1, Code: "CODE1"}, {ID: 2, Code: "CODE2"}}
	dbErr := errors.New("mock db error")
	withCode := func() CreateCouponReq {
		req := validCreateReq()
		req.Code = "TAKEN"
		req.Quantity = 1
		return req
	}

	testCases := []struct {
		name      string
		req       func() CreateCouponReq
		mock      func(m mocks)
		wantErr   error
		wantCodes []string
	}{
		{
			name: "库存记录不存在",
			mock: func(m mocks) {
				m.catalog.EXPECT().FindStockRecordsByIDs(gomock.Any(), []int64{201, 202}).
					Return(stockRecords[:1], nil)
			},
			wantErr: ErrStockRecordNotFound,
		},
		{
			name: "兑换码已被占用",
			req:  withCode,
			mock: func(m mocks) {
				m.catalog.EXPECT().FindStockRecordsByIDs(gomock.Any(), gomock.Any()).Return(stockRecords, nil)
				m.voucher.EXPECT().FindByCode(gomock.Any(), "TAKEN").Return(voucher.Voucher{ID: 9, Code: "TAKEN"}, nil)
			},
			wantErr: ErrCodeExists,
		},
		{
			name: "查找兑换码失败",
			req:  withCode,
			mock: func(m mocks) {
				m.catalog.EXPECT().FindStockRecordsByIDs(gomock.Any(), gomock.Any()).Return(stockRecords, nil)
				m.voucher.EXPECT().FindByCode(gomock.Any(), "TAKEN").Return(voucher.Voucher{}, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "并发写入兑换码重复删除商品",
			req:  withCode,
			mock: func(m mocks) {
				m.catalog.EXPECT().FindStockRecordsByIDs(gomock.Any(), gomock.Any()).Return(stockRecords, nil)
				m.voucher.EXPECT().FindByCode(gomock.Any(), "TAKEN").Return(voucher.Voucher{}, voucher.ErrVoucherNotFound)
				m.catalog.EXPECT().GetOrCreateCatalog(gomock.Any(), "Demo Coupon", int64(1), []int64{201, 202}).
					Return(catalog, true, nil)
				m.catalog.EXPECT().SaveProduct(gomock.Any(), gomock.Any()).Return(int64(301), nil)
				m.catalog.EXPECT().SaveStockRecord(gomock.Any(), gomock.Any(), "Demo Coupon").Return(int64(401), nil)
				m.voucher.EXPECT().CreateVouchers(gomock.Any(), gomock.Any()).Return(nil, voucher.ErrVoucherCodeExists)
				m.catalog.EXPECT().DeleteProduct(gomock.Any(), int64(301)).Return(nil)
			},
			wantErr: ErrCodeExists,
		},
		{
			name: "客户下单失败删除兑换码和商品",
			mock: func(m mocks) {
				m.catalog.EXPECT().FindStockRecordsByIDs(gomock.Any(), gomock.Any()).Return(stockRecords, nil)
				m.catalog.EXPECT().GetOrCreateCatalog(gomock.Any(), "Demo Coupon", int64(1), []int64{201, 202}).
					Return(catalog, true, nil)
				m.catalog.EXPECT().SaveProduct(gomock.Any(), gomock.Any()).Return(int64(301), nil)
				m.catalog.EXPECT().SaveStockRecord(gomock.Any(), gomock.Any(), "Demo Coupon").Return(int64(401), nil)
				m.voucher.EXPECT().CreateVouchers(gomock.Any(), gomock.Any()).Return(vouchers, nil)
				b := basket.Basket{ID: 8, OwnerID: 66, Status: basket.StatusFrozen}
				m.basket.EXPECT().Prepare(gomock.Any(), gomock.Any()).Return(b, nil)
				m.basket.EXPECT().Freeze(gomock.Any(), int64(8)).Return(b, nil)
				m.order.EXPECT().GetOrderMetadata(b).Return(order.Metadata{Number: "EDX-100008"})
				m.order.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(order.Order{}, order.ErrOrderExists)
				m.voucher.EXPECT().DeleteVouchers(gomock.Any(), vouchers).Return(nil)
				m.catalog.EXPECT().DeleteProduct(gomock.Any(), int64(301)).Return(nil)
			},
			wantErr: order.ErrOrderExists,
		},
		{
			name: "创建成功",
			mock: func(m mocks) {
				m.catalog.EXPECT().FindStockRecordsByIDs(gomock.Any(), gomock.Any()).Return(stockRecords, nil)
				m.catalog.EXPECT().GetOrCreateCatalog(gomock.Any(), "Demo Coupon", int64(1), []int64{201, 202}).
					Return(catalog, false, nil)
				m.catalog.EXPECT().SaveProduct(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, p catalogue.Product) (int64, error) {
						assert.Equal(t, catalogue.ClassCoupon, p.ClassName)
						assert.Equal(t, "Other", p.Attr(catalogue.AttrCouponCategory))
						assert.Equal(t, catalogue.GenerateUPC(1, "Demo Coupon", "Demo Coupon"), p.UPC)
						return 301, nil
					})
				m.catalog.EXPECT().SaveStockRecord(gomock.Any(), gomock.Any(), "Demo Coupon").
					DoAndReturn(func(ctx context.Context, sr catalogue.StockRecord, catalogName string) (int64, error) {
						assert.Equal(t, int64(301), sr.ProductID)
						assert.Equal(t, int64(1), sr.PartnerID)
						assert.NotEmpty(t, sr.PartnerSKU)
						assert.True(t, sr.PriceExclTax.Valid)
						assert.True(t, decimal.NewFromInt(100).Equal(sr.PriceExclTax.Decimal))
						return 401, nil
					})
				m.voucher.EXPECT().CreateVouchers(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, batch voucher.VoucherBatch) ([]voucher.Voucher, error) {
						assert.Equal(t, int64(11), batch.CatalogID)
						assert.Equal(t, []int64{101, 102}, batch.ProductIDs)
						assert.Equal(t, int64(2), batch.Quantity)
						return vouchers, nil
					})
				b := basket.Basket{ID: 8, OwnerID: 66, Status: basket.StatusOpen}
				m.basket.EXPECT().Prepare(gomock.Any(), basket.PrepareReq{UID: 66, ProductID: 301, Quantity: 1}).
					Return(b, nil)
				b.Status = basket.StatusFrozen
				m.basket.EXPECT().Freeze(gomock.Any(), int64(8)).Return(b, nil)
				m.order.EXPECT().GetOrderMetadata(b).Return(order.Metadata{Number: "EDX-100008"})
				m.order.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req order.PlaceOrderReq) (order.Order, error) {
						// 客户的订单按发票结算, 不参与超时关闭
						assert.Equal(t, order.SourceInvoice, req.Source)
						assert.Equal(t, int64(66), req.UserID)
						return order.Order{ID: 2, Number: "EDX-100008", Status: order.StatusOpen}, nil
					})
			},
			wantCodes: []string{"CODE1", "CODE2"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newMocks(ctrl)
			tc.mock(m)

			req := validCreateReq()
			if tc.req != nil {
				req = tc.req()
			}
			res, err := m.svc().CreateCoupon(context.Background(), req)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, int64(301), res.CouponID)
			assert.Equal(t, "EDX-100008", res.OrderNumber)
			assert.Equal(t, tc.wantCodes, res.Codes)
		})
	}
}
