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

//go:build e2e

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/ecommerce/internal/order/internal/errs"
	"github.com/ecodeclub/ecommerce/internal/order/internal/integration/startup"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/order/internal/web"
	"github.com/ecodeclub/ecommerce/internal/test"
	testioc "github.com/ecodeclub/ecommerce/internal/test/ioc"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component
	modules     *startup.Modules
	consumer    mq.Consumer

	productID int64
}

func (s *OrderModuleTestSuite) SetupSuite() {
	modules, err := startup.InitModules()
	require.NoError(s.T(), err)
	s.modules = modules
	s.db = testioc.InitDB()

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{Uid: testUID}))
	})
	modules.Order.Hdl.PrivateRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(test.NewStaffClaims(1)))
	})
	modules.Order.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer

	s.consumer, err = testioc.InitMQ().Consumer(order.OrderEventName, "order-test")
	require.NoError(s.T(), err)
}

func (s *OrderModuleTestSuite) SetupTest() {
	t := s.T()
	ctx := context.Background()
	catalogSvc := s.modules.Catalogue.Svc
	partnerID, err := catalogSvc.CreatePartner(ctx, catalogue.Partner{Name: "edX", ShortCode: "edx"})
	require.NoError(t, err)
	s.productID, err = catalogSvc.SaveProduct(ctx, catalogue.Product{
		Structure: catalogue.StructureStandalone,
		Title:     "Seat in Demo Course",
		ClassName: catalogue.ClassSeat,
		CourseID:  "course-v1:edX+Demo+2023",
		Attributes: map[string]string{
			catalogue.AttrCourseKey: "course-v1:edX+Demo+2023",
		},
	})
	require.NoError(t, err)
	_, err = catalogSvc.SaveStockRecord(ctx, catalogue.StockRecord{
		ProductID:    s.productID,
		PartnerID:    partnerID,
		PriceExclTax: decimal.NewNullDecimal(decimal.RequireFromString("49.5")),
	}, "")
	require.NoError(t, err)
}

func (s *OrderModuleTestSuite) TearDownTest() {
	tables := []string{
		"orders", "order_lines", "order_discounts",
		"baskets", "basket_lines", "basket_discounts",
		"products", "partners", "stock_records",
		"offer_ranges", "offer_benefits", "offers",
		"vouchers", "voucher_offers", "voucher_applications",
	}
	for _, table := range tables {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

// placeOrder 走一遍 准备购物车 -> 冻结 -> 下单
func (s *OrderModuleTestSuite) placeOrder(uid int64, v *voucher.Voucher) (order.Order, error) {
	return s.placeOrderFrom(uid, v, order.SourceCheckout)
}

func (s *OrderModuleTestSuite) placeOrderFrom(uid int64, v *voucher.Voucher, source order.OrderSource) (order.Order, error) {
	ctx := context.Background()
	b, err := s.modules.Basket.Svc.Prepare(ctx, basket.PrepareReq{
		UID:       uid,
		ProductID: s.productID,
		Quantity:  1,
		Voucher:   v,
	})
	if err != nil {
		return order.Order{}, err
	}
	b, err = s.modules.Basket.Svc.Freeze(ctx, b.ID)
	if err != nil {
		return order.Order{}, err
	}
	svc := s.modules.Order.Svc
	return svc.PlaceOrder(ctx, order.PlaceOrderReq{
		Metadata: svc.GetOrderMetadata(b),
		Basket:   b,
		UserID:   uid,
		Source:   source,
	})
}

func (s *OrderModuleTestSuite) freeVoucher(usage voucher.Usage) voucher.Voucher {
	now := time.Now()
	vs, err := s.modules.Voucher.Svc.CreateVouchers(context.Background(), voucher.VoucherBatch{
		Name:         "Free seat",
		Usage:        usage,
		StartAt:      now.Add(-time.Hour).UnixMilli(),
		EndAt:        now.Add(time.Hour).UnixMilli(),
		Quantity:     1,
		BenefitType:  voucher.BenefitTypePercentage,
		BenefitValue: decimal.NewFromInt(100),
		CatalogID:    1,
		ProductIDs:   []int64{s.productID},
	})
	require.NoError(s.T(), err)
	return vs[0]
}

// waitEvent 消费直到拿到指定订单的事件
func (s *OrderModuleTestSuite) waitEvent(number string) order.OrderEvent {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for {
		msg, err := s.consumer.Consume(ctx)
		require.NoError(s.T(), err)
		var evt order.OrderEvent
		require.NoError(s.T(), json.Unmarshal(msg.Value, &evt))
		if evt.OrderNumber == number {
			return evt
		}
	}
}

func (s *OrderModuleTestSuite) TestPlaceOrder_Free() {
	t := s.T()
	v := s.freeVoucher(voucher.UsageSingleUse)
	o, err := s.placeOrder(testUID, &v)
	require.NoError(t, err)
	assert.Equal(t, order.StatusComplete, o.Status)
	assert.True(t, o.TotalInclTax.IsZero())
	require.Len(t, o.Lines, 1)
	assert.Equal(t, "Seat in Demo Course", o.Lines[0].Title)
	require.Len(t, o.Discounts, 1)
	assert.Equal(t, v.Code, o.Discounts[0].VoucherCode)

	evt := s.waitEvent(o.Number)
	assert.Equal(t, order.StatusComplete.ToUint8(), evt.Status)
	assert.Equal(t, testUID, evt.UserID)

	b, err := s.modules.Basket.Svc.FindByID(context.Background(), o.BasketID)
	require.NoError(t, err)
	assert.Equal(t, basket.StatusSubmitted, b.Status)

	got, err := s.modules.Voucher.Svc.FindByCode(context.Background(), v.Code)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.NumOrders)
	assert.True(t, got.TotalDiscount.Equal(decimal.RequireFromString("49.5")))
}

func (s *OrderModuleTestSuite) TestPlaceOrder_Paid() {
	t := s.T()
	o, err := s.placeOrder(testUID, nil)
	require.NoError(t, err)
	assert.Equal(t, order.StatusOpen, o.Status)
	assert.True(t, o.TotalInclTax.Equal(decimal.RequireFromString("49.5")))
	assert.Empty(t, o.Discounts)
}

func (s *OrderModuleTestSuite) TestPlaceOrder_BasketNotFrozen() {
	t := s.T()
	ctx := context.Background()
	b, err := s.modules.Basket.Svc.Prepare(ctx, basket.PrepareReq{UID: testUID, ProductID: s.productID, Quantity: 1})
	require.NoError(t, err)
	svc := s.modules.Order.Svc
	_, err = svc.PlaceOrder(ctx, order.PlaceOrderReq{
		Metadata: svc.GetOrderMetadata(b),
		Basket:   b,
		UserID:   testUID,
	})
	assert.ErrorIs(t, err, order.ErrIllegalBasketStatus)
}

func (s *OrderModuleTestSuite) TestPlaceOrder_VoucherAlreadyUsed() {
	t := s.T()
	ctx := context.Background()
	v := s.freeVoucher(voucher.UsageSingleUse)

	// 两个用户都把券放进购物车, 先下单的用掉
	basketSvc := s.modules.Basket.Svc
	var frozen []basket.Basket
	for _, uid := range []int64{testUID, testUID + 1} {
		b, err := basketSvc.Prepare(ctx, basket.PrepareReq{UID: uid, ProductID: s.productID, Quantity: 1, Voucher: &v})
		require.NoError(t, err)
		require.True(t, b.IsFree())
		b, err = basketSvc.Freeze(ctx, b.ID)
		require.NoError(t, err)
		frozen = append(frozen, b)
	}
	svc := s.modules.Order.Svc
	_, err := svc.PlaceOrder(ctx, order.PlaceOrderReq{Metadata: svc.GetOrderMetadata(frozen[0]), Basket: frozen[0], UserID: testUID})
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, order.PlaceOrderReq{Metadata: svc.GetOrderMetadata(frozen[1]), Basket: frozen[1], UserID: testUID + 1})
	assert.ErrorIs(t, err, voucher.ErrVoucherUsed)

	// 第二个订单被取消
	var e dao.Order
	require.NoError(t, s.db.Where("user_id = ?", testUID+1).First(&e).Error)
	assert.Equal(t, order.StatusCanceled.ToUint8(), e.Status)

	// 第二个购物车已经提交, 超时解冻也不会再把它放出来
	lost, err := basketSvc.FindByID(ctx, frozen[1].ID)
	require.NoError(t, err)
	assert.Equal(t, basket.StatusSubmitted, lost.Status)
	_, err = basketSvc.Thaw(ctx, frozen[1].ID)
	assert.ErrorIs(t, err, basket.ErrIllegalStatus)
	require.NoError(t, s.modules.Basket.ThawJob.Run(ctx))

	// 换一张券重新兑换, 用的是新的购物车和新的订单号
	other := s.freeVoucher(voucher.UsageSingleUse)
	o, err := s.placeOrder(testUID+1, &other)
	require.NoError(t, err)
	assert.Equal(t, order.StatusComplete, o.Status)
	assert.NotEqual(t, frozen[1].ID, o.BasketID)
	assert.NotEqual(t, e.Number, o.Number)
}

func (s *OrderModuleTestSuite) TestPlaceOrder_Duplicate() {
	t := s.T()
	ctx := context.Background()
	o, err := s.placeOrder(testUID, nil)
	require.NoError(t, err)
	b, err := s.modules.Basket.Svc.FindByID(ctx, o.BasketID)
	require.NoError(t, err)
	// 同一个购物车再下一次单
	b.Status = basket.StatusFrozen
	svc := s.modules.Order.Svc
	_, err = svc.PlaceOrder(ctx, order.PlaceOrderReq{Metadata: svc.GetOrderMetadata(b), Basket: b, UserID: testUID})
	assert.ErrorIs(t, err, order.ErrOrderExists)
}

func (s *OrderModuleTestSuite) TestListOrders() {
	t := s.T()
	for i := 0; i < 3; i++ {
		_, err := s.placeOrder(testUID, nil)
		require.NoError(t, err)
		// 上一个购物车已提交, 下一次会新建
	}
	_, err := s.placeOrder(testUID+1, nil)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		server    *egin.Component
		req       web.ListOrdersReq
		wantTotal int64
		wantLen   int
	}{
		{name: "用户只能看到自己的订单", server: s.server, req: web.ListOrdersReq{Limit: 10}, wantTotal: 3, wantLen: 3},
		{name: "分页", server: s.server, req: web.ListOrdersReq{Offset: 2, Limit: 10}, wantTotal: 3, wantLen: 1},
		{name: "管理员看到全部", server: s.adminServer, req: web.ListOrdersReq{Limit: 10}, wantTotal: 4, wantLen: 4},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/order/list", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
			tc.server.ServeHTTP(recorder, req)
			require.Equal(t, 200, recorder.Code)
			resp := recorder.MustScan().Data
			assert.Equal(t, tc.wantTotal, resp.Total)
			assert.Len(t, resp.Orders, tc.wantLen)
		})
	}
}

func (s *OrderModuleTestSuite) TestRetrieveOrderDetail() {
	t := s.T()
	mine, err := s.placeOrder(testUID, nil)
	require.NoError(t, err)
	others, err := s.placeOrder(testUID+1, nil)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		server   *egin.Component
		number   string
		wantCode int
		wantResp test.Result[web.OrderDetailResp]
	}{
		{
			name:     "查看自己的订单",
			server:   s.server,
			number:   mine.Number,
			wantCode: 200,
			wantResp: test.Result[web.OrderDetailResp]{
				Data: web.OrderDetailResp{Order: web.Order{
					Number:         mine.Number,
					BasketID:       mine.BasketID,
					UserID:         testUID,
					Currency:       "USD",
					TotalInclTax:   "49.50",
					TotalExclTax:   "49.50",
					TotalDiscount:  "0.00",
					ShippingMethod: mine.ShippingMethod.Name,
					ShippingCharge: "0.00",
					Status:         order.StatusOpen.ToUint8(),
					StatusName:     order.StatusOpen.String(),
					Lines: []web.Line{{
						ProductID: s.productID,
						Title:     "Seat in Demo Course",
						Quantity:  1,
						UnitPrice: "49.50",
						LinePrice: "49.50",
					}},
					DatePlaced: mine.DatePlaced,
				}},
			},
		},
		{
			name:     "看不到别人的订单",
			server:   s.server,
			number:   others.Number,
			wantCode: 500,
			wantResp: test.Result[web.OrderDetailResp]{
				Code: errs.OrderNotFound.Code,
				Msg:  errs.OrderNotFound.Msg,
			},
		},
		{
			name:     "管理员可以看任意订单",
			server:   s.adminServer,
			number:   others.Number,
			wantCode: 200,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, "/order/detail", iox.NewJSONReader(web.OrderDetailReq{Number: tc.number}))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.OrderDetailResp]()
			tc.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			resp := recorder.MustScan()
			if tc.wantResp.Code == 0 && tc.wantResp.Data.Order.Number == "" {
				assert.Equal(t, tc.number, resp.Data.Order.Number)
				return
			}
			assert.Equal(t, tc.wantResp, resp)
		})
	}
}

func (s *OrderModuleTestSuite) TestCloseExpiredOrdersJob() {
	t := s.T()
	ctx := context.Background()
	expired, err := s.placeOrder(testUID, nil)
	require.NoError(t, err)
	fresh, err := s.placeOrder(testUID+1, nil)
	require.NoError(t, err)
	invoiced, err := s.placeOrderFrom(testUID+2, nil, order.SourceInvoice)
	require.NoError(t, err)
	// 把第一个和发票结算订单的创建时间改到两天前
	err = s.db.Model(&dao.Order{}).Where("id IN ?", []int64{expired.ID, invoiced.ID}).
		Update("ctime", time.Now().Add(-48*time.Hour).UnixMilli()).Error
	require.NoError(t, err)

	require.NoError(t, s.modules.Order.CloseJob.Run(ctx))

	got, err := s.modules.Order.Svc.FindOrderByNumber(ctx, expired.Number)
	require.NoError(t, err)
	assert.Equal(t, order.StatusCanceled, got.Status)
	got, err = s.modules.Order.Svc.FindOrderByNumber(ctx, fresh.Number)
	require.NoError(t, err)
	assert.Equal(t, order.StatusOpen, got.Status)
	// 发票结算的订单等客户付款, 不会被关闭
	got, err = s.modules.Order.Svc.FindOrderByNumber(ctx, invoiced.Number)
	require.NoError(t, err)
	assert.Equal(t, order.StatusOpen, got.Status)
	assert.Equal(t, order.SourceInvoice, got.Source)
}
