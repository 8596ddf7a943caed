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
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/coupon"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/errs"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/web"
	"github.com/ecodeclub/ecommerce/internal/course"
	"github.com/ecodeclub/ecommerce/internal/invoice"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/ecommerce/internal/test"
	testioc "github.com/ecodeclub/ecommerce/internal/test/ioc"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	staffUID  = int64(1)
	clientUID = int64(1000)
	learner   = int64(2000)
	token     = "learner-token"

	courseKey       = "course-v1:edX+Demo+2023"
	brokenCourseKey = "course-v1:edX+Broken+2023"
)

func TestCouponModule(t *testing.T) {
	suite.Run(t, new(CouponModuleTestSuite))
}

type CouponModuleTestSuite struct {
	suite.Suite
	lms         *httptest.Server
	server      *egin.Component
	adminServer *egin.Component
	db          *egorm.Component

	catalogSvc catalogue.Service
	orderSvc   order.Service
	invoiceMod *invoice.Module

	partnerID     int64
	stockRecordID int64
	brokenSRID    int64
}

// fakeLMS 只实现课程详情接口
func fakeLMS() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const prefix = "/api/courses/v1/courses/"
		if !strings.HasPrefix(r.URL.Path, prefix) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, prefix), "/")
		if id == brokenCourseKey {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":                id,
			"name":              "Demo Course",
			"short_description": "A demo course",
			"start":             "2023-01-01T00:00:00Z",
			"end":               "2030-01-01T00:00:00Z",
			"media": map[string]any{
				"course_image": map[string]any{"uri": "/asset/demo.png"},
			},
		})
	}))
}

func (s *CouponModuleTestSuite) SetupSuite() {
	s.lms = fakeLMS()
	// 先加载本地配置, 再覆盖 LMS 地址
	s.db = testioc.InitDB()
	econf.Set("lms", map[string]any{
		"url":      s.lms.URL,
		"loginURL": s.lms.URL + "/login",
	})

	// 课程缓存里的图片地址带着上一次测试的 LMS 端口
	_, err := testioc.InitCache().Delete(context.Background(), "course:id:"+courseKey)
	require.NoError(s.T(), err)

	q := testioc.InitMQ()
	cm := catalogue.InitModule(s.db)
	vm := voucher.InitModule(s.db, testioc.InitCache(), cm)
	bm := basket.InitModule(s.db, testioc.InitRedis(), cm, vm)
	om, err := order.InitModule(s.db, q, cm, vm, bm)
	require.NoError(s.T(), err)
	crm := course.InitModule(testioc.InitCache())
	im, err := invoice.InitModule(s.db, q, om)
	require.NoError(s.T(), err)
	m := coupon.InitModule(cm, vm, bm, om, crm)
	s.catalogSvc, s.orderSvc, s.invoiceMod = cm.Svc, om.Svc, im

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(test.NewUserClaims(learner, token)))
	})
	m.Hdl.PublicRoutes(server.Engine)
	s.server = server

	adminServer := egin.Load("server").Build()
	adminServer.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(test.NewStaffClaims(staffUID)))
	})
	m.AdminHdl.PrivateRoutes(adminServer.Engine)
	s.adminServer = adminServer
}

func (s *CouponModuleTestSuite) TearDownSuite() {
	s.lms.Close()
}

func (s *CouponModuleTestSuite) SetupTest() {
	t := s.T()
	ctx := context.Background()
	var err error
	s.partnerID, err = s.catalogSvc.CreatePartner(ctx, catalogue.Partner{Name: "edX", ShortCode: "edx"})
	require.NoError(t, err)
	s.stockRecordID = s.createSeat(courseKey)
	s.brokenSRID = s.createSeat(brokenCourseKey)
}

func (s *CouponModuleTestSuite) createSeat(key string) int64 {
	t := s.T()
	ctx := context.Background()
	pid, err := s.catalogSvc.SaveProduct(ctx, catalogue.Product{
		Structure: catalogue.StructureStandalone,
		Title:     "Seat in " + key,
		ClassName: catalogue.ClassSeat,
		CourseID:  key,
		Attributes: map[string]string{
			catalogue.AttrCourseKey:       key,
			catalogue.AttrCertificateType: "verified",
		},
	})
	require.NoError(t, err)
	id, err := s.catalogSvc.SaveStockRecord(ctx, catalogue.StockRecord{
		ProductID:    pid,
		PartnerID:    s.partnerID,
		PriceExclTax: decimal.NewNullDecimal(decimal.NewFromInt(100)),
	}, "")
	require.NoError(t, err)
	return id
}

func (s *CouponModuleTestSuite) TearDownTest() {
	tables := []string{
		"invoices",
		"orders", "order_lines", "order_discounts",
		"baskets", "basket_lines", "basket_discounts",
		"products", "partners", "stock_records", "catalogs", "catalog_stock_records",
		"offer_ranges", "offer_benefits", "offers",
		"vouchers", "voucher_offers", "voucher_applications",
	}
	for _, table := range tables {
		err := s.db.Exec("TRUNCATE TABLE `" + table + "`").Error
		s.NoError(err)
	}
}

func (s *CouponModuleTestSuite) newCreateReq(title string, srIDs []int64, qty int64) web.CreateCouponReq {
	now := time.Now()
	return web.CreateCouponReq{
		Title:          title,
		ClientUID:      clientUID,
		StartDate:      now.Add(-time.Hour).Format(time.RFC3339),
		EndDate:        now.Add(24 * time.Hour).Format(time.RFC3339),
		StockRecordIDs: srIDs,
		VoucherType:    "Single use",
		Quantity:       qty,
		Price:          "150",
		BenefitType:    "Percentage",
		BenefitValue:   "100",
		Category:       "Affiliate Promotion",
	}
}

func (s *CouponModuleTestSuite) createCoupon(req web.CreateCouponReq) test.Result[web.CreateCouponResp] {
	t := s.T()
	httpReq, err := http.NewRequest(http.MethodPost, "/api/v2/coupons/", iox.NewJSONReader(req))
	require.NoError(t, err)
	httpReq.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.CreateCouponResp]()
	s.adminServer.ServeHTTP(recorder, httpReq)
	return recorder.MustScan()
}

func (s *CouponModuleTestSuite) get(path string) *httptest.ResponseRecorder {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(s.T(), err)
	recorder := httptest.NewRecorder()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *CouponModuleTestSuite) TestCreateCoupon() {
	t := s.T()
	resp := s.createCoupon(s.newCreateReq("Demo coupon", []int64{s.stockRecordID}, 3))
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.True(t, resp.Data.CouponID > 0)
	require.Len(t, resp.Data.Codes, 3)
	for _, c := range resp.Data.Codes {
		assert.Len(t, c, voucher.CodeLength)
	}

	// 客户订单按兑换券价格下单, 等待支付
	o, err := s.orderSvc.FindOrderByNumber(context.Background(), resp.Data.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, clientUID, o.UserID)
	assert.Equal(t, order.StatusOpen, o.Status)
	assert.True(t, o.TotalInclTax.Equal(decimal.NewFromInt(150)))
	require.Len(t, o.Lines, 1)
	assert.Equal(t, resp.Data.CouponID, o.Lines[0].ProductID)

	// 客户的发票由订单事件生成
	s.consumeInvoice(o.Number)
	inv, err := s.invoiceMod.Svc.FindUserInvoice(context.Background(), clientUID, o.Number)
	require.NoError(t, err)
	assert.Equal(t, invoice.StateNotPaid, inv.State)

	req, err := http.NewRequest(http.MethodGet, "/api/v2/coupons/", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListCouponsResp]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Coupons, 1)
	assert.Equal(t, web.Coupon{
		ID:       resp.Data.CouponID,
		Title:    "Demo coupon",
		UPC:      list.Coupons[0].UPC,
		Category: "Affiliate Promotion",
		Price:    "150.00",
	}, list.Coupons[0])
	assert.NotEmpty(t, list.Coupons[0].UPC)
}

func (s *CouponModuleTestSuite) TestCreateCoupon_Failed() {
	testCases := []struct {
		name     string
		req      func() web.CreateCouponReq
		wantCode int
	}{
		{
			name: "库存记录不存在",
			req: func() web.CreateCouponReq {
				return s.newCreateReq("Missing", []int64{s.stockRecordID + 100}, 1)
			},
			wantCode: errs.StockRecordNotFound.Code,
		},
		{
			name: "指定兑换码时数量必须为 1",
			req: func() web.CreateCouponReq {
				req := s.newCreateReq("Fixed", []int64{s.stockRecordID}, 2)
				req.Code = "FIXEDCODE"
				return req
			},
			wantCode: errs.CouponInvalid.Code,
		},
		{
			name: "日期格式错误",
			req: func() web.CreateCouponReq {
				req := s.newCreateReq("Bad date", []int64{s.stockRecordID}, 1)
				req.StartDate = "yesterday"
				return req
			},
			wantCode: errs.CouponInvalid.Code,
		},
		{
			name: "使用方式错误",
			req: func() web.CreateCouponReq {
				req := s.newCreateReq("Bad usage", []int64{s.stockRecordID}, 1)
				req.VoucherType = "Twice"
				return req
			},
			wantCode: errs.CouponInvalid.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			resp := s.createCoupon(tc.req())
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func (s *CouponModuleTestSuite) TestCreateCoupon_CodeExists() {
	t := s.T()
	req := s.newCreateReq("Fixed code", []int64{s.stockRecordID}, 1)
	req.Code = fmt.Sprintf("FIXED%d", time.Now().UnixNano())
	resp := s.createCoupon(req)
	require.Equal(t, 0, resp.Code, resp.Msg)
	assert.Equal(t, []string{req.Code}, resp.Data.Codes)
	before := s.listCoupons()
	var products int64
	require.NoError(t, s.db.Table("products").Count(&products).Error)

	req.Title = "Fixed code again"
	resp = s.createCoupon(req)
	assert.Equal(t, errs.CodeExists.Code, resp.Code)

	// 失败的创建不能留下券商品
	after := s.listCoupons()
	assert.Equal(t, before.Total, after.Total)
	var productsAfter int64
	require.NoError(t, s.db.Table("products").Count(&productsAfter).Error)
	assert.Equal(t, products, productsAfter)
}

func (s *CouponModuleTestSuite) listCoupons() web.ListCouponsResp {
	t := s.T()
	req, err := http.NewRequest(http.MethodGet, "/api/v2/coupons/", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListCouponsResp]()
	s.adminServer.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *CouponModuleTestSuite) TestOffer() {
	t := s.T()
	resp := s.createCoupon(s.newCreateReq("Demo coupon", []int64{s.stockRecordID}, 1))
	require.Equal(t, 0, resp.Code, resp.Msg)
	code := resp.Data.Codes[0]

	recorder := s.get("/coupons/offer/?code=" + code)
	require.Equal(t, http.StatusOK, recorder.Code)
	var offer web.Offer
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&offer))
	assert.Equal(t, web.Offer{
		Course: web.Course{
			ID:               courseKey,
			Name:             "Demo Course",
			ShortDescription: "A demo course",
			ImageURL:         s.lms.URL + "/asset/demo.png",
			Start:            "2023-01-01T00:00:00Z",
			End:              "2030-01-01T00:00:00Z",
		},
		Code:     code,
		Price:    "100.00",
		Benefit:  web.Benefit{Type: "Percentage", Value: "100"},
		NewPrice: "0.00",
	}, offer)

	recorder = s.get("/coupons/offer/?code=NOTEXIST")
	assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	assert.JSONEq(t, `{"error":"Code not valid."}`, recorder.Body.String())
}

func (s *CouponModuleTestSuite) TestOffer_CourseAPIFailed() {
	t := s.T()
	resp := s.createCoupon(s.newCreateReq("Broken coupon", []int64{s.brokenSRID}, 1))
	require.Equal(t, 0, resp.Code, resp.Msg)

	recorder := s.get("/coupons/offer/?code=" + resp.Data.Codes[0])
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.True(t, strings.HasPrefix(body["error"], "Could not get course information. ["), body["error"])
}

func (s *CouponModuleTestSuite) TestRedeem() {
	t := s.T()
	resp := s.createCoupon(s.newCreateReq("Demo coupon", []int64{s.stockRecordID}, 1))
	require.Equal(t, 0, resp.Code, resp.Msg)
	code := resp.Data.Codes[0]

	recorder := s.get("/coupons/redeem/?code=" + code)
	require.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, s.lms.URL, recorder.Header().Get("Location"))

	// 兑换后的订单已完成, 发票已支付
	orders, total, err := s.orderSvc.ListOrders(context.Background(), learner, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	o := orders[0]
	assert.Equal(t, order.StatusComplete, o.Status)
	require.Len(t, o.Discounts, 1)
	assert.Equal(t, code, o.Discounts[0].VoucherCode)
	s.consumeInvoice(o.Number)
	inv, err := s.invoiceMod.Svc.FindUserInvoice(context.Background(), learner, o.Number)
	require.NoError(t, err)
	assert.Equal(t, invoice.StatePaid, inv.State)

	// 只能用一次
	recorder = s.get("/coupons/redeem/?code=" + code)
	assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
	assert.JSONEq(t, `{"error":"Basket total not $0, current value = $100.00."}`, recorder.Body.String())

	recorder = s.get("/coupons/offer/?code=" + code)
	assert.Equal(t, http.StatusNotAcceptable, recorder.Code)
}

func (s *CouponModuleTestSuite) TestRedeem_Failed() {
	t := s.T()
	req := s.newCreateReq("Expired coupon", []int64{s.stockRecordID}, 1)
	req.StartDate = time.Now().Add(-48 * time.Hour).Format(time.RFC3339)
	req.EndDate = time.Now().Add(-24 * time.Hour).Format(time.RFC3339)
	resp := s.createCoupon(req)
	require.Equal(t, 0, resp.Code, resp.Msg)
	expired := resp.Data.Codes[0]

	testCases := []struct {
		name      string
		code      string
		wantCode  int
		wantError string
	}{
		{name: "兑换码不存在", code: "NOTEXIST", wantCode: http.StatusNotFound, wantError: "Code does not exist."},
		{name: "没有兑换码", code: "", wantCode: http.StatusNotFound, wantError: "Code does not exist."},
		{name: "兑换码过期", code: expired, wantCode: http.StatusNotAcceptable, wantError: "Code expired."},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := s.get("/coupons/redeem/?code=" + tc.code)
			assert.Equal(t, tc.wantCode, recorder.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, tc.wantError, body["error"])
		})
	}
}

func (s *CouponModuleTestSuite) TestApp() {
	recorder := s.get("/coupons/app/")
	// 普通用户看不到管理页面
	assert.Equal(s.T(), http.StatusNotFound, recorder.Code)
}

// consumeInvoice 消费订单事件直到指定订单开出发票
func (s *CouponModuleTestSuite) consumeInvoice(number string) {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	for {
		err := s.invoiceMod.Consumer.Consume(ctx)
		if ctx.Err() != nil {
			require.FailNow(t, "等待订单事件超时", number)
		}
		if err != nil {
			continue
		}
		var cnt int64
		require.NoError(t, s.db.Table("invoices").Where("order_number = ?", number).Count(&cnt).Error)
		if cnt > 0 {
			return
		}
	}
}
