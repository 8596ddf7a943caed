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

package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/service"
	couponmocks "github.com/ecodeclub/ecommerce/internal/coupon/mocks"
	"github.com/ecodeclub/ecommerce/internal/course"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/ecommerce/internal/test"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const loginURL = "http://lms.local/login"

func newServer(svc service.Service, sess session.Session) *gin.Engine {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		if sess != nil {
			ctx.Set("_session", sess)
		}
	})
	NewHandler(svc, loginURL).PublicRoutes(server)
	return server
}

func TestHandler_App(t *testing.T) {
	testCases := []struct {
		name         string
		sess         session.Session
		wantCode     int
		wantLocation string
	}{
		{
			name:         "未登录跳转登录页",
			wantCode:     http.StatusFound,
			wantLocation: loginURL + "?next=%2Fcoupons%2Fapp%2F",
		},
		{
			name:     "非员工",
			sess:     session.NewMemorySession(test.NewUserClaims(9, "token")),
			wantCode: http.StatusNotFound,
		},
		{
			name:     "员工",
			sess:     session.NewMemorySession(test.NewStaffClaims(1)),
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			server := newServer(couponmocks.NewMockService(ctrl), tc.sess)

			req := httptest.NewRequest(http.MethodGet, "/coupons/app/", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
			if tc.wantCode == http.StatusOK {
				assert.Contains(t, recorder.Body.String(), "Coupon Administration")
			}
		})
	}
}

func TestHandler_Offer(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *couponmocks.MockService)
		wantCode int
		wantBody map[string]any
	}{
		{
			name: "兑换码无效",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().GetOffer(gomock.Any(), "BAD", int64(9), "token").
					Return(service.Offer{}, fmt.Errorf("%w: code=BAD", service.ErrCodeNotValid))
			},
			wantCode: http.StatusNotAcceptable,
			wantBody: map[string]any{"error": "Code not valid."},
		},
		{
			name: "课程接口失败",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().GetOffer(gomock.Any(), "BAD", int64(9), "token").
					Return(service.Offer{}, fmt.Errorf("%w: %w", service.ErrCourseInfo, course.ErrCourseAPI))
			},
			wantCode: http.StatusInternalServerError,
			wantBody: map[string]any{
				"error": fmt.Sprintf("Could not get course information. [%s]", course.ErrCourseAPI.Error()),
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := couponmocks.NewMockService(ctrl)
			tc.mock(svc)
			server := newServer(svc, session.NewMemorySession(test.NewUserClaims(9, "token")))

			req := httptest.NewRequest(http.MethodGet, "/coupons/offer/?code=BAD", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			var body map[string]any
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, tc.wantBody, body)
		})
	}
}

func TestHandler_OfferSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := couponmocks.NewMockService(ctrl)
	svc.EXPECT().GetOffer(gomock.Any(), "GOOD", int64(9), "token").Return(service.Offer{
		Course: course.Course{ID: "course-v1:a+b+c", Name: "Demo Course", ImageURL: "http://lms.local/img.png"},
		Code:   "GOOD",
		Price:  decimal.NewFromInt(100),
		Benefit: voucher.Benefit{
			Type:  voucher.BenefitTypePercentage,
			Value: decimal.NewFromInt(100),
		},
		NewPrice: decimal.Zero,
	}, nil)
	server := newServer(svc, session.NewMemorySession(test.NewUserClaims(9, "token")))

	req := httptest.NewRequest(http.MethodGet, "/coupons/offer/?code=GOOD", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	var offer Offer
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&offer))
	assert.Equal(t, Offer{
		Course: Course{ID: "course-v1:a+b+c", Name: "Demo Course", ImageURL: "http://lms.local/img.png"},
		Code:   "GOOD",
		Price:  "100.00",
		Benefit: Benefit{
			Type:  "Percentage",
			Value: "100",
		},
		NewPrice: "0.00",
	}, offer)
}

func TestHandler_Redeem(t *testing.T) {
	paidBasket := basket.Basket{
		ID: 7,
		Lines: []basket.Line{
			{ProductID: 101, Quantity: 1, PriceExclTax: decimal.RequireFromString("49.5")},
		},
	}
	testCases := []struct {
		name         string
		mock         func(svc *couponmocks.MockService)
		wantCode     int
		wantLocation string
		wantError    string
	}{
		{
			name: "兑换码不存在",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().Redeem(gomock.Any(), "CODE", int64(9)).
					Return(service.Redemption{}, service.ErrCodeNotExist)
			},
			wantCode:  http.StatusNotFound,
			wantError: "Code does not exist.",
		},
		{
			name: "兑换码过期",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().Redeem(gomock.Any(), "CODE", int64(9)).
					Return(service.Redemption{}, service.ErrCodeExpired)
			},
			wantCode:  http.StatusNotAcceptable,
			wantError: "Code expired.",
		},
		{
			name: "商品不可购买",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().Redeem(gomock.Any(), "CODE", int64(9)).
					Return(service.Redemption{Product: catalogue.Product{Title: "Seat in Demo Course"}},
						service.ErrProductUnavailable)
			},
			wantCode:  http.StatusNotAcceptable,
			wantError: "Product [Seat in Demo Course] not available for purchase.",
		},
		{
			name: "购物车不是免费的",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().Redeem(gomock.Any(), "CODE", int64(9)).
					Return(service.Redemption{Basket: paidBasket}, service.ErrBasketNotFree)
			},
			wantCode:  http.StatusNotAcceptable,
			wantError: "Basket total not $0, current value = $49.50.",
		},
		{
			name: "订单未完成",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().Redeem(gomock.Any(), "CODE", int64(9)).
					Return(service.Redemption{Order: order.Order{ID: 1}}, service.ErrOrderNotComplete)
			},
			wantCode:  http.StatusInternalServerError,
			wantError: "Error when trying to redeem code.",
		},
		{
			name: "兑换成功",
			mock: func(svc *couponmocks.MockService) {
				svc.EXPECT().Redeem(gomock.Any(), "CODE", int64(9)).
					Return(service.Redemption{RedirectURL: "http://lms.local/"}, nil)
			},
			wantCode:     http.StatusFound,
			wantLocation: "http://lms.local/",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := couponmocks.NewMockService(ctrl)
			tc.mock(svc)
			server := newServer(svc, session.NewMemorySession(test.NewUserClaims(9, "token")))

			req := httptest.NewRequest(http.MethodGet, "/coupons/redeem/?code=CODE", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
			if tc.wantError == "" {
				return
			}
			var body map[string]string
			require.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
			assert.Equal(t, tc.wantError, body["error"])
		})
	}
}

func TestHandler_RedeemWithoutLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	server := newServer(couponmocks.NewMockService(ctrl), nil)

	req := httptest.NewRequest(http.MethodGet, "/coupons/redeem/?code=CODE", nil)
	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusFound, recorder.Code)
	assert.Equal(t, loginURL+"?next=%2Fcoupons%2Fredeem%2F%3Fcode%3DCODE", recorder.Header().Get("Location"))
}
