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
	"errors"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 50

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.POST("/api/v2/coupons/", ginx.B[CreateCouponReq](h.Create))
	server.GET("/api/v2/coupons/", ginx.B[ListCouponsReq](h.List))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateCouponReq) (ginx.Result, error) {
	sreq, err := req.toService()
	if err != nil {
		return couponInvalidResult, err
	}
	res, err := h.svc.CreateCoupon(ctx.Request.Context(), sreq)
	switch {
	case errors.Is(err, service.ErrInvalidCoupon):
		return couponInvalidResult, err
	case errors.Is(err, service.ErrStockRecordNotFound):
		return stockRecordNotFoundResult, err
	case errors.Is(err, service.ErrCodeExists):
		return codeExistsResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建兑换券失败: %w", err)
	}
	return ginx.Result{
		Data: CreateCouponResp{
			CouponID:    res.CouponID,
			OrderNumber: res.OrderNumber,
			Codes:       res.Codes,
		},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListCouponsReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	ps, total, err := h.svc.ListCoupons(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取兑换券列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListCouponsResp{
			Total: total,
			Coupons: slice.Map(ps, func(idx int, src catalogue.Product) Coupon {
				return newCoupon(src)
			}),
		},
	}, nil
}
