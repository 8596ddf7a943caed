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

	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/order/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[OrderDetailReq](h.RetrieveOrderDetail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), sess.Claims().Uid, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询用户订单失败: %w", err)
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

// RetrieveOrderDetail 只能看到自己的订单
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req OrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindUserOrderByNumber(ctx.Request.Context(), sess.Claims().Uid, req.Number)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查询订单详情失败: %w", err)
	}
	return ginx.Result{
		Data: OrderDetailResp{Order: newOrder(order)},
	}, nil
}
