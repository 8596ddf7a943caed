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
	"github.com/gin-gonic/gin"
)

// AdminHandler 只挂在 admin 服务器上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc: svc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[OrderDetailReq](h.Detail))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	list, count, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: count,
			Orders: slice.Map(list, func(idx int, src domain.Order) Order {
				return newOrder(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req OrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderByNumber(ctx.Request.Context(), req.Number)
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
