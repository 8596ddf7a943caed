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

	"github.com/ecodeclub/ecommerce/internal/invoice/internal/errs"
	"github.com/ecodeclub/ecommerce/internal/invoice/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/invoice/detail", ginx.BS[DetailReq](h.Detail))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Detail(ctx *ginx.Context, req DetailReq, sess session.Session) (ginx.Result, error) {
	inv, err := h.svc.FindUserInvoice(ctx.Request.Context(), sess.Claims().Uid, req.OrderNumber)
	if errors.Is(err, service.ErrInvoiceNotFound) {
		return ginx.Result{
			Code: errs.InvoiceNotFound.Code,
			Msg:  errs.InvoiceNotFound.Msg,
		}, err
	}
	if err != nil {
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, fmt.Errorf("查询发票失败: %w", err)
	}
	return ginx.Result{
		Data: Invoice{
			ID:          inv.ID,
			Description: inv.String(),
			OrderNumber: inv.Order.Number,
			Client:      inv.Client(),
			Total:       inv.Total().StringFixed(2),
			Currency:    inv.Order.Currency,
			State:       string(inv.State),
			Ctime:       inv.Ctime,
		},
	}, nil
}

type DetailReq struct {
	OrderNumber string `json:"orderNumber"`
}

type Invoice struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	OrderNumber string `json:"orderNumber"`
	Client      int64  `json:"client"`
	Total       string `json:"total"`
	Currency    string `json:"currency"`
	State       string `json:"state"`
	Ctime       int64  `json:"ctime"`
}
