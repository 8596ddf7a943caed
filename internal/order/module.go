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

package order

import (
	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/order/internal/event"
	"github.com/ecodeclub/ecommerce/internal/order/internal/job"
	"github.com/ecodeclub/ecommerce/internal/order/internal/service"
	"github.com/ecodeclub/ecommerce/internal/order/internal/web"
)

type (
	Handler               = web.Handler
	AdminHandler          = web.AdminHandler
	Service               = service.Service
	PlaceOrderReq         = service.PlaceOrderReq
	Order                 = domain.Order
	Line                  = domain.Line
	Discount              = domain.Discount
	Metadata              = domain.Metadata
	OrderStatus           = domain.OrderStatus
	OrderSource           = domain.OrderSource
	OrderEvent            = event.OrderEvent
	CloseExpiredOrdersJob = job.CloseExpiredOrdersJob
)

const (
	StatusOpen             = domain.StatusOpen
	StatusComplete         = domain.StatusComplete
	StatusFulfillmentError = domain.StatusFulfillmentError
	StatusCanceled         = domain.StatusCanceled

	SourceCheckout = domain.SourceCheckout
	SourceInvoice  = domain.SourceInvoice

	OrderEventName = event.OrderEventName
)

var (
	ErrOrderNotFound       = service.ErrOrderNotFound
	ErrOrderExists         = service.ErrOrderExists
	ErrIllegalBasketStatus = service.ErrIllegalBasketStatus
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
	CloseJob *CloseExpiredOrdersJob
}
