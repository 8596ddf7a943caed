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

package coupon

import (
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/service"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/web"
)

type (
	Handler            = web.Handler
	AdminHandler       = web.AdminHandler
	Service            = service.Service
	Offer              = service.Offer
	Redemption         = service.Redemption
	CreateCouponReq    = service.CreateCouponReq
	CreateCouponResult = service.CreateCouponResult
)

const AccessTokenClaimKey = web.AccessTokenClaimKey

var (
	ErrCodeNotValid       = service.ErrCodeNotValid
	ErrCodeNotExist       = service.ErrCodeNotExist
	ErrCodeExpired        = service.ErrCodeExpired
	ErrProductUnavailable = service.ErrProductUnavailable
	ErrBasketNotFree      = service.ErrBasketNotFree
	ErrInvalidCoupon      = service.ErrInvalidCoupon
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	AdminHdl *AdminHandler
}
