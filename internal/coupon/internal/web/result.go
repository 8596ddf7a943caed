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
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	couponInvalidResult = ginx.Result{
		Code: errs.CouponInvalid.Code,
		Msg:  errs.CouponInvalid.Msg,
	}
	stockRecordNotFoundResult = ginx.Result{
		Code: errs.StockRecordNotFound.Code,
		Msg:  errs.StockRecordNotFound.Msg,
	}
	codeExistsResult = ginx.Result{
		Code: errs.CodeExists.Code,
		Msg:  errs.CodeExists.Msg,
	}
)
