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
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	productClassNotFoundResult = ginx.Result{
		Code: errs.ProductClassNotFound.Code,
		Msg:  errs.ProductClassNotFound.Msg,
	}
	attributeInvalidResult = ginx.Result{
		Code: errs.AttributeInvalid.Code,
		Msg:  errs.AttributeInvalid.Msg,
	}
	partnerShortCodeInvalidResult = ginx.Result{
		Code: errs.PartnerShortCodeInvalid.Code,
		Msg:  errs.PartnerShortCodeInvalid.Msg,
	}
	productNotFoundResult = ginx.Result{
		Code: errs.ProductNotFound.Code,
		Msg:  errs.ProductNotFound.Msg,
	}
)
