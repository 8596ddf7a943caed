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

package voucher

import (
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/service"
)

type (
	Service      = service.Service
	VoucherBatch = service.VoucherBatch
	Voucher      = domain.Voucher
	Offer        = domain.Offer
	Benefit      = domain.Benefit
	BenefitType  = domain.BenefitType
	Range        = domain.Range
	Usage        = domain.Usage
	Application  = domain.Application
)

const (
	UsageSingleUse       = domain.UsageSingleUse
	UsageMultiUse        = domain.UsageMultiUse
	UsageOncePerCustomer = domain.UsageOncePerCustomer

	BenefitTypePercentage = domain.BenefitTypePercentage
	BenefitTypeAbsolute   = domain.BenefitTypeAbsolute
	BenefitTypeFixed      = domain.BenefitTypeFixed

	CodeLength = service.CodeLength
)

var (
	ErrVoucherNotFound   = service.ErrVoucherNotFound
	ErrVoucherUsed       = service.ErrVoucherUsed
	ErrVoucherCodeExists = service.ErrVoucherCodeExists
	ErrInvalidBatch      = service.ErrInvalidBatch

	UsageFromString = domain.UsageFromString
)

type Module struct {
	Svc Service
}
