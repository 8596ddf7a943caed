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

package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type BenefitType string

const (
	BenefitTypePercentage BenefitType = "Percentage"
	BenefitTypeAbsolute   BenefitType = "Absolute"
	BenefitTypeFixed      BenefitType = "Fixed"
)

func (t BenefitType) Valid() bool {
	switch t {
	case BenefitTypePercentage, BenefitTypeAbsolute, BenefitTypeFixed:
		return true
	}
	return false
}

type Offer struct {
	ID       int64
	Name     string
	Priority int64
	Benefit  Benefit
}

type Benefit struct {
	ID    int64
	Type  BenefitType
	Value decimal.Decimal
	Range Range
}

var hundred = decimal.NewFromInt(100)

// Discount 计算单价为 price 的商品可以优惠多少, 结果落在 [0, price]
func (b Benefit) Discount(price decimal.Decimal) decimal.Decimal {
	if !price.IsPositive() {
		return decimal.Zero
	}
	var d decimal.Decimal
	switch b.Type {
	case BenefitTypePercentage:
		d = price.Mul(b.Value).Div(hundred).Round(2)
	case BenefitTypeAbsolute:
		d = b.Value
	case BenefitTypeFixed:
		// 固定价格, 优惠的是差价
		d = price.Sub(b.Value)
	default:
		return decimal.Zero
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(price) {
		return price
	}
	return d
}

func (b Benefit) Description() string {
	switch b.Type {
	case BenefitTypePercentage:
		return fmt.Sprintf("%s%% discount", b.Value.String())
	case BenefitTypeAbsolute:
		return fmt.Sprintf("%s discount", b.Value.StringFixed(2))
	case BenefitTypeFixed:
		return fmt.Sprintf("Fixed price %s", b.Value.StringFixed(2))
	}
	return ""
}

type Range struct {
	ID         int64
	Name       string
	CatalogID  int64
	ProductIDs []int64
}

func (r Range) Contains(productID int64) bool {
	for _, id := range r.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}
