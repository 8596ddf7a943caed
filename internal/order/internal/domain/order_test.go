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
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderNumber(t *testing.T) {
	assert.Equal(t, "EDX-100001", OrderNumber("", 1))
	assert.Equal(t, "EDX-100042", OrderNumber("EDX", 42))
	assert.Equal(t, "ECOM-1100000", OrderNumber("ECOM", 1000000))
}

func TestOrder_TotalDiscount(t *testing.T) {
	o := Order{
		Status: StatusComplete,
		Discounts: []Discount{
			{Amount: decimal.RequireFromString("10.5")},
			{Amount: decimal.RequireFromString("0.5")},
		},
	}
	assert.True(t, decimal.NewFromInt(11).Equal(o.TotalDiscount()))
	assert.True(t, o.IsComplete())
	assert.Equal(t, "Complete", o.Status.String())
	assert.Equal(t, "Unknown", OrderStatus(9).String())
}
