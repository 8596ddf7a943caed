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

	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/shopspring/decimal"
)

type State string

const (
	StateNotPaid State = "Not Paid"
	StatePaid    State = "Paid"
)

type Invoice struct {
	ID    int64
	Order order.Order
	State State
	Ctime int64
	Utime int64
}

func (i Invoice) String() string {
	return fmt.Sprintf("Invoice %d for order number %s", i.ID, i.Order.Number)
}

// Client 发票抬头就是下单用户
func (i Invoice) Client() int64 {
	return i.Order.UserID
}

func (i Invoice) Total() decimal.Decimal {
	return i.Order.TotalInclTax
}

// StateOf 已完成的订单对应的发票视为已支付
func StateOf(o order.Order) State {
	if o.Status == order.StatusComplete {
		return StatePaid
	}
	return StateNotPaid
}
