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

package event

const OrderEventName = "order_events"

// OrderEvent 订单创建后发送, 发票等下游模块消费
type OrderEvent struct {
	OrderID      int64  `json:"orderId"`
	OrderNumber  string `json:"orderNumber"`
	BasketID     int64  `json:"basketId"`
	UserID       int64  `json:"userId"`
	Status       uint8  `json:"status"`
	Currency     string `json:"currency"`
	TotalInclTax string `json:"totalInclTax"`
	DatePlaced   int64  `json:"datePlaced"`
}
