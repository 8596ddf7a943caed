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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

func (s OrderStatus) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusComplete:
		return "Complete"
	case StatusFulfillmentError:
		return "Fulfillment Error"
	case StatusCanceled:
		return "Canceled"
	}
	return "Unknown"
}

const (
	StatusOpen             OrderStatus = 1 // 待支付
	StatusComplete         OrderStatus = 2 // 已完成
	StatusFulfillmentError OrderStatus = 3 // 履约失败
	StatusCanceled         OrderStatus = 4 // 已取消
)

// OrderSource 决定订单是否会因为超时未支付被关闭
type OrderSource uint8

func (s OrderSource) ToUint8() uint8 {
	return uint8(s)
}

const (
	SourceCheckout OrderSource = 1 // 用户兑换或者购买
	SourceInvoice  OrderSource = 2 // 为企业客户创建兑换券, 凭发票线下结算
)

const (
	DefaultNumberPrefix = "EDX"
	// 订单号 = 前缀 + (偏移量 + 购物车ID)
	numberOffset = 100000

	FreeShippingName = "Free shipping"
	FreeShippingCode = "free-shipping"
)

type ShippingMethod struct {
	Name string
	Code string
}

// Metadata 下单需要的信息, 由购物车计算得出
type Metadata struct {
	Number         string
	ShippingMethod ShippingMethod
	ShippingCharge decimal.Decimal
	Total          decimal.Decimal
}

func OrderNumber(prefix string, basketID int64) string {
	if prefix == "" {
		prefix = DefaultNumberPrefix
	}
	return fmt.Sprintf("%s-%d", prefix, numberOffset+basketID)
}

type Order struct {
	ID              int64
	Number          string
	BasketID        int64
	UserID          int64
	Currency        string
	TotalInclTax    decimal.Decimal
	TotalExclTax    decimal.Decimal
	ShippingMethod  ShippingMethod
	ShippingInclTax decimal.Decimal
	ShippingExclTax decimal.Decimal
	Status          OrderStatus
	Source          OrderSource
	Lines           []Line
	Discounts       []Discount
	DatePlaced      int64
	Ctime           int64
	Utime           int64
}

func (o Order) IsComplete() bool {
	return o.Status == StatusComplete
}

func (o Order) TotalDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range o.Discounts {
		total = total.Add(d.Amount)
	}
	return total
}

type Line struct {
	ID            int64
	ProductID     int64
	StockRecordID int64
	Title         string
	UPC           string
	Quantity      int64
	UnitPrice     decimal.Decimal
	// 优惠前
	LinePrice decimal.Decimal
}

type Discount struct {
	VoucherID   int64
	VoucherCode string
	OfferID     int64
	Amount      decimal.Decimal
	Description string
}
