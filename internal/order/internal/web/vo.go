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
	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ekit/slice"
)

// ListOrdersReq 分页查询订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// OrderDetailReq 获取订单详情
type OrderDetailReq struct {
	Number string `json:"number"`
}

type OrderDetailResp struct {
	Order Order `json:"order"`
}

type Order struct {
	Number         string     `json:"number"`
	BasketID       int64      `json:"basketId"`
	UserID         int64      `json:"userId,omitempty"`
	Currency       string     `json:"currency"`
	TotalInclTax   string     `json:"totalInclTax"`
	TotalExclTax   string     `json:"totalExclTax"`
	TotalDiscount  string     `json:"totalDiscount"`
	ShippingMethod string     `json:"shippingMethod"`
	ShippingCharge string     `json:"shippingCharge"`
	Status         uint8      `json:"status"`
	StatusName     string     `json:"statusName"`
	Lines          []Line     `json:"lines,omitempty"`
	Discounts      []Discount `json:"discounts,omitempty"`
	DatePlaced     int64      `json:"datePlaced"`
}

type Line struct {
	ProductID int64  `json:"productId"`
	Title     string `json:"title"`
	UPC       string `json:"upc,omitempty"`
	Quantity  int64  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LinePrice string `json:"linePrice"`
}

type Discount struct {
	VoucherCode string `json:"voucherCode"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

func newOrder(o domain.Order) Order {
	return Order{
		Number:         o.Number,
		BasketID:       o.BasketID,
		UserID:         o.UserID,
		Currency:       o.Currency,
		TotalInclTax:   o.TotalInclTax.StringFixed(2),
		TotalExclTax:   o.TotalExclTax.StringFixed(2),
		TotalDiscount:  o.TotalDiscount().StringFixed(2),
		ShippingMethod: o.ShippingMethod.Name,
		ShippingCharge: o.ShippingInclTax.StringFixed(2),
		Status:         o.Status.ToUint8(),
		StatusName:     o.Status.String(),
		Lines: slice.Map(o.Lines, func(idx int, src domain.Line) Line {
			return Line{
				ProductID: src.ProductID,
				Title:     src.Title,
				UPC:       src.UPC,
				Quantity:  src.Quantity,
				UnitPrice: src.UnitPrice.StringFixed(2),
				LinePrice: src.LinePrice.StringFixed(2),
			}
		}),
		Discounts: slice.Map(o.Discounts, func(idx int, src domain.Discount) Discount {
			return Discount{
				VoucherCode: src.VoucherCode,
				Amount:      src.Amount.StringFixed(2),
				Description: src.Description,
			}
		}),
		DatePlaced: o.DatePlaced,
	}
}
