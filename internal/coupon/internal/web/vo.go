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
	"fmt"
	"time"

	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/service"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/shopspring/decimal"
)

type CodeReq struct {
	Code string `form:"code"`
}

type Course struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"shortDescription"`
	ImageURL         string `json:"imageUrl"`
	Start            string `json:"start"`
	End              string `json:"end"`
}

type Benefit struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Offer struct {
	Course   Course  `json:"course"`
	Code     string  `json:"code"`
	Price    string  `json:"price"`
	Benefit  Benefit `json:"benefit"`
	NewPrice string  `json:"newPrice"`
}

func newOffer(o service.Offer) Offer {
	return Offer{
		Course: Course{
			ID:               o.Course.ID,
			Name:             o.Course.Name,
			ShortDescription: o.Course.ShortDescription,
			ImageURL:         o.Course.ImageURL,
			Start:            o.Course.Start,
			End:              o.Course.End,
		},
		Code:  o.Code,
		Price: o.Price.StringFixed(2),
		Benefit: Benefit{
			Type:  string(o.Benefit.Type),
			Value: o.Benefit.Value.String(),
		},
		NewPrice: o.NewPrice.StringFixed(2),
	}
}

type CreateCouponReq struct {
	Title     string `json:"title"`
	ClientUID int64  `json:"clientUid"`
	// 2006-01-02 或者 RFC3339
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	StockRecordIDs []int64 `json:"stockRecordIds"`
	Code           string  `json:"code"`
	// Single use, Multi-use, Once per customer
	VoucherType  string `json:"voucherType"`
	Quantity     int64  `json:"quantity"`
	Price        string `json:"price"`
	BenefitType  string `json:"benefitType"`
	BenefitValue string `json:"benefitValue"`
	Category     string `json:"category"`
}

func (r CreateCouponReq) toService() (service.CreateCouponReq, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return service.CreateCouponReq{}, fmt.Errorf("%w: startDate=%s", service.ErrInvalidCoupon, r.StartDate)
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return service.CreateCouponReq{}, fmt.Errorf("%w: endDate=%s", service.ErrInvalidCoupon, r.EndDate)
	}
	usage, ok := voucher.UsageFromString(r.VoucherType)
	if !ok {
		return service.CreateCouponReq{}, fmt.Errorf("%w: voucherType=%s", service.ErrInvalidCoupon, r.VoucherType)
	}
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return service.CreateCouponReq{}, fmt.Errorf("%w: price=%s", service.ErrInvalidCoupon, r.Price)
	}
	value, err := decimal.NewFromString(r.BenefitValue)
	if err != nil {
		return service.CreateCouponReq{}, fmt.Errorf("%w: benefitValue=%s", service.ErrInvalidCoupon, r.BenefitValue)
	}
	return service.CreateCouponReq{
		Title:          r.Title,
		ClientUID:      r.ClientUID,
		StartAt:        start.UnixMilli(),
		EndAt:          end.UnixMilli(),
		StockRecordIDs: r.StockRecordIDs,
		Code:           r.Code,
		Usage:          usage,
		Quantity:       r.Quantity,
		Price:          price,
		BenefitType:    voucher.BenefitType(r.BenefitType),
		BenefitValue:   value,
		Category:       r.Category,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation(time.DateOnly, s, time.Local)
}

type CreateCouponResp struct {
	CouponID    int64    `json:"couponId"`
	OrderNumber string   `json:"orderNumber"`
	Codes       []string `json:"codes"`
}

type ListCouponsReq struct {
	Offset int `form:"offset" json:"offset"`
	Limit  int `form:"limit" json:"limit"`
}

type Coupon struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	UPC      string `json:"upc"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

func newCoupon(p catalogue.Product) Coupon {
	res := Coupon{
		ID:       p.ID,
		Title:    p.Title,
		UPC:      p.UPC,
		Category: p.Attr(catalogue.AttrCouponCategory),
	}
	if len(p.StockRecords) > 0 && p.StockRecords[0].PriceExclTax.Valid {
		res.Price = p.StockRecords[0].PriceExclTax.Decimal.StringFixed(2)
	}
	return res
}

type ListCouponsResp struct {
	Total   int64    `json:"total"`
	Coupons []Coupon `json:"coupons"`
}
