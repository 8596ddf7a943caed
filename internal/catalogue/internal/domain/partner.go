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
	"time"

	"github.com/shopspring/decimal"
)

// MaxShortCodeLength 合作方简码的最大长度
const MaxShortCodeLength = 8

type Partner struct {
	ID        int64
	Name      string
	ShortCode string
}

type StockRecord struct {
	ID            int64
	ProductID     int64
	PartnerID     int64
	PartnerSKU    string
	PriceCurrency string
	// Valid = false 表示尚未定价
	PriceExclTax decimal.NullDecimal
	NumInStock   int64
	NumAllocated int64
}

func (s StockRecord) NetStock() int64 {
	return s.NumInStock - s.NumAllocated
}

type Catalog struct {
	ID             int64
	Name           string
	PartnerID      int64
	StockRecordIDs []int64
}

// SameStockRecords 判断目录与给定库存记录是否是同一个集合, 与顺序无关
func (c Catalog) SameStockRecords(ids []int64) bool {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	got := make(map[int64]struct{}, len(c.StockRecordIDs))
	for _, id := range c.StockRecordIDs {
		got[id] = struct{}{}
	}
	if len(want) != len(got) {
		return false
	}
	for id := range want {
		if _, ok := got[id]; !ok {
			return false
		}
	}
	return true
}

type Availability struct {
	IsAvailableToBuy bool
	Message          string
}

type PurchaseInfo struct {
	Price        decimal.Decimal
	StockRecord  StockRecord
	Availability Availability
}

// NewPurchaseInfo 选择商品的第一条库存记录作为购买信息
func NewPurchaseInfo(p Product, cls ProductClass, now time.Time) PurchaseInfo {
	if len(p.StockRecords) == 0 {
		return PurchaseInfo{Availability: Availability{Message: "Unavailable"}}
	}
	sr := p.StockRecords[0]
	info := PurchaseInfo{StockRecord: sr}
	switch {
	case !sr.PriceExclTax.Valid:
		info.Availability = Availability{Message: "Unavailable"}
	case p.IsExpired(now):
		info.Price = sr.PriceExclTax.Decimal
		info.Availability = Availability{Message: "Expired"}
	case cls.TrackStock && sr.NetStock() <= 0:
		info.Price = sr.PriceExclTax.Decimal
		info.Availability = Availability{Message: "Out of stock"}
	default:
		info.Price = sr.PriceExclTax.Decimal
		info.Availability = Availability{IsAvailableToBuy: true, Message: "Available"}
	}
	return info
}
