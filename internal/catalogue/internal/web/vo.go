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
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/domain"
	"github.com/ecodeclub/ekit/slice"
	"github.com/shopspring/decimal"
)

type ListProductsReq struct {
	ProductClass string `form:"product_class" json:"productClass"`
	Offset       int    `form:"offset" json:"offset"`
	Limit        int    `form:"limit" json:"limit"`
}

type ListProductsResp struct {
	Total    int64     `json:"total"`
	Products []Product `json:"products"`
}

type Product struct {
	ID           int64             `json:"id,omitempty"`
	Structure    string            `json:"structure"`
	UPC          string            `json:"upc"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	ProductClass string            `json:"productClass"`
	CourseID     string            `json:"courseId"`
	ExpiresAt    int64             `json:"expiresAt"`
	Attributes   map[string]string `json:"attributes,omitempty"`
	StockRecords []StockRecord     `json:"stockRecords,omitempty"`
}

type StockRecord struct {
	ID            int64  `json:"id,omitempty"`
	ProductID     int64  `json:"productId"`
	PartnerID     int64  `json:"partnerId"`
	PartnerSKU    string `json:"partnerSku"`
	PriceCurrency string `json:"priceCurrency"`
	// 为空表示未定价
	PriceExclTax string `json:"priceExclTax"`
	NumInStock   int64  `json:"numInStock"`
	NumAllocated int64  `json:"numAllocated"`
}

type SaveStockRecordReq struct {
	StockRecord StockRecord `json:"stockRecord"`
	CatalogName string      `json:"catalogName"`
}

type Partner struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	ShortCode string `json:"shortCode"`
}

type IDResp struct {
	ID int64 `json:"id"`
}

func newProduct(p domain.Product) Product {
	return Product{
		ID:           p.ID,
		Structure:    string(p.Structure),
		UPC:          p.UPC,
		Title:        p.Title,
		Description:  p.Description,
		ProductClass: p.ClassName,
		CourseID:     p.CourseID,
		ExpiresAt:    p.ExpiresAt,
		Attributes:   p.Attributes,
		StockRecords: slice.Map(p.StockRecords, func(idx int, src domain.StockRecord) StockRecord {
			return newStockRecord(src)
		}),
	}
}

func (p Product) toDomain() domain.Product {
	return domain.Product{
		ID:          p.ID,
		Structure:   domain.Structure(p.Structure),
		UPC:         p.UPC,
		Title:       p.Title,
		Description: p.Description,
		ClassName:   p.ProductClass,
		CourseID:    p.CourseID,
		ExpiresAt:   p.ExpiresAt,
		Attributes:  p.Attributes,
	}
}

func newStockRecord(sr domain.StockRecord) StockRecord {
	res := StockRecord{
		ID:            sr.ID,
		ProductID:     sr.ProductID,
		PartnerID:     sr.PartnerID,
		PartnerSKU:    sr.PartnerSKU,
		PriceCurrency: sr.PriceCurrency,
		NumInStock:    sr.NumInStock,
		NumAllocated:  sr.NumAllocated,
	}
	if sr.PriceExclTax.Valid {
		res.PriceExclTax = sr.PriceExclTax.Decimal.StringFixed(2)
	}
	return res
}

func (s StockRecord) toDomain() (domain.StockRecord, error) {
	res := domain.StockRecord{
		ID:            s.ID,
		ProductID:     s.ProductID,
		PartnerID:     s.PartnerID,
		PartnerSKU:    s.PartnerSKU,
		PriceCurrency: s.PriceCurrency,
		NumInStock:    s.NumInStock,
		NumAllocated:  s.NumAllocated,
	}
	if s.PriceExclTax != "" {
		price, err := decimal.NewFromString(s.PriceExclTax)
		if err != nil {
			return domain.StockRecord{}, err
		}
		res.PriceExclTax = decimal.NewNullDecimal(price)
	}
	return res, nil
}
