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

package dao

import (
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/shopspring/decimal"
)

type ProductClass struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:商品类别自增ID"`
	Name             string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_product_class_name;comment:类别名称,区分大小写"`
	Slug             string `gorm:"type:varchar(128);not null;comment:类别简写"`
	RequiresShipping bool   `gorm:"not null;default:false;comment:是否需要物流"`
	TrackStock       bool   `gorm:"not null;default:false;comment:是否追踪库存"`
	Ctime            int64
	Utime            int64
}

type ProductAttribute struct {
	Id             int64  `gorm:"primaryKey;autoIncrement;comment:商品属性自增ID"`
	ProductClassId int64  `gorm:"not null;uniqueIndex:uniq_class_code;comment:商品类别ID"`
	Name           string `gorm:"type:varchar(128);not null;comment:属性名称"`
	Code           string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_class_code;comment:属性编码"`
	Type           string `gorm:"type:varchar(20);not null;default:'text';comment:属性类型 text/boolean/integer/date"`
	Required       bool   `gorm:"not null;default:false;comment:是否必填"`
	Ctime          int64
	Utime          int64
}

type Product struct {
	Id             int64                               `gorm:"primaryKey;autoIncrement;comment:商品自增ID"`
	ParentId       int64                               `gorm:"not null;default:0;index:idx_parent_id;comment:父商品ID"`
	Structure      string                              `gorm:"type:varchar(16);not null;default:'standalone';comment:商品结构 standalone/parent/child"`
	Upc            string                              `gorm:"type:varchar(64);not null;default:'';index:idx_upc;comment:商品UPC"`
	Title          string                              `gorm:"type:varchar(255);not null;comment:商品标题"`
	Description    string                              `gorm:"type:text;comment:商品描述"`
	ProductClassId int64                               `gorm:"not null;index:idx_product_class_id;comment:商品类别ID"`
	CourseId       string                              `gorm:"type:varchar(255);not null;default:'';index:idx_course_id;comment:关联课程ID"`
	ExpiresAt      int64                               `gorm:"not null;default:0;comment:过期时间,0表示不过期"`
	Attrs          sqlx.JsonColumn[map[string]string] `gorm:"type:varchar(1024);comment:商品属性,JSON格式"`
	Ctime          int64
	Utime          int64
}

type Partner struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:合作方自增ID"`
	Name      string `gorm:"type:varchar(128);not null;comment:合作方名称"`
	ShortCode string `gorm:"type:varchar(8);not null;uniqueIndex:uniq_partner_short_code;comment:合作方简码"`
	Ctime     int64
	Utime     int64
}

type StockRecord struct {
	Id            int64               `gorm:"primaryKey;autoIncrement;comment:库存记录自增ID"`
	ProductId     int64               `gorm:"not null;index:idx_product_id;comment:商品ID"`
	PartnerId     int64               `gorm:"not null;uniqueIndex:uniq_partner_sku;comment:合作方ID"`
	PartnerSku    string              `gorm:"type:varchar(128);not null;uniqueIndex:uniq_partner_sku;comment:合作方SKU"`
	PriceCurrency string              `gorm:"type:varchar(12);not null;default:'USD';comment:币种"`
	PriceExclTax  decimal.NullDecimal `gorm:"type:decimal(12,2);comment:不含税价格,NULL表示未定价"`
	NumInStock    int64               `gorm:"not null;default:0;comment:库存数量"`
	NumAllocated  int64               `gorm:"not null;default:0;comment:已分配数量"`
	Ctime         int64
	Utime         int64
}

type Catalog struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:目录自增ID"`
	Name      string `gorm:"type:varchar(255);not null;index:idx_name_partner;comment:目录名称"`
	PartnerId int64  `gorm:"not null;index:idx_name_partner;comment:合作方ID"`
	Ctime     int64
	Utime     int64
}

type CatalogStockRecord struct {
	Id            int64 `gorm:"primaryKey;autoIncrement"`
	CatalogId     int64 `gorm:"not null;uniqueIndex:uniq_catalog_stock_record;comment:目录ID"`
	StockRecordId int64 `gorm:"not null;uniqueIndex:uniq_catalog_stock_record;comment:库存记录ID"`
	Ctime         int64
}
