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

import "github.com/shopspring/decimal"

type Order struct {
	Id                 int64           `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	Number             string          `gorm:"type:varchar(128);not null;uniqueIndex:uniq_order_number;comment:订单号"`
	BasketId           int64           `gorm:"not null;index:idx_basket_id;comment:购物车ID"`
	UserId             int64           `gorm:"not null;index:idx_user_id;comment:购买者ID"`
	Currency           string          `gorm:"type:varchar(12);not null;comment:币种"`
	TotalInclTax       decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:含税总价"`
	TotalExclTax       decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:不含税总价"`
	ShippingMethodName string          `gorm:"type:varchar(128);not null;comment:配送方式"`
	ShippingMethodCode string          `gorm:"type:varchar(128);not null;comment:配送方式编码"`
	ShippingInclTax    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;comment:含税运费"`
	ShippingExclTax    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;comment:不含税运费"`
	Status             uint8           `gorm:"type:tinyint unsigned;not null;default:1;index:idx_status_ctime;comment:订单状态 1=待支付 2=已完成 3=履约失败 4=已取消"`
	Source             uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:订单来源 1=用户下单 2=发票结算"`
	DatePlaced         int64           `gorm:"not null;comment:下单时间"`
	Ctime              int64           `gorm:"index:idx_status_ctime"`
	Utime              int64
}

type OrderLine struct {
	Id            int64           `gorm:"primaryKey;autoIncrement;comment:订单项自增ID"`
	OrderId       int64           `gorm:"not null;index:idx_order_id;comment:订单ID"`
	ProductId     int64           `gorm:"not null;comment:商品ID"`
	StockRecordId int64           `gorm:"not null;comment:库存记录ID"`
	Title         string          `gorm:"type:varchar(255);not null;comment:商品名称"`
	Upc           string          `gorm:"type:varchar(64);comment:商品UPC"`
	Quantity      int64           `gorm:"not null;comment:购买数量"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:单价"`
	LinePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:优惠前总价"`
	Ctime         int64
	Utime         int64
}

type OrderDiscount struct {
	Id          int64           `gorm:"primaryKey;autoIncrement"`
	OrderId     int64           `gorm:"not null;index:idx_order_id;comment:订单ID"`
	VoucherId   int64           `gorm:"not null;comment:兑换券ID"`
	VoucherCode string          `gorm:"type:varchar(128);not null;comment:兑换码"`
	OfferId     int64           `gorm:"not null;comment:优惠活动ID"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:优惠金额"`
	Description string          `gorm:"type:varchar(255);comment:优惠描述"`
	Ctime       int64
}
