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

type Range struct {
	Id         int64                    `gorm:"primaryKey;autoIncrement;comment:适用范围自增ID"`
	Name       string                   `gorm:"type:varchar(255);not null;comment:范围名称"`
	CatalogId  int64                    `gorm:"not null;default:0;index:idx_catalog_id;comment:目录ID"`
	ProductIds sqlx.JsonColumn[[]int64] `gorm:"type:text;comment:范围内的商品ID,有序,JSON格式"`
	Ctime      int64
	Utime      int64
}

func (Range) TableName() string {
	return "offer_ranges"
}

type Benefit struct {
	Id      int64           `gorm:"primaryKey;autoIncrement;comment:优惠自增ID"`
	Type    string          `gorm:"type:varchar(20);not null;comment:优惠类型 Percentage/Absolute/Fixed"`
	Value   decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:优惠值"`
	RangeId int64           `gorm:"not null;index:idx_range_id;comment:适用范围ID"`
	Ctime   int64
	Utime   int64
}

func (Benefit) TableName() string {
	return "offer_benefits"
}

type Offer struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:优惠活动自增ID"`
	Name      string `gorm:"type:varchar(255);not null;comment:活动名称"`
	Priority  int64  `gorm:"not null;default:0;comment:优先级,越大越先应用"`
	BenefitId int64  `gorm:"not null;index:idx_benefit_id;comment:优惠ID"`
	Ctime     int64
	Utime     int64
}

type Voucher struct {
	Id                 int64           `gorm:"primaryKey;autoIncrement;comment:兑换券自增ID"`
	Name               string          `gorm:"type:varchar(255);not null;comment:兑换券名称"`
	Code               string          `gorm:"type:varchar(128);not null;uniqueIndex:uniq_voucher_code;comment:兑换码"`
	Usage              uint8           `gorm:"type:tinyint unsigned;not null;default:1;comment:使用方式 1=只能使用一次 2=不限次数 3=每个用户一次"`
	StartAt            int64           `gorm:"not null;comment:生效时间"`
	EndAt              int64           `gorm:"not null;comment:失效时间"`
	NumBasketAdditions int64           `gorm:"not null;default:0;comment:加入购物车次数"`
	NumOrders          int64           `gorm:"not null;default:0;comment:下单次数"`
	TotalDiscount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;comment:累计优惠金额"`
	Ctime              int64
	Utime              int64
}

type VoucherOffer struct {
	Id        int64 `gorm:"primaryKey;autoIncrement"`
	VoucherId int64 `gorm:"not null;uniqueIndex:uniq_voucher_offer;comment:兑换券ID"`
	OfferId   int64 `gorm:"not null;uniqueIndex:uniq_voucher_offer;index:idx_offer_id;comment:优惠活动ID"`
	Ctime     int64
}

type VoucherApplication struct {
	Id        int64 `gorm:"primaryKey;autoIncrement;comment:兑换券使用记录自增ID"`
	VoucherId int64 `gorm:"not null;index:idx_voucher_user;comment:兑换券ID"`
	UserId    int64 `gorm:"not null;index:idx_voucher_user;comment:使用者ID"`
	OrderId   int64 `gorm:"not null;comment:订单ID"`
	// 由使用方式决定, 用唯一索引挡住并发的重复使用
	UsageKey string          `gorm:"type:varchar(128);not null;uniqueIndex:uniq_usage_key;comment:使用唯一键"`
	Discount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0;comment:优惠金额"`
	Ctime    int64
	Utime    int64
}
