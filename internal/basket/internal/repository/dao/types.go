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

type Basket struct {
	Id          int64                    `gorm:"primaryKey;autoIncrement;comment:购物车自增ID"`
	OwnerId     int64                    `gorm:"not null;index:idx_owner_status;comment:所有者ID"`
	Status      uint8                    `gorm:"type:tinyint unsigned;not null;default:1;index:idx_owner_status;index:idx_status_frozen_at;comment:状态 1=可编辑 2=已合并 3=已保存 4=已冻结 5=已提交"`
	VoucherIds  sqlx.JsonColumn[[]int64] `gorm:"type:varchar(1024);comment:已添加的兑换券ID,JSON格式"`
	FrozenAt    int64                    `gorm:"not null;default:0;index:idx_status_frozen_at;comment:冻结时间"`
	SubmittedAt int64                    `gorm:"not null;default:0;comment:提交时间"`
	Ctime       int64
	Utime       int64
}

type BasketLine struct {
	Id            int64           `gorm:"primaryKey;autoIncrement;comment:购物车商品行自增ID"`
	BasketId      int64           `gorm:"not null;index:idx_basket_id;comment:购物车ID"`
	ProductId     int64           `gorm:"not null;comment:商品ID"`
	StockRecordId int64           `gorm:"not null;comment:库存记录ID"`
	Quantity      int64           `gorm:"not null;default:1;comment:数量"`
	PriceCurrency string          `gorm:"type:varchar(12);not null;default:'USD';comment:币种"`
	PriceExclTax  decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:加入时的不含税单价"`
	PriceInclTax  decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:加入时的含税单价"`
	Ctime         int64
	Utime         int64
}

type BasketDiscount struct {
	Id          int64           `gorm:"primaryKey;autoIncrement;comment:购物车优惠自增ID"`
	BasketId    int64           `gorm:"not null;index:idx_basket_id;comment:购物车ID"`
	VoucherId   int64           `gorm:"not null;comment:兑换券ID"`
	VoucherCode string          `gorm:"type:varchar(128);not null;comment:兑换码"`
	OfferId     int64           `gorm:"not null;comment:优惠活动ID"`
	ProductId   int64           `gorm:"not null;comment:优惠的商品ID"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null;comment:优惠金额"`
	Description string          `gorm:"type:varchar(255);not null;default:'';comment:优惠描述"`
	Ctime       int64
	Utime       int64
}
