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
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type Invoice struct {
	Id          int64  `gorm:"primaryKey;autoIncrement;comment:发票自增ID"`
	OrderId     int64  `gorm:"not null;uniqueIndex:uniq_order_id;comment:订单ID, 一个订单只有一张发票"`
	OrderNumber string `gorm:"type:varchar(128);not null;comment:订单号"`
	UserId      int64  `gorm:"not null;index:idx_user_id;comment:发票抬头用户ID"`
	State       string `gorm:"type:varchar(20);not null;comment:状态 Not Paid/Paid"`
	Ctime       int64
	Utime       int64
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Invoice{})
}

type InvoiceDAO interface {
	// Create 同一订单重复创建时返回已有的记录
	Create(ctx context.Context, inv Invoice) (Invoice, error)
	FindByOrderID(ctx context.Context, orderID int64) (Invoice, error)
}

type invoiceGORMDAO struct {
	db *egorm.Component
}

func NewInvoiceGORMDAO(db *egorm.Component) InvoiceDAO {
	return &invoiceGORMDAO{db: db}
}

func (g *invoiceGORMDAO) Create(ctx context.Context, inv Invoice) (Invoice, error) {
	now := time.Now().UnixMilli()
	inv.Ctime, inv.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		DoNothing: true,
	}).Create(&inv).Error
	if err != nil {
		return Invoice{}, err
	}
	return g.FindByOrderID(ctx, inv.OrderId)
}

func (g *invoiceGORMDAO) FindByOrderID(ctx context.Context, orderID int64) (Invoice, error) {
	var res Invoice
	err := g.db.WithContext(ctx).First(&res, "order_id = ?", orderID).Error
	return res, err
}
