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
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound  = gorm.ErrRecordNotFound
	ErrDuplicateNumber = errors.New("订单号重复")
	ErrStatusChanged   = errors.New("订单状态已变更")
)

type OrderDAO interface {
	// Create 在同一个事务内创建订单, 订单项和优惠明细
	Create(ctx context.Context, o Order, lines []OrderLine, discounts []OrderDiscount) (int64, error)
	// Delete 删除订单以及订单项和优惠明细, 用于下单失败时回滚
	Delete(ctx context.Context, id int64) error
	FindByNumber(ctx context.Context, number string) (Order, error)
	FindByNumberAndUserID(ctx context.Context, number string, uid int64) (Order, error)
	FindLines(ctx context.Context, orderID int64) ([]OrderLine, error)
	FindDiscounts(ctx context.Context, orderID int64) ([]OrderDiscount, error)
	ListByUserID(ctx context.Context, uid int64, offset, limit int) ([]Order, error)
	CountByUserID(ctx context.Context, uid int64) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, from, to uint8) error
	// FindExpiredIDs 找出 ctime 之前仍处于 status 的 source 来源订单
	FindExpiredIDs(ctx context.Context, status, source uint8, ctime int64, limit int) ([]int64, error)
	UpdateStatusByIDs(ctx context.Context, ids []int64, from, to uint8) (int64, error)
}

type orderGORMDAO struct {
	db *egorm.Component
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &orderGORMDAO{db: db}
}

func (g *orderGORMDAO) Create(ctx context.Context, o Order, lines []OrderLine, discounts []OrderDiscount) (int64, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			if g.isMySQLUniqueIndexError(err) {
				return fmt.Errorf("%w: number=%s", ErrDuplicateNumber, o.Number)
			}
			return err
		}
		if len(lines) > 0 {
			ls := slice.Map(lines, func(idx int, src OrderLine) OrderLine {
				src.OrderId = o.Id
				src.Ctime, src.Utime = now, now
				return src
			})
			if err := tx.Create(&ls).Error; err != nil {
				return fmt.Errorf("创建订单项失败: %w", err)
			}
		}
		if len(discounts) > 0 {
			ds := slice.Map(discounts, func(idx int, src OrderDiscount) OrderDiscount {
				src.OrderId = o.Id
				src.Ctime = now
				return src
			})
			if err := tx.Create(&ds).Error; err != nil {
				return fmt.Errorf("创建订单优惠明细失败: %w", err)
			}
		}
		return nil
	})
	return o.Id, err
}

func (g *orderGORMDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderLine{}).Error; err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&OrderDiscount{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Order{}).Error
	})
}

func (g *orderGORMDAO) isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return true
		}
	}
	return false
}

func (g *orderGORMDAO) FindByNumber(ctx context.Context, number string) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).First(&res, "number = ?", number).Error
	return res, err
}

func (g *orderGORMDAO) FindByNumberAndUserID(ctx context.Context, number string, uid int64) (Order, error) {
	var res Order
	err := g.db.WithContext(ctx).Where("number = ? AND user_id = ?", number, uid).First(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindLines(ctx context.Context, orderID int64) ([]OrderLine, error) {
	var res []OrderLine
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) FindDiscounts(ctx context.Context, orderID int64) ([]OrderDiscount, error) {
	var res []OrderDiscount
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) ListByUserID(ctx context.Context, uid int64, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Where("user_id = ?", uid).
		Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) CountByUserID(ctx context.Context, uid int64) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("user_id = ?", uid).Count(&res).Error
	return res, err
}

func (g *orderGORMDAO) List(ctx context.Context, offset, limit int) ([]Order, error) {
	var res []Order
	err := g.db.WithContext(ctx).Offset(offset).Limit(limit).Order("id DESC").Find(&res).Error
	return res, err
}

func (g *orderGORMDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&res).Error
	return res, err
}

func (g *orderGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8) error {
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id=%d", ErrStatusChanged, id)
	}
	return nil
}

func (g *orderGORMDAO) FindExpiredIDs(ctx context.Context, status, source uint8, ctime int64, limit int) ([]int64, error) {
	var ids []int64
	err := g.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND source = ? AND ctime <= ?", status, source, ctime).
		Order("id ASC").Limit(limit).Pluck("id", &ids).Error
	return ids, err
}

func (g *orderGORMDAO) UpdateStatusByIDs(ctx context.Context, ids []int64, from, to uint8) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := g.db.WithContext(ctx).Model(&Order{}).
		Where("id IN ? AND status = ?", ids, from).
		Updates(map[string]any{
			"status": to,
			"utime":  time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}
