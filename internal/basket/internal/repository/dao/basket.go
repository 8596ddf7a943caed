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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrStatusChanged  = errors.New("购物车状态已变更")
)

type BasketDAO interface {
	Create(ctx context.Context, b Basket) (int64, error)
	FindByID(ctx context.Context, id int64) (Basket, error)
	// FindByOwnerAndStatus 按 ID 升序
	FindByOwnerAndStatus(ctx context.Context, uid int64, status uint8) ([]Basket, error)
	FindLines(ctx context.Context, basketID int64) ([]BasketLine, error)
	FindDiscounts(ctx context.Context, basketID int64) ([]BasketDiscount, error)
	// Save 覆盖购物车本身以及全部商品行和优惠
	Save(ctx context.Context, b Basket, lines []BasketLine, discounts []BasketDiscount) error
	// UpdateStatus 只有当前状态为 from 时才会更新
	UpdateStatus(ctx context.Context, id int64, from, to uint8, fields map[string]any) error
	FindTimeoutFrozenIDs(ctx context.Context, frozenBefore int64, limit int) ([]int64, error)
	ThawByIDs(ctx context.Context, ids []int64) (int64, error)
}

type basketGORMDAO struct {
	db *egorm.Component
}

func NewBasketGORMDAO(db *egorm.Component) BasketDAO {
	return &basketGORMDAO{db: db}
}

func (g *basketGORMDAO) Create(ctx context.Context, b Basket) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime, b.Utime = now, now
	err := g.db.WithContext(ctx).Create(&b).Error
	return b.Id, err
}

func (g *basketGORMDAO) FindByID(ctx context.Context, id int64) (Basket, error) {
	var res Basket
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *basketGORMDAO) FindByOwnerAndStatus(ctx context.Context, uid int64, status uint8) ([]Basket, error) {
	var res []Basket
	err := g.db.WithContext(ctx).Where("owner_id = ? AND status = ?", uid, status).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *basketGORMDAO) FindLines(ctx context.Context, basketID int64) ([]BasketLine, error) {
	var res []BasketLine
	err := g.db.WithContext(ctx).Where("basket_id = ?", basketID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *basketGORMDAO) FindDiscounts(ctx context.Context, basketID int64) ([]BasketDiscount, error) {
	var res []BasketDiscount
	err := g.db.WithContext(ctx).Where("basket_id = ?", basketID).Order("id ASC").Find(&res).Error
	return res, err
}

func (g *basketGORMDAO) Save(ctx context.Context, b Basket, lines []BasketLine, discounts []BasketDiscount) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		err := tx.Model(&Basket{}).Where("id = ?", b.Id).Updates(map[string]any{
			"status":       b.Status,
			"voucher_ids":  b.VoucherIds,
			"frozen_at":    b.FrozenAt,
			"submitted_at": b.SubmittedAt,
			"utime":        now,
		}).Error
		if err != nil {
			return err
		}
		if err = tx.Where("basket_id = ?", b.Id).Delete(&BasketLine{}).Error; err != nil {
			return err
		}
		if err = tx.Where("basket_id = ?", b.Id).Delete(&BasketDiscount{}).Error; err != nil {
			return err
		}
		if len(lines) > 0 {
			lines = slice.Map(lines, func(idx int, src BasketLine) BasketLine {
				src.Id = 0
				src.BasketId = b.Id
				src.Ctime, src.Utime = now, now
				return src
			})
			if err = tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		if len(discounts) > 0 {
			discounts = slice.Map(discounts, func(idx int, src BasketDiscount) BasketDiscount {
				src.Id = 0
				src.BasketId = b.Id
				src.Ctime, src.Utime = now, now
				return src
			})
			return tx.Create(&discounts).Error
		}
		return nil
	})
}

func (g *basketGORMDAO) UpdateStatus(ctx context.Context, id int64, from, to uint8, fields map[string]any) error {
	updates := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		updates[k] = v
	}
	updates["status"] = to
	updates["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Basket{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusChanged
	}
	return nil
}

func (g *basketGORMDAO) FindTimeoutFrozenIDs(ctx context.Context, frozenBefore int64, limit int) ([]int64, error) {
	const frozen uint8 = 4
	var ids []int64
	err := g.db.WithContext(ctx).Model(&Basket{}).
		Where("status = ? AND frozen_at < ?", frozen, frozenBefore).
		Order("id ASC").Limit(limit).Pluck("id", &ids).Error
	return ids, err
}

func (g *basketGORMDAO) ThawByIDs(ctx context.Context, ids []int64) (int64, error) {
	const open, frozen uint8 = 1, 4
	res := g.db.WithContext(ctx).Model(&Basket{}).
		Where("id IN ? AND status = ?", ids, frozen).
		Updates(map[string]any{
			"status":    open,
			"frozen_at": 0,
			"utime":     time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}
