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
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateCode  = errors.New("兑换码重复")
	ErrVoucherUsed    = errors.New("兑换券已使用")
)

const (
	usageSingleUse       uint8 = 1
	usageOncePerCustomer uint8 = 3
)

type OfferDetail struct {
	Offer   Offer
	Benefit Benefit
	Range   Range
}

type VoucherDAO interface {
	// CreateVouchers 在同一个事务内创建范围, 优惠, 活动和兑换券
	CreateVouchers(ctx context.Context, r Range, b Benefit, o Offer, vs []Voucher) ([]Voucher, error)
	// DeleteVouchers 删除还没有被使用过的兑换券
	DeleteVouchers(ctx context.Context, ids []int64) error
	FindVoucherByCode(ctx context.Context, code string) (Voucher, error)
	FindVoucherByID(ctx context.Context, id int64) (Voucher, error)
	FindVouchersByOfferRangeCatalogID(ctx context.Context, catalogID int64) ([]Voucher, error)
	FindOffersByVoucherID(ctx context.Context, voucherID int64) ([]OfferDetail, error)
	CountApplications(ctx context.Context, voucherID, uid int64) (userCnt int64, total int64, err error)
	RecordUsage(ctx context.Context, app VoucherApplication) error
	IncrBasketAdditions(ctx context.Context, voucherID int64) error
}

type voucherGORMDAO struct {
	db *egorm.Component
}

func NewVoucherGORMDAO(db *egorm.Component) VoucherDAO {
	return &voucherGORMDAO{db: db}
}

func (g *voucherGORMDAO) CreateVouchers(ctx context.Context, r Range, b Benefit, o Offer, vs []Voucher) ([]Voucher, error) {
	now := time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		r.Ctime, r.Utime = now, now
		if err := tx.Create(&r).Error; err != nil {
			return fmt.Errorf("创建适用范围失败: %w", err)
		}
		b.RangeId = r.Id
		b.Ctime, b.Utime = now, now
		if err := tx.Create(&b).Error; err != nil {
			return fmt.Errorf("创建优惠失败: %w", err)
		}
		o.BenefitId = b.Id
		o.Ctime, o.Utime = now, now
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("创建优惠活动失败: %w", err)
		}
		for i := range vs {
			vs[i].Ctime, vs[i].Utime = now, now
		}
		if err := tx.Create(&vs).Error; err != nil {
			return err
		}
		rels := slice.Map(vs, func(idx int, src Voucher) VoucherOffer {
			return VoucherOffer{VoucherId: src.Id, OfferId: o.Id, Ctime: now}
		})
		return tx.Create(&rels).Error
	})
	if err != nil {
		if g.isMySQLUniqueIndexError(err) {
			return nil, fmt.Errorf("%w: %w", ErrDuplicateCode, err)
		}
		return nil, err
	}
	return vs, nil
}

func (g *voucherGORMDAO) isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return true
		}
	}
	return false
}

func (g *voucherGORMDAO) DeleteVouchers(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		var used int64
		err := tx.Model(&VoucherApplication{}).Where("voucher_id IN ?", ids).Count(&used).Error
		if err != nil {
			return err
		}
		if used > 0 {
			return fmt.Errorf("%w: ids=%v", ErrVoucherUsed, ids)
		}
		if err = tx.Where("voucher_id IN ?", ids).Delete(&VoucherOffer{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&Voucher{}).Error
	})
}

func (g *voucherGORMDAO) FindVoucherByCode(ctx context.Context, code string) (Voucher, error) {
	var res Voucher
	err := g.db.WithContext(ctx).First(&res, "code = ?", code).Error
	return res, err
}

func (g *voucherGORMDAO) FindVoucherByID(ctx context.Context, id int64) (Voucher, error) {
	var res Voucher
	err := g.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (g *voucherGORMDAO) FindVouchersByOfferRangeCatalogID(ctx context.Context, catalogID int64) ([]Voucher, error) {
	var res []Voucher
	err := g.db.WithContext(ctx).Model(&Voucher{}).
		Joins("JOIN voucher_offers ON voucher_offers.voucher_id = vouchers.id").
		Joins("JOIN offers ON offers.id = voucher_offers.offer_id").
		Joins("JOIN offer_benefits ON offer_benefits.id = offers.benefit_id").
		Joins("JOIN offer_ranges ON offer_ranges.id = offer_benefits.range_id").
		Where("offer_ranges.catalog_id = ?", catalogID).
		Order("vouchers.id ASC").
		Find(&res).Error
	return res, err
}

func (g *voucherGORMDAO) FindOffersByVoucherID(ctx context.Context, voucherID int64) ([]OfferDetail, error) {
	db := g.db.WithContext(ctx)
	var offerIDs []int64
	err := db.Model(&VoucherOffer{}).Where("voucher_id = ?", voucherID).
		Order("id ASC").Pluck("offer_id", &offerIDs).Error
	if err != nil || len(offerIDs) == 0 {
		return nil, err
	}
	var offers []Offer
	if err = db.Where("id IN ?", offerIDs).Order("priority DESC, id ASC").Find(&offers).Error; err != nil {
		return nil, err
	}
	res := make([]OfferDetail, 0, len(offers))
	for _, o := range offers {
		var b Benefit
		if err = db.First(&b, "id = ?", o.BenefitId).Error; err != nil {
			return nil, fmt.Errorf("查找优惠失败 offer=%d: %w", o.Id, err)
		}
		var r Range
		if err = db.First(&r, "id = ?", b.RangeId).Error; err != nil {
			return nil, fmt.Errorf("查找适用范围失败 benefit=%d: %w", b.Id, err)
		}
		res = append(res, OfferDetail{Offer: o, Benefit: b, Range: r})
	}
	return res, nil
}

func (g *voucherGORMDAO) CountApplications(ctx context.Context, voucherID, uid int64) (int64, int64, error) {
	var total, userCnt int64
	db := g.db.WithContext(ctx).Model(&VoucherApplication{})
	if err := db.Where("voucher_id = ?", voucherID).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := g.db.WithContext(ctx).Model(&VoucherApplication{}).
		Where("voucher_id = ? AND user_id = ?", voucherID, uid).Count(&userCnt).Error
	return userCnt, total, err
}

func (g *voucherGORMDAO) RecordUsage(ctx context.Context, app VoucherApplication) error {
	now := time.Now().UnixMilli()
	return g.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		var v Voucher
		if err := tx.First(&v, "id = ?", app.VoucherId).Error; err != nil {
			return err
		}
		app.UsageKey = usageKey(v.Usage, app)
		app.Ctime, app.Utime = now, now
		if err := tx.Create(&app).Error; err != nil {
			if g.isMySQLUniqueIndexError(err) {
				return fmt.Errorf("%w: voucher=%d uid=%d", ErrVoucherUsed, app.VoucherId, app.UserId)
			}
			return err
		}
		return tx.Model(&Voucher{}).Where("id = ?", app.VoucherId).
			Updates(map[string]any{
				"num_orders":     gorm.Expr("num_orders + ?", 1),
				"total_discount": gorm.Expr("total_discount + ?", app.Discount.StringFixed(2)),
				"utime":          now,
			}).Error
	})
}

// usageKey 只能用一次的券全局唯一, 每人一次的券按用户唯一, 其余按订单唯一
func usageKey(usage uint8, app VoucherApplication) string {
	switch usage {
	case usageSingleUse:
		return fmt.Sprintf("single:%d", app.VoucherId)
	case usageOncePerCustomer:
		return fmt.Sprintf("customer:%d:%d", app.VoucherId, app.UserId)
	default:
		return fmt.Sprintf("multi:%d:%d", app.VoucherId, app.OrderId)
	}
}

func (g *voucherGORMDAO) IncrBasketAdditions(ctx context.Context, voucherID int64) error {
	return g.db.WithContext(ctx).Model(&Voucher{}).Where("id = ?", voucherID).
		Updates(map[string]any{
			"num_basket_additions": gorm.Expr("num_basket_additions + ?", 1),
			"utime":                time.Now().UnixMilli(),
		}).Error
}
