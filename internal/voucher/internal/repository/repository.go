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

package repository

import (
	"context"

	"github.com/ecodeclub/ecommerce/internal/voucher/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/repository/cache"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

type VoucherRepository interface {
	CreateVouchers(ctx context.Context, offer domain.Offer, vs []domain.Voucher) ([]domain.Voucher, error)
	DeleteVouchers(ctx context.Context, vs []domain.Voucher) error
	FindByCode(ctx context.Context, code string) (domain.Voucher, error)
	FindByID(ctx context.Context, id int64) (domain.Voucher, error)
	FindByCatalogID(ctx context.Context, catalogID int64) ([]domain.Voucher, error)
	CountApplications(ctx context.Context, voucherID, uid int64) (int64, int64, error)
	RecordUsage(ctx context.Context, app domain.Application) error
	RecordBasketAddition(ctx context.Context, voucherID int64) error
}

type voucherRepository struct {
	dao    dao.VoucherDAO
	cache  cache.VoucherCache
	logger *elog.Component
}

func NewVoucherRepository(d dao.VoucherDAO, c cache.VoucherCache) VoucherRepository {
	return &voucherRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *voucherRepository) CreateVouchers(ctx context.Context, offer domain.Offer, vs []domain.Voucher) ([]domain.Voucher, error) {
	b := offer.Benefit
	entities, err := r.dao.CreateVouchers(ctx,
		dao.Range{
			Name:       b.Range.Name,
			CatalogId:  b.Range.CatalogID,
			ProductIds: sqlx.JsonColumn[[]int64]{Val: b.Range.ProductIDs, Valid: true},
		},
		dao.Benefit{Type: string(b.Type), Value: b.Value},
		dao.Offer{Name: offer.Name, Priority: offer.Priority},
		slice.Map(vs, func(idx int, src domain.Voucher) dao.Voucher {
			return r.toEntity(src)
		}))
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Voucher) domain.Voucher {
		v := r.toDomain(src)
		v.Offers = []domain.Offer{offer}
		return v
	}), nil
}

func (r *voucherRepository) DeleteVouchers(ctx context.Context, vs []domain.Voucher) error {
	ids := slice.Map(vs, func(idx int, src domain.Voucher) int64 {
		return src.ID
	})
	if err := r.dao.DeleteVouchers(ctx, ids); err != nil {
		return err
	}
	for _, v := range vs {
		if err := r.cache.Del(ctx, v.Code); err != nil {
			r.logger.Error("删除兑换券缓存失败", elog.FieldErr(err), elog.String("code", v.Code))
		}
	}
	return nil
}

func (r *voucherRepository) FindByCode(ctx context.Context, code string) (domain.Voucher, error) {
	v, err := r.cache.Get(ctx, code)
	if err == nil {
		return v, nil
	}
	e, err := r.dao.FindVoucherByCode(ctx, code)
	if err != nil {
		return domain.Voucher{}, err
	}
	v, err = r.withOffers(ctx, e)
	if err != nil {
		return domain.Voucher{}, err
	}
	if err = r.cache.Set(ctx, v); err != nil {
		r.logger.Error("回写兑换券缓存失败", elog.FieldErr(err), elog.String("code", code))
	}
	return v, nil
}

func (r *voucherRepository) FindByID(ctx context.Context, id int64) (domain.Voucher, error) {
	e, err := r.dao.FindVoucherByID(ctx, id)
	if err != nil {
		return domain.Voucher{}, err
	}
	return r.withOffers(ctx, e)
}

func (r *voucherRepository) FindByCatalogID(ctx context.Context, catalogID int64) ([]domain.Voucher, error) {
	es, err := r.dao.FindVouchersByOfferRangeCatalogID(ctx, catalogID)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Voucher) domain.Voucher {
		return r.toDomain(src)
	}), nil
}

func (r *voucherRepository) withOffers(ctx context.Context, e dao.Voucher) (domain.Voucher, error) {
	details, err := r.dao.FindOffersByVoucherID(ctx, e.Id)
	if err != nil {
		return domain.Voucher{}, err
	}
	v := r.toDomain(e)
	v.Offers = slice.Map(details, func(idx int, src dao.OfferDetail) domain.Offer {
		return domain.Offer{
			ID:       src.Offer.Id,
			Name:     src.Offer.Name,
			Priority: src.Offer.Priority,
			Benefit: domain.Benefit{
				ID:    src.Benefit.Id,
				Type:  domain.BenefitType(src.Benefit.Type),
				Value: src.Benefit.Value,
				Range: domain.Range{
					ID:         src.Range.Id,
					Name:       src.Range.Name,
					CatalogID:  src.Range.CatalogId,
					ProductIDs: src.Range.ProductIds.Val,
				},
			},
		}
	})
	return v, nil
}

func (r *voucherRepository) CountApplications(ctx context.Context, voucherID, uid int64) (int64, int64, error) {
	return r.dao.CountApplications(ctx, voucherID, uid)
}

func (r *voucherRepository) RecordUsage(ctx context.Context, app domain.Application) error {
	err := r.dao.RecordUsage(ctx, dao.VoucherApplication{
		VoucherId: app.VoucherID,
		UserId:    app.UserID,
		OrderId:   app.OrderID,
		Discount:  app.Discount,
	})
	if err != nil {
		return err
	}
	r.evict(ctx, app.VoucherID)
	return nil
}

func (r *voucherRepository) RecordBasketAddition(ctx context.Context, voucherID int64) error {
	if err := r.dao.IncrBasketAdditions(ctx, voucherID); err != nil {
		return err
	}
	r.evict(ctx, voucherID)
	return nil
}

// evict 计数变了, 缓存里的兑换券要失效
func (r *voucherRepository) evict(ctx context.Context, voucherID int64) {
	e, err := r.dao.FindVoucherByID(ctx, voucherID)
	if err != nil {
		r.logger.Error("查找兑换券失败", elog.FieldErr(err), elog.Int64("voucherId", voucherID))
		return
	}
	if err = r.cache.Del(ctx, e.Code); err != nil {
		r.logger.Error("删除兑换券缓存失败", elog.FieldErr(err), elog.String("code", e.Code))
	}
}

func (r *voucherRepository) toEntity(v domain.Voucher) dao.Voucher {
	return dao.Voucher{
		Id:            v.ID,
		Name:          v.Name,
		Code:          v.Code,
		Usage:         v.Usage.ToUint8(),
		StartAt:       v.StartAt,
		EndAt:         v.EndAt,
		TotalDiscount: v.TotalDiscount,
	}
}

func (r *voucherRepository) toDomain(e dao.Voucher) domain.Voucher {
	return domain.Voucher{
		ID:                 e.Id,
		Name:               e.Name,
		Code:               e.Code,
		Usage:              domain.Usage(e.Usage),
		StartAt:            e.StartAt,
		EndAt:              e.EndAt,
		NumBasketAdditions: e.NumBasketAdditions,
		NumOrders:          e.NumOrders,
		TotalDiscount:      e.TotalDiscount,
	}
}
