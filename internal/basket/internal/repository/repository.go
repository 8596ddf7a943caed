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

	"github.com/ecodeclub/ecommerce/internal/basket/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"golang.org/x/sync/errgroup"
)

type BasketRepository interface {
	Create(ctx context.Context, b domain.Basket) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Basket, error)
	FindByOwnerAndStatus(ctx context.Context, uid int64, status domain.Status) ([]domain.Basket, error)
	Save(ctx context.Context, b domain.Basket) error
	UpdateStatus(ctx context.Context, b domain.Basket, from domain.Status) error
	FindTimeoutFrozenIDs(ctx context.Context, frozenBefore int64, limit int) ([]int64, error)
	ThawByIDs(ctx context.Context, ids []int64) (int64, error)
}

type basketRepository struct {
	dao dao.BasketDAO
}

func NewBasketRepository(d dao.BasketDAO) BasketRepository {
	return &basketRepository{dao: d}
}

func (r *basketRepository) Create(ctx context.Context, b domain.Basket) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(b))
}

func (r *basketRepository) FindByID(ctx context.Context, id int64) (domain.Basket, error) {
	b, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Basket{}, err
	}
	return r.load(ctx, b)
}

func (r *basketRepository) FindByOwnerAndStatus(ctx context.Context, uid int64, status domain.Status) ([]domain.Basket, error) {
	bs, err := r.dao.FindByOwnerAndStatus(ctx, uid, status.ToUint8())
	if err != nil {
		return nil, err
	}
	res := make([]domain.Basket, 0, len(bs))
	for _, b := range bs {
		d, err := r.load(ctx, b)
		if err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, nil
}

func (r *basketRepository) load(ctx context.Context, b dao.Basket) (domain.Basket, error) {
	var (
		eg        errgroup.Group
		lines     []dao.BasketLine
		discounts []dao.BasketDiscount
	)
	eg.Go(func() error {
		var err error
		lines, err = r.dao.FindLines(ctx, b.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		discounts, err = r.dao.FindDiscounts(ctx, b.Id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Basket{}, err
	}
	res := r.toDomain(b)
	res.Lines = slice.Map(lines, func(idx int, src dao.BasketLine) domain.Line {
		return domain.Line{
			ID:            src.Id,
			ProductID:     src.ProductId,
			StockRecordID: src.StockRecordId,
			Quantity:      src.Quantity,
			PriceCurrency: src.PriceCurrency,
			PriceExclTax:  src.PriceExclTax,
			PriceInclTax:  src.PriceInclTax,
		}
	})
	res.Discounts = slice.Map(discounts, func(idx int, src dao.BasketDiscount) domain.Discount {
		return domain.Discount{
			VoucherID:   src.VoucherId,
			VoucherCode: src.VoucherCode,
			OfferID:     src.OfferId,
			ProductID:   src.ProductId,
			Amount:      src.Amount,
			Description: src.Description,
		}
	})
	return res, nil
}

func (r *basketRepository) Save(ctx context.Context, b domain.Basket) error {
	return r.dao.Save(ctx, r.toEntity(b),
		slice.Map(b.Lines, func(idx int, src domain.Line) dao.BasketLine {
			return dao.BasketLine{
				ProductId:     src.ProductID,
				StockRecordId: src.StockRecordID,
				Quantity:      src.Quantity,
				PriceCurrency: src.PriceCurrency,
				PriceExclTax:  src.PriceExclTax,
				PriceInclTax:  src.PriceInclTax,
			}
		}),
		slice.Map(b.Discounts, func(idx int, src domain.Discount) dao.BasketDiscount {
			return dao.BasketDiscount{
				VoucherId:   src.VoucherID,
				VoucherCode: src.VoucherCode,
				OfferId:     src.OfferID,
				ProductId:   src.ProductID,
				Amount:      src.Amount,
				Description: src.Description,
			}
		}))
}

func (r *basketRepository) UpdateStatus(ctx context.Context, b domain.Basket, from domain.Status) error {
	return r.dao.UpdateStatus(ctx, b.ID, from.ToUint8(), b.Status.ToUint8(), map[string]any{
		"frozen_at":    b.FrozenAt,
		"submitted_at": b.SubmittedAt,
	})
}

func (r *basketRepository) FindTimeoutFrozenIDs(ctx context.Context, frozenBefore int64, limit int) ([]int64, error) {
	return r.dao.FindTimeoutFrozenIDs(ctx, frozenBefore, limit)
}

func (r *basketRepository) ThawByIDs(ctx context.Context, ids []int64) (int64, error) {
	return r.dao.ThawByIDs(ctx, ids)
}

func (r *basketRepository) toEntity(b domain.Basket) dao.Basket {
	return dao.Basket{
		Id:          b.ID,
		OwnerId:     b.OwnerID,
		Status:      b.Status.ToUint8(),
		VoucherIds:  sqlx.JsonColumn[[]int64]{Val: b.VoucherIDs, Valid: len(b.VoucherIDs) > 0},
		FrozenAt:    b.FrozenAt,
		SubmittedAt: b.SubmittedAt,
	}
}

func (r *basketRepository) toDomain(b dao.Basket) domain.Basket {
	return domain.Basket{
		ID:          b.Id,
		OwnerID:     b.OwnerId,
		Status:      domain.Status(b.Status),
		VoucherIDs:  b.VoucherIds.Val,
		FrozenAt:    b.FrozenAt,
		SubmittedAt: b.SubmittedAt,
		Ctime:       b.Ctime,
		Utime:       b.Utime,
	}
}
