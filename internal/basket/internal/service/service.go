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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrBasketNotFound = errors.New("购物车不存在")
	ErrIllegalStatus  = domain.ErrIllegalStatus
	ErrNoStockRecord  = errors.New("商品没有库存记录")
	ErrBasketBusy     = errors.New("购物车正在被其他请求修改")
)

const (
	prepareLockTTL = 10 * time.Second
)

type PrepareReq struct {
	UID       int64
	ProductID int64
	Quantity  int64
	// 可以为 nil
	Voucher *voucher.Voucher
}

//go:generate mockgen -source=./service.go -package=basketmocks -destination=../../mocks/basket.mock.go Service
type Service interface {
	// GetOrCreateOpen 用户有多个可编辑的购物车时合并为一个
	GetOrCreateOpen(ctx context.Context, uid int64) (domain.Basket, error)
	// Prepare 清空用户的购物车, 加入商品并尝试应用兑换券, 兑换券没有产生优惠就移除
	Prepare(ctx context.Context, req PrepareReq) (domain.Basket, error)
	FindByID(ctx context.Context, id int64) (domain.Basket, error)
	Freeze(ctx context.Context, id int64) (domain.Basket, error)
	Thaw(ctx context.Context, id int64) (domain.Basket, error)
	Submit(ctx context.Context, id int64) (domain.Basket, error)
	// ThawTimeoutFrozen 解冻 frozenBefore 之前冻结的购物车, 返回解冻的数量
	ThawTimeoutFrozen(ctx context.Context, frozenBefore int64, batchSize int) (int64, error)
}

type service struct {
	repo       repository.BasketRepository
	catalogSvc catalogue.Service
	voucherSvc voucher.Service
	locker     *redislock.Client
	logger     *elog.Component
}

func NewService(repo repository.BasketRepository,
	catalogSvc catalogue.Service,
	voucherSvc voucher.Service,
	locker *redislock.Client) Service {
	return &service{
		repo:       repo,
		catalogSvc: catalogSvc,
		voucherSvc: voucherSvc,
		locker:     locker,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) GetOrCreateOpen(ctx context.Context, uid int64) (domain.Basket, error) {
	baskets, err := s.repo.FindByOwnerAndStatus(ctx, uid, domain.StatusOpen)
	if err != nil {
		return domain.Basket{}, err
	}
	if len(baskets) == 0 {
		b := domain.Basket{OwnerID: uid, Status: domain.StatusOpen}
		b.ID, err = s.repo.Create(ctx, b)
		if err != nil {
			return domain.Basket{}, fmt.Errorf("创建购物车失败: %w", err)
		}
		return b, nil
	}
	b := baskets[0]
	for i := 1; i < len(baskets); i++ {
		other := baskets[i]
		if err = b.Merge(&other); err != nil {
			return domain.Basket{}, err
		}
		if err = s.repo.Save(ctx, other); err != nil {
			return domain.Basket{}, fmt.Errorf("合并购物车失败: %w", err)
		}
		s.logger.Info("合并购物车",
			elog.Int64("uid", uid),
			elog.Int64("basketId", b.ID),
			elog.Int64("mergedBasketId", other.ID))
	}
	if len(baskets) > 1 {
		if err = s.repo.Save(ctx, b); err != nil {
			return domain.Basket{}, fmt.Errorf("合并购物车失败: %w", err)
		}
	}
	return b, nil
}

func (s *service) Prepare(ctx context.Context, req PrepareReq) (domain.Basket, error) {
	lock, err := s.locker.Obtain(ctx, s.prepareLockKey(req.UID), prepareLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(100*time.Millisecond), 30),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return domain.Basket{}, fmt.Errorf("%w: uid=%d", ErrBasketBusy, req.UID)
	}
	if err != nil {
		return domain.Basket{}, fmt.Errorf("获取购物车锁失败: %w", err)
	}
	defer func() {
		// 用新的 ctx, 避免请求超时后锁无法释放
		if er := lock.Release(context.Background()); er != nil {
			s.logger.Error("释放购物车锁失败", elog.FieldErr(er), elog.Int64("uid", req.UID))
		}
	}()

	info, err := s.catalogSvc.FetchForProduct(ctx, req.ProductID)
	if err != nil {
		return domain.Basket{}, err
	}
	if info.StockRecord.ID == 0 {
		return domain.Basket{}, fmt.Errorf("%w: productId=%d", ErrNoStockRecord, req.ProductID)
	}

	b, err := s.GetOrCreateOpen(ctx, req.UID)
	if err != nil {
		return domain.Basket{}, err
	}
	if err = b.Thaw(); err != nil {
		return domain.Basket{}, err
	}
	for _, vid := range b.RemoveAllVouchers() {
		s.logger.Info("移除购物车中的兑换券", elog.Int64("basketId", b.ID), elog.Int64("voucherId", vid))
	}
	b.ResetOfferApplications()
	if err = b.Flush(); err != nil {
		return domain.Basket{}, err
	}
	err = b.AddProduct(domain.Line{
		ProductID:     req.ProductID,
		StockRecordID: info.StockRecord.ID,
		Quantity:      req.Quantity,
		PriceCurrency: info.StockRecord.PriceCurrency,
		PriceExclTax:  info.Price,
	})
	if err != nil {
		return domain.Basket{}, err
	}

	if v := req.Voucher; v != nil {
		b.AddVoucher(v.ID)
		if err = s.applyVoucher(ctx, &b, *v, req.UID); err != nil {
			return domain.Basket{}, err
		}
		if b.HasDiscountFrom(v.ID) {
			s.logger.Info("兑换券已应用到购物车", elog.String("code", v.Code), elog.Int64("basketId", b.ID))
			if err = s.voucherSvc.RecordBasketAddition(ctx, v.ID); err != nil {
				return domain.Basket{}, err
			}
		} else {
			s.logger.Info("兑换券无效", elog.String("code", v.Code), elog.Int64("basketId", b.ID))
			b.RemoveVoucher(v.ID)
		}
	}

	if err = s.repo.Save(ctx, b); err != nil {
		return domain.Basket{}, fmt.Errorf("保存购物车失败: %w", err)
	}
	return b, nil
}

// 兑换券不在有效期或者对用户不可用时不产生任何优惠
func (s *service) applyVoucher(ctx context.Context, b *domain.Basket, v voucher.Voucher, uid int64) error {
	if !v.IsActive(time.Now()) {
		s.logger.Info("兑换券不在有效期内", elog.String("code", v.Code))
		return nil
	}
	ok, msg, err := s.voucherSvc.IsAvailableToUser(ctx, v, uid)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Info("兑换券对用户不可用",
			elog.String("code", v.Code),
			elog.Int64("uid", uid),
			elog.String("reason", msg))
		return nil
	}
	b.ApplyVoucher(v)
	return nil
}

func (s *service) prepareLockKey(uid int64) string {
	return fmt.Sprintf("basket:prepare:%d", uid)
}

func (s *service) FindByID(ctx context.Context, id int64) (domain.Basket, error) {
	b, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Basket{}, fmt.Errorf("%w: id=%d", ErrBasketNotFound, id)
	}
	return b, err
}

func (s *service) Freeze(ctx context.Context, id int64) (domain.Basket, error) {
	return s.transit(ctx, id, func(b *domain.Basket) error {
		return b.Freeze(time.Now().UnixMilli())
	})
}

func (s *service) Thaw(ctx context.Context, id int64) (domain.Basket, error) {
	return s.transit(ctx, id, func(b *domain.Basket) error {
		return b.Thaw()
	})
}

func (s *service) Submit(ctx context.Context, id int64) (domain.Basket, error) {
	return s.transit(ctx, id, func(b *domain.Basket) error {
		return b.Submit(time.Now().UnixMilli())
	})
}

func (s *service) transit(ctx context.Context, id int64, fn func(b *domain.Basket) error) (domain.Basket, error) {
	b, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Basket{}, err
	}
	from := b.Status
	if err = fn(&b); err != nil {
		return domain.Basket{}, err
	}
	if from == b.Status {
		return b, nil
	}
	err = s.repo.UpdateStatus(ctx, b, from)
	if errors.Is(err, dao.ErrStatusChanged) {
		return domain.Basket{}, fmt.Errorf("%w: 购物车 %d 状态已被修改", ErrIllegalStatus, id)
	}
	return b, err
}

func (s *service) ThawTimeoutFrozen(ctx context.Context, frozenBefore int64, batchSize int) (int64, error) {
	var total int64
	for {
		ids, err := s.repo.FindTimeoutFrozenIDs(ctx, frozenBefore, batchSize)
		if err != nil {
			return total, fmt.Errorf("查找超时冻结的购物车失败: %w", err)
		}
		if len(ids) == 0 {
			return total, nil
		}
		cnt, err := s.repo.ThawByIDs(ctx, ids)
		if err != nil {
			return total, fmt.Errorf("解冻购物车失败: %w", err)
		}
		total += cnt
		if len(ids) < batchSize {
			return total, nil
		}
	}
}
