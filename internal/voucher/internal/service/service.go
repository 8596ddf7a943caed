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

	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/shopspring/decimal"
)

var (
	ErrVoucherNotFound   = errors.New("兑换券不存在")
	ErrVoucherUsed       = dao.ErrVoucherUsed
	ErrVoucherCodeExists = errors.New("兑换码已存在")
	ErrInvalidBatch      = errors.New("兑换券批次参数非法")
)

const (
	// 去掉了容易混淆的 0/O 1/I
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	CodeLength   = 16
)

type VoucherBatch struct {
	Name         string
	Code         string
	Usage        domain.Usage
	StartAt      int64
	EndAt        int64
	Quantity     int64
	BenefitType  domain.BenefitType
	BenefitValue decimal.Decimal
	CatalogID    int64
	ProductIDs   []int64
}

func (b VoucherBatch) validate() error {
	switch {
	case b.Quantity < 1:
		return fmt.Errorf("%w: 数量必须大于 0", ErrInvalidBatch)
	case b.Code != "" && b.Quantity != 1:
		return fmt.Errorf("%w: 指定兑换码时数量只能为 1", ErrInvalidBatch)
	case b.StartAt >= b.EndAt:
		return fmt.Errorf("%w: 生效时间必须早于失效时间", ErrInvalidBatch)
	case !b.BenefitType.Valid():
		return fmt.Errorf("%w: 优惠类型 %s", ErrInvalidBatch, b.BenefitType)
	case b.BenefitValue.IsNegative():
		return fmt.Errorf("%w: 优惠值不能为负数", ErrInvalidBatch)
	case b.BenefitType == domain.BenefitTypePercentage && b.BenefitValue.GreaterThan(decimal.NewFromInt(100)):
		return fmt.Errorf("%w: 折扣比例不能超过 100", ErrInvalidBatch)
	}
	return nil
}

//go:generate mockgen -source=./service.go -package=vouchermocks -destination=../../mocks/voucher.mock.go Service
type Service interface {
	FindByCode(ctx context.Context, code string) (domain.Voucher, error)
	// GetVoucher 返回兑换券以及第一个优惠范围内的第一个商品, 兑换券不存在时返回零值和 ErrVoucherNotFound
	GetVoucher(ctx context.Context, code string) (domain.Voucher, catalogue.Product, error)
	IsAvailableToUser(ctx context.Context, v domain.Voucher, uid int64) (bool, string, error)
	RecordUsage(ctx context.Context, voucherID, orderID, uid int64, discount decimal.Decimal) error
	RecordBasketAddition(ctx context.Context, voucherID int64) error
	CreateVouchers(ctx context.Context, batch VoucherBatch) ([]domain.Voucher, error)
	// DeleteVouchers 只能删除没有使用记录的兑换券, 否则返回 ErrVoucherUsed
	DeleteVouchers(ctx context.Context, vs []domain.Voucher) error
	FindByCatalogID(ctx context.Context, catalogID int64) ([]domain.Voucher, error)
}

type service struct {
	repo       repository.VoucherRepository
	catalogSvc catalogue.Service
	logger     *elog.Component
}

func NewService(repo repository.VoucherRepository, catalogSvc catalogue.Service) Service {
	return &service{
		repo:       repo,
		catalogSvc: catalogSvc,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) FindByCode(ctx context.Context, code string) (domain.Voucher, error) {
	v, err := s.repo.FindByCode(ctx, code)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Voucher{}, fmt.Errorf("%w: code=%s", ErrVoucherNotFound, code)
	}
	return v, err
}

func (s *service) GetVoucher(ctx context.Context, code string) (domain.Voucher, catalogue.Product, error) {
	v, err := s.FindByCode(ctx, code)
	if err != nil {
		return domain.Voucher{}, catalogue.Product{}, err
	}
	pid, ok := v.FirstProductID()
	if !ok {
		return v, catalogue.Product{}, nil
	}
	p, err := s.catalogSvc.FindProductByID(ctx, pid)
	if err != nil {
		return domain.Voucher{}, catalogue.Product{}, err
	}
	return v, p, nil
}

func (s *service) IsAvailableToUser(ctx context.Context, v domain.Voucher, uid int64) (bool, string, error) {
	userCnt, total, err := s.repo.CountApplications(ctx, v.ID, uid)
	if err != nil {
		return false, "", err
	}
	ok, msg := v.IsAvailableToUser(userCnt, total)
	return ok, msg, nil
}

func (s *service) RecordUsage(ctx context.Context, voucherID, orderID, uid int64, discount decimal.Decimal) error {
	return s.repo.RecordUsage(ctx, domain.Application{
		VoucherID: voucherID,
		UserID:    uid,
		OrderID:   orderID,
		Discount:  discount,
	})
}

func (s *service) RecordBasketAddition(ctx context.Context, voucherID int64) error {
	return s.repo.RecordBasketAddition(ctx, voucherID)
}

func (s *service) CreateVouchers(ctx context.Context, batch VoucherBatch) ([]domain.Voucher, error) {
	if err := batch.validate(); err != nil {
		return nil, err
	}
	if batch.Usage == 0 {
		batch.Usage = domain.UsageSingleUse
	}
	offer := domain.Offer{
		Name: fmt.Sprintf("Catalog [%d]-%s-%s", batch.CatalogID, batch.BenefitType, batch.BenefitValue.String()),
		Benefit: domain.Benefit{
			Type:  batch.BenefitType,
			Value: batch.BenefitValue,
			Range: domain.Range{
				Name:       fmt.Sprintf("Range for catalog [%d]", batch.CatalogID),
				CatalogID:  batch.CatalogID,
				ProductIDs: batch.ProductIDs,
			},
		},
	}
	vs := make([]domain.Voucher, 0, batch.Quantity)
	for i := int64(0); i < batch.Quantity; i++ {
		code := batch.Code
		if code == "" {
			code = GenerateCode()
		}
		vs = append(vs, domain.Voucher{
			Name:    batch.Name,
			Code:    code,
			Usage:   batch.Usage,
			StartAt: batch.StartAt,
			EndAt:   batch.EndAt,
		})
	}
	res, err := s.repo.CreateVouchers(ctx, offer, vs)
	if errors.Is(err, dao.ErrDuplicateCode) {
		return nil, fmt.Errorf("%w: %w", ErrVoucherCodeExists, err)
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info("创建兑换券",
		elog.String("name", batch.Name),
		elog.Int64("catalogId", batch.CatalogID),
		elog.Int("count", len(res)))
	return res, nil
}

func (s *service) DeleteVouchers(ctx context.Context, vs []domain.Voucher) error {
	return s.repo.DeleteVouchers(ctx, vs)
}

func (s *service) FindByCatalogID(ctx context.Context, catalogID int64) ([]domain.Voucher, error) {
	return s.repo.FindByCatalogID(ctx, catalogID)
}

// GenerateCode 生成 16 位大写兑换码
func GenerateCode() string {
	return shortuuid.NewWithAlphabet(codeAlphabet)[:CodeLength]
}
