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
	"unicode/utf8"

	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrProductNotFound         = errors.New("商品不存在")
	ErrProductClassNotFound    = errors.New("商品类别不存在")
	ErrPartnerNotFound         = errors.New("合作方不存在")
	ErrPartnerShortCodeExists  = errors.New("合作方简码已存在")
	ErrPartnerShortCodeTooLong = errors.New("合作方简码过长")
	ErrStockRecordNotFound     = errors.New("库存记录不存在")
	ErrStockRecordExists       = errors.New("库存记录已存在")
	ErrAttributeRequired       = domain.ErrAttributeRequired
	ErrAttributeInvalid        = domain.ErrAttributeInvalid
)

//go:generate mockgen -source=./service.go -package=cataloguemocks -destination=../../mocks/catalogue.mock.go Service
type Service interface {
	// ListProducts productClass 为空表示全部类别, 类别名称区分大小写
	ListProducts(ctx context.Context, productClass string, offset, limit int) ([]domain.Product, int64, error)
	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	SaveProduct(ctx context.Context, p domain.Product) (int64, error)
	// DeleteProduct 删除商品和它的库存记录
	DeleteProduct(ctx context.Context, id int64) error
	// FetchForProduct 获取商品的购买信息, 包括价格与是否可以购买
	FetchForProduct(ctx context.Context, productID int64) (domain.PurchaseInfo, error)

	CreatePartner(ctx context.Context, p domain.Partner) (int64, error)
	FindPartnerByID(ctx context.Context, id int64) (domain.Partner, error)

	// SaveStockRecord PartnerSKU 为空时自动生成, catalogName 只对兑换券商品有意义
	SaveStockRecord(ctx context.Context, sr domain.StockRecord, catalogName string) (int64, error)
	FindStockRecordsByIDs(ctx context.Context, ids []int64) ([]domain.StockRecord, error)

	// GetOrCreateCatalog 返回名称、合作方和库存记录集合都相同的目录, 没有则创建
	GetOrCreateCatalog(ctx context.Context, name string, partnerID int64, stockRecordIDs []int64) (domain.Catalog, bool, error)
	FindCatalogByID(ctx context.Context, id int64) (domain.Catalog, error)
}

func NewService(repo repository.CatalogueRepository) Service {
	return &service{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

type service struct {
	repo   repository.CatalogueRepository
	logger *elog.Component
}

func (s *service) ListProducts(ctx context.Context, productClass string, offset, limit int) ([]domain.Product, int64, error) {
	var classID int64
	if productClass != "" {
		cls, err := s.repo.FindProductClassByName(ctx, productClass)
		if errors.Is(err, dao.ErrRecordNotFound) {
			return []domain.Product{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		classID = cls.ID
	}
	return s.repo.ListProducts(ctx, classID, offset, limit)
}

func (s *service) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := s.repo.FindProductByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Product{}, fmt.Errorf("%w: id=%d", ErrProductNotFound, id)
	}
	return p, err
}

func (s *service) FindProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	return s.repo.FindProductsByIDs(ctx, ids)
}

func (s *service) SaveProduct(ctx context.Context, p domain.Product) (int64, error) {
	cls, err := s.repo.FindProductClassByName(ctx, p.ClassName)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: %s", ErrProductClassNotFound, p.ClassName)
	}
	if err != nil {
		return 0, err
	}
	if err = cls.Validate(p.Attributes); err != nil {
		return 0, err
	}
	return s.repo.SaveProduct(ctx, p)
}

func (s *service) DeleteProduct(ctx context.Context, id int64) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *service) FetchForProduct(ctx context.Context, productID int64) (domain.PurchaseInfo, error) {
	p, err := s.FindProductByID(ctx, productID)
	if err != nil {
		return domain.PurchaseInfo{}, err
	}
	cls, err := s.repo.FindProductClassByName(ctx, p.ClassName)
	if err != nil {
		return domain.PurchaseInfo{}, fmt.Errorf("查找商品类别失败: %w", err)
	}
	return domain.NewPurchaseInfo(p, cls, time.Now()), nil
}

func (s *service) CreatePartner(ctx context.Context, p domain.Partner) (int64, error) {
	if utf8.RuneCountInString(p.ShortCode) > domain.MaxShortCodeLength {
		return 0, fmt.Errorf("%w: %s", ErrPartnerShortCodeTooLong, p.ShortCode)
	}
	id, err := s.repo.CreatePartner(ctx, p)
	if errors.Is(err, dao.ErrDuplicateKey) {
		return 0, fmt.Errorf("%w: %s", ErrPartnerShortCodeExists, p.ShortCode)
	}
	return id, err
}

func (s *service) FindPartnerByID(ctx context.Context, id int64) (domain.Partner, error) {
	p, err := s.repo.FindPartnerByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Partner{}, fmt.Errorf("%w: id=%d", ErrPartnerNotFound, id)
	}
	return p, err
}

func (s *service) SaveStockRecord(ctx context.Context, sr domain.StockRecord, catalogName string) (int64, error) {
	if sr.ID == 0 {
		if _, err := s.FindPartnerByID(ctx, sr.PartnerID); err != nil {
			return 0, err
		}
	}
	if sr.PartnerSKU == "" {
		p, err := s.FindProductByID(ctx, sr.ProductID)
		if err != nil {
			return 0, err
		}
		sr.PartnerSKU = domain.GenerateSKU(p, sr.PartnerID, catalogName)
	}
	if sr.PriceCurrency == "" {
		sr.PriceCurrency = "USD"
	}
	id, err := s.repo.SaveStockRecord(ctx, sr)
	if errors.Is(err, dao.ErrDuplicateKey) {
		return 0, fmt.Errorf("%w: partner=%d sku=%s", ErrStockRecordExists, sr.PartnerID, sr.PartnerSKU)
	}
	return id, err
}

func (s *service) FindStockRecordsByIDs(ctx context.Context, ids []int64) ([]domain.StockRecord, error) {
	return s.repo.FindStockRecordsByIDs(ctx, ids)
}

func (s *service) GetOrCreateCatalog(ctx context.Context, name string, partnerID int64, stockRecordIDs []int64) (domain.Catalog, bool, error) {
	srs, err := s.repo.FindStockRecordsByIDs(ctx, stockRecordIDs)
	if err != nil {
		return domain.Catalog{}, false, err
	}
	found := make(map[int64]struct{}, len(srs))
	for _, sr := range srs {
		found[sr.ID] = struct{}{}
	}
	for _, id := range stockRecordIDs {
		if _, ok := found[id]; !ok {
			return domain.Catalog{}, false, fmt.Errorf("%w: id=%d", ErrStockRecordNotFound, id)
		}
	}

	catalogs, err := s.repo.FindCatalogs(ctx, name, partnerID)
	if err != nil {
		return domain.Catalog{}, false, err
	}
	for _, c := range catalogs {
		if c.SameStockRecords(stockRecordIDs) {
			return c, false, nil
		}
	}

	c := domain.Catalog{
		Name:           name,
		PartnerID:      partnerID,
		StockRecordIDs: stockRecordIDs,
	}
	c.ID, err = s.repo.CreateCatalog(ctx, c)
	if err != nil {
		return domain.Catalog{}, false, fmt.Errorf("创建目录失败: %w", err)
	}
	s.logger.Info("创建目录",
		elog.String("name", name),
		elog.Int64("partnerId", partnerID),
		elog.Int64("catalogId", c.ID))
	return c, true, nil
}

func (s *service) FindCatalogByID(ctx context.Context, id int64) (domain.Catalog, error) {
	return s.repo.FindCatalogByID(ctx, id)
}
