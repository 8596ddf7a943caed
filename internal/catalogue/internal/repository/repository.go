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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository/cache"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

type CatalogueRepository interface {
	FindProductClassByName(ctx context.Context, name string) (domain.ProductClass, error)
	FindProductClassByID(ctx context.Context, id int64) (domain.ProductClass, error)

	FindProductByID(ctx context.Context, id int64) (domain.Product, error)
	FindProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	// ListProducts classID = 0 表示不过滤
	ListProducts(ctx context.Context, classID int64, offset, limit int) ([]domain.Product, int64, error)
	SaveProduct(ctx context.Context, p domain.Product) (int64, error)
	DeleteProduct(ctx context.Context, id int64) error

	CreatePartner(ctx context.Context, p domain.Partner) (int64, error)
	FindPartnerByID(ctx context.Context, id int64) (domain.Partner, error)

	SaveStockRecord(ctx context.Context, sr domain.StockRecord) (int64, error)
	FindStockRecordsByIDs(ctx context.Context, ids []int64) ([]domain.StockRecord, error)

	FindCatalogs(ctx context.Context, name string, partnerID int64) ([]domain.Catalog, error)
	FindCatalogByID(ctx context.Context, id int64) (domain.Catalog, error)
	CreateCatalog(ctx context.Context, c domain.Catalog) (int64, error)
}

func NewCatalogueRepository(d dao.CatalogueDAO, c cache.ProductClassCache) CatalogueRepository {
	return &catalogueRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

type catalogueRepository struct {
	dao    dao.CatalogueDAO
	cache  cache.ProductClassCache
	logger *elog.Component
}

func (r *catalogueRepository) FindProductClassByName(ctx context.Context, name string) (domain.ProductClass, error) {
	if cls, ok := r.cache.GetByName(name); ok {
		return cls, nil
	}
	c, err := r.dao.FindProductClassByName(ctx, name)
	if err != nil {
		return domain.ProductClass{}, err
	}
	// 类别名称区分大小写
	if c.Name != name {
		return domain.ProductClass{}, dao.ErrRecordNotFound
	}
	return r.loadProductClass(ctx, c)
}

func (r *catalogueRepository) FindProductClassByID(ctx context.Context, id int64) (domain.ProductClass, error) {
	if cls, ok := r.cache.GetByID(id); ok {
		return cls, nil
	}
	c, err := r.dao.FindProductClassByID(ctx, id)
	if err != nil {
		return domain.ProductClass{}, err
	}
	return r.loadProductClass(ctx, c)
}

func (r *catalogueRepository) loadProductClass(ctx context.Context, c dao.ProductClass) (domain.ProductClass, error) {
	attrs, err := r.dao.FindProductAttributes(ctx, c.Id)
	if err != nil {
		return domain.ProductClass{}, err
	}
	cls := domain.ProductClass{
		ID:               c.Id,
		Name:             c.Name,
		Slug:             c.Slug,
		RequiresShipping: c.RequiresShipping,
		TrackStock:       c.TrackStock,
		Attributes: slice.Map(attrs, func(idx int, src dao.ProductAttribute) domain.ProductAttribute {
			return domain.ProductAttribute{
				ID:             src.Id,
				ProductClassID: src.ProductClassId,
				Name:           src.Name,
				Code:           src.Code,
				Type:           domain.AttributeType(src.Type),
				Required:       src.Required,
			}
		}),
	}
	r.cache.Set(cls)
	return cls, nil
}

func (r *catalogueRepository) FindProductByID(ctx context.Context, id int64) (domain.Product, error) {
	p, err := r.dao.FindProductByID(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}
	res, err := r.toDomainProducts(ctx, []dao.Product{p})
	if err != nil {
		return domain.Product{}, err
	}
	return res[0], nil
}

func (r *catalogueRepository) FindProductsByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	ps, err := r.dao.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomainProducts(ctx, ps)
}

func (r *catalogueRepository) ListProducts(ctx context.Context, classID int64, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg    errgroup.Group
		ps    []dao.Product
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = r.dao.ListProducts(ctx, classID, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.CountProducts(ctx, classID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	res, err := r.toDomainProducts(ctx, ps)
	return res, total, err
}

// toDomainProducts 批量补全类别名称和库存记录
func (r *catalogueRepository) toDomainProducts(ctx context.Context, ps []dao.Product) ([]domain.Product, error) {
	if len(ps) == 0 {
		return []domain.Product{}, nil
	}
	srs, err := r.dao.FindStockRecordsByProductIDs(ctx, slice.Map(ps, func(idx int, src dao.Product) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	srMap := make(map[int64][]domain.StockRecord, len(ps))
	for _, sr := range srs {
		srMap[sr.ProductId] = append(srMap[sr.ProductId], r.toDomainStockRecord(sr))
	}
	res := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		cls, err := r.FindProductClassByID(ctx, p.ProductClassId)
		if err != nil {
			return nil, fmt.Errorf("查找商品类别失败 product_id=%d: %w", p.Id, err)
		}
		dp := r.toDomainProduct(p, cls.Name)
		dp.StockRecords = srMap[p.Id]
		res = append(res, dp)
	}
	return res, nil
}

func (r *catalogueRepository) toDomainProduct(p dao.Product, className string) domain.Product {
	return domain.Product{
		ID:          p.Id,
		ParentID:    p.ParentId,
		Structure:   domain.Structure(p.Structure),
		UPC:         p.Upc,
		Title:       p.Title,
		Description: p.Description,
		ClassName:   className,
		CourseID:    p.CourseId,
		ExpiresAt:   p.ExpiresAt,
		Attributes:  p.Attrs.Val,
		Ctime:       p.Ctime,
		Utime:       p.Utime,
	}
}

func (r *catalogueRepository) SaveProduct(ctx context.Context, p domain.Product) (int64, error) {
	cls, err := r.FindProductClassByName(ctx, p.ClassName)
	if err != nil {
		return 0, err
	}
	structure := p.Structure
	if structure == "" {
		structure = domain.StructureStandalone
	}
	return r.dao.SaveProduct(ctx, dao.Product{
		Id:             p.ID,
		ParentId:       p.ParentID,
		Structure:      string(structure),
		Upc:            p.UPC,
		Title:          p.Title,
		Description:    p.Description,
		ProductClassId: cls.ID,
		CourseId:       p.CourseID,
		ExpiresAt:      p.ExpiresAt,
		Attrs: sqlx.JsonColumn[map[string]string]{
			Val:   p.Attributes,
			Valid: len(p.Attributes) > 0,
		},
	})
}

func (r *catalogueRepository) DeleteProduct(ctx context.Context, id int64) error {
	return r.dao.DeleteProduct(ctx, id)
}

func (r *catalogueRepository) CreatePartner(ctx context.Context, p domain.Partner) (int64, error) {
	return r.dao.CreatePartner(ctx, dao.Partner{
		Name:      p.Name,
		ShortCode: p.ShortCode,
	})
}

func (r *catalogueRepository) FindPartnerByID(ctx context.Context, id int64) (domain.Partner, error) {
	p, err := r.dao.FindPartnerByID(ctx, id)
	if err != nil {
		return domain.Partner{}, err
	}
	return domain.Partner{ID: p.Id, Name: p.Name, ShortCode: p.ShortCode}, nil
}

func (r *catalogueRepository) SaveStockRecord(ctx context.Context, sr domain.StockRecord) (int64, error) {
	return r.dao.SaveStockRecord(ctx, dao.StockRecord{
		Id:            sr.ID,
		ProductId:     sr.ProductID,
		PartnerId:     sr.PartnerID,
		PartnerSku:    sr.PartnerSKU,
		PriceCurrency: sr.PriceCurrency,
		PriceExclTax:  sr.PriceExclTax,
		NumInStock:    sr.NumInStock,
		NumAllocated:  sr.NumAllocated,
	})
}

func (r *catalogueRepository) FindStockRecordsByIDs(ctx context.Context, ids []int64) ([]domain.StockRecord, error) {
	if len(ids) == 0 {
		return []domain.StockRecord{}, nil
	}
	srs, err := r.dao.FindStockRecordsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(srs, func(idx int, src dao.StockRecord) domain.StockRecord {
		return r.toDomainStockRecord(src)
	}), nil
}

func (r *catalogueRepository) toDomainStockRecord(sr dao.StockRecord) domain.StockRecord {
	return domain.StockRecord{
		ID:            sr.Id,
		ProductID:     sr.ProductId,
		PartnerID:     sr.PartnerId,
		PartnerSKU:    sr.PartnerSku,
		PriceCurrency: sr.PriceCurrency,
		PriceExclTax:  sr.PriceExclTax,
		NumInStock:    sr.NumInStock,
		NumAllocated:  sr.NumAllocated,
	}
}

func (r *catalogueRepository) FindCatalogs(ctx context.Context, name string, partnerID int64) ([]domain.Catalog, error) {
	cs, err := r.dao.FindCatalogsByNameAndPartner(ctx, name, partnerID)
	if err != nil {
		return nil, err
	}
	res := make([]domain.Catalog, 0, len(cs))
	for _, c := range cs {
		// 数据库的比较规则不区分大小写, 这里再精确比较一次
		if c.Name != name {
			continue
		}
		ids, err := r.dao.FindCatalogStockRecordIDs(ctx, c.Id)
		if err != nil {
			return nil, err
		}
		res = append(res, r.toDomainCatalog(c, ids))
	}
	return res, nil
}

func (r *catalogueRepository) FindCatalogByID(ctx context.Context, id int64) (domain.Catalog, error) {
	c, err := r.dao.FindCatalogByID(ctx, id)
	if err != nil {
		return domain.Catalog{}, err
	}
	ids, err := r.dao.FindCatalogStockRecordIDs(ctx, c.Id)
	if err != nil {
		return domain.Catalog{}, err
	}
	return r.toDomainCatalog(c, ids), nil
}

func (r *catalogueRepository) toDomainCatalog(c dao.Catalog, ids []int64) domain.Catalog {
	return domain.Catalog{
		ID:             c.Id,
		Name:           c.Name,
		PartnerID:      c.PartnerId,
		StockRecordIDs: ids,
	}
}

func (r *catalogueRepository) CreateCatalog(ctx context.Context, c domain.Catalog) (int64, error) {
	return r.dao.CreateCatalog(ctx, dao.Catalog{
		Name:      c.Name,
		PartnerId: c.PartnerID,
	}, c.StockRecordIDs)
}
