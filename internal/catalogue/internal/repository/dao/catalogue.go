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
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicateKey   = errors.New("唯一索引冲突")
)

type CatalogueDAO interface {
	FindProductClassByName(ctx context.Context, name string) (ProductClass, error)
	FindProductClassByID(ctx context.Context, id int64) (ProductClass, error)
	FindProductAttributes(ctx context.Context, classID int64) ([]ProductAttribute, error)

	FindProductByID(ctx context.Context, id int64) (Product, error)
	FindProductsByIDs(ctx context.Context, ids []int64) ([]Product, error)
	ListProducts(ctx context.Context, classID int64, offset, limit int) ([]Product, error)
	CountProducts(ctx context.Context, classID int64) (int64, error)
	SaveProduct(ctx context.Context, p Product) (int64, error)
	// DeleteProduct 同时删除商品的库存记录
	DeleteProduct(ctx context.Context, id int64) error

	CreatePartner(ctx context.Context, p Partner) (int64, error)
	FindPartnerByID(ctx context.Context, id int64) (Partner, error)

	SaveStockRecord(ctx context.Context, sr StockRecord) (int64, error)
	FindStockRecordsByIDs(ctx context.Context, ids []int64) ([]StockRecord, error)
	FindStockRecordsByProductIDs(ctx context.Context, productIDs []int64) ([]StockRecord, error)

	FindCatalogsByNameAndPartner(ctx context.Context, name string, partnerID int64) ([]Catalog, error)
	FindCatalogByID(ctx context.Context, id int64) (Catalog, error)
	FindCatalogStockRecordIDs(ctx context.Context, catalogID int64) ([]int64, error)
	CreateCatalog(ctx context.Context, c Catalog, stockRecordIDs []int64) (int64, error)
}

type catalogueGORMDAO struct {
	db *egorm.Component
}

func NewCatalogueGORMDAO(db *egorm.Component) CatalogueDAO {
	return &catalogueGORMDAO{db: db}
}

func (d *catalogueGORMDAO) FindProductClassByName(ctx context.Context, name string) (ProductClass, error) {
	var res ProductClass
	err := d.db.WithContext(ctx).Where("name = ?", name).First(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindProductClassByID(ctx context.Context, id int64) (ProductClass, error) {
	var res ProductClass
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindProductAttributes(ctx context.Context, classID int64) ([]ProductAttribute, error) {
	var res []ProductAttribute
	err := d.db.WithContext(ctx).Where("product_class_id = ?", classID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindProductByID(ctx context.Context, id int64) (Product, error) {
	var res Product
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindProductsByIDs(ctx context.Context, ids []int64) ([]Product, error) {
	var res []Product
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) ListProducts(ctx context.Context, classID int64, offset, limit int) ([]Product, error) {
	var res []Product
	err := d.productQuery(ctx, classID).
		Order("id ASC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) CountProducts(ctx context.Context, classID int64) (int64, error) {
	var count int64
	err := d.productQuery(ctx, classID).Count(&count).Error
	return count, err
}

func (d *catalogueGORMDAO) productQuery(ctx context.Context, classID int64) *gorm.DB {
	db := d.db.WithContext(ctx).Model(&Product{})
	if classID > 0 {
		db = db.Where("product_class_id = ?", classID)
	}
	return db
}

func (d *catalogueGORMDAO) SaveProduct(ctx context.Context, p Product) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	if p.Id > 0 {
		err := d.db.WithContext(ctx).Model(&p).Where("id = ?", p.Id).
			Select("parent_id", "structure", "upc", "title", "description",
				"course_id", "expires_at", "attrs", "utime").
			Updates(&p).Error
		return p.Id, err
	}
	p.Ctime = now
	err := d.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (d *catalogueGORMDAO) DeleteProduct(ctx context.Context, id int64) error {
	return d.db.WithContext(ctx).Transaction(func(tx *egorm.Component) error {
		if err := tx.Where("product_id = ?", id).Delete(&StockRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Product{}).Error
	})
}

func (d *catalogueGORMDAO) CreatePartner(ctx context.Context, p Partner) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime, p.Ctime = now, now
	err := d.db.WithContext(ctx).Create(&p).Error
	if isMySQLUniqueIndexError(err) {
		return 0, ErrDuplicateKey
	}
	return p.Id, err
}

func (d *catalogueGORMDAO) FindPartnerByID(ctx context.Context, id int64) (Partner, error) {
	var res Partner
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) SaveStockRecord(ctx context.Context, sr StockRecord) (int64, error) {
	now := time.Now().UnixMilli()
	sr.Utime = now
	if sr.Id > 0 {
		err := d.db.WithContext(ctx).Model(&sr).Where("id = ?", sr.Id).
			Select("price_currency", "price_excl_tax", "num_in_stock", "num_allocated", "utime").
			Updates(&sr).Error
		return sr.Id, err
	}
	sr.Ctime = now
	err := d.db.WithContext(ctx).Create(&sr).Error
	if isMySQLUniqueIndexError(err) {
		return 0, ErrDuplicateKey
	}
	return sr.Id, err
}

func (d *catalogueGORMDAO) FindStockRecordsByIDs(ctx context.Context, ids []int64) ([]StockRecord, error) {
	var res []StockRecord
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindStockRecordsByProductIDs(ctx context.Context, productIDs []int64) ([]StockRecord, error) {
	var res []StockRecord
	err := d.db.WithContext(ctx).Where("product_id IN ?", productIDs).Order("id ASC").Find(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindCatalogsByNameAndPartner(ctx context.Context, name string, partnerID int64) ([]Catalog, error) {
	var res []Catalog
	err := d.db.WithContext(ctx).Where("name = ? AND partner_id = ?", name, partnerID).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindCatalogByID(ctx context.Context, id int64) (Catalog, error) {
	var res Catalog
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *catalogueGORMDAO) FindCatalogStockRecordIDs(ctx context.Context, catalogID int64) ([]int64, error) {
	var res []int64
	err := d.db.WithContext(ctx).Model(&CatalogStockRecord{}).
		Where("catalog_id = ?", catalogID).Order("stock_record_id ASC").
		Pluck("stock_record_id", &res).Error
	return res, err
}

func (d *catalogueGORMDAO) CreateCatalog(ctx context.Context, c Catalog, stockRecordIDs []int64) (int64, error) {
	now := time.Now().UnixMilli()
	c.Utime, c.Ctime = now, now
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		if len(stockRecordIDs) == 0 {
			return nil
		}
		rels := slice.Map(stockRecordIDs, func(idx int, src int64) CatalogStockRecord {
			return CatalogStockRecord{CatalogId: c.Id, StockRecordId: src, Ctime: now}
		})
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rels).Error
	})
	return c.Id, err
}

func isMySQLUniqueIndexError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return true
		}
	}
	return false
}
