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
	"fmt"
	"time"

	"github.com/ego-component/egorm"
)

func InitTables(db *egorm.Component) error {
	err := db.AutoMigrate(
		&ProductClass{},
		&ProductAttribute{},
		&Product{},
		&Partner{},
		&StockRecord{},
		&Catalog{},
		&CatalogStockRecord{},
	)
	if err != nil {
		return err
	}
	return initProductClasses(db)
}

type seedClass struct {
	class ProductClass
	attrs []ProductAttribute
}

// 内置的商品类别, 重复执行不会产生重复数据
func initProductClasses(db *egorm.Component) error {
	seeds := []seedClass{
		{
			class: ProductClass{Name: "Seat", Slug: "seat"},
			attrs: []ProductAttribute{
				{Name: "certificate_type", Code: "certificate_type", Type: "text"},
				{Name: "course_key", Code: "course_key", Type: "text", Required: true},
				{Name: "id_verification_required", Code: "id_verification_required", Type: "boolean"},
				{Name: "credit_provider", Code: "credit_provider", Type: "text"},
			},
		},
		{
			class: ProductClass{Name: "Coupon", Slug: "coupon"},
			attrs: []ProductAttribute{
				{Name: "Coupon Category", Code: "coupon_category", Type: "text", Required: true},
			},
		},
	}
	now := time.Now().UnixMilli()
	return db.Transaction(func(tx *egorm.Component) error {
		for _, s := range seeds {
			c := s.class
			err := tx.Where(ProductClass{Name: c.Name}).
				Attrs(ProductClass{Slug: c.Slug, Ctime: now, Utime: now}).
				FirstOrCreate(&c).Error
			if err != nil {
				return fmt.Errorf("初始化商品类别 %s 失败: %w", c.Name, err)
			}
			for _, a := range s.attrs {
				a.ProductClassId = c.Id
				err = tx.Where(ProductAttribute{ProductClassId: c.Id, Code: a.Code}).
					Attrs(ProductAttribute{Name: a.Name, Type: a.Type, Required: a.Required, Ctime: now, Utime: now}).
					FirstOrCreate(&a).Error
				if err != nil {
					return fmt.Errorf("初始化商品属性 %s 失败: %w", a.Code, err)
				}
			}
		}
		return nil
	})
}
