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

package cache

import (
	"fmt"
	"time"

	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// ProductClassCache 商品类别几乎不变, 放在本地缓存里面
type ProductClassCache interface {
	GetByName(name string) (domain.ProductClass, bool)
	GetByID(id int64) (domain.ProductClass, bool)
	Set(c domain.ProductClass)
}

type ProductClassLRUCache struct {
	cache *expirable.LRU[string, domain.ProductClass]
}

func NewProductClassLRUCache(size int, ttl time.Duration) ProductClassCache {
	return &ProductClassLRUCache{
		cache: expirable.NewLRU[string, domain.ProductClass](size, nil, ttl),
	}
}

func (c *ProductClassLRUCache) GetByName(name string) (domain.ProductClass, bool) {
	return c.cache.Get(c.nameKey(name))
}

func (c *ProductClassLRUCache) GetByID(id int64) (domain.ProductClass, bool) {
	return c.cache.Get(c.idKey(id))
}

func (c *ProductClassLRUCache) Set(cls domain.ProductClass) {
	c.cache.Add(c.nameKey(cls.Name), cls)
	c.cache.Add(c.idKey(cls.ID), cls)
}

func (c *ProductClassLRUCache) nameKey(name string) string {
	return fmt.Sprintf("name:%s", name)
}

func (c *ProductClassLRUCache) idKey(id int64) string {
	return fmt.Sprintf("id:%d", id)
}
