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

//go:build wireinject

package catalogue

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository/cache"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/service"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ServiceSet = wire.NewSet(
	InitTablesOnce,
	initProductClassCache,
	repository.NewCatalogueRepository,
	service.NewService)

func InitModule(db *egorm.Component) *Module {
	wire.Build(
		ServiceSet,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CatalogueDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCatalogueGORMDAO(db)
}

func initProductClassCache() cache.ProductClassCache {
	const size = 64
	return cache.NewProductClassLRUCache(size, time.Hour)
}
