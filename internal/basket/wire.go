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

package basket

import (
	"sync"
	"time"

	"github.com/bsm/redislock"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/job"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/service"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/redis/go-redis/v9"
)

func InitModule(db *egorm.Component, cmd redis.Cmdable, cm *catalogue.Module, vm *voucher.Module) *Module {
	wire.Build(
		InitTablesOnce,
		initLocker,
		repository.NewBasketRepository,
		service.NewService,
		initThawJob,
		wire.FieldsOf(new(*catalogue.Module), "Svc"),
		wire.FieldsOf(new(*voucher.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.BasketDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewBasketGORMDAO(db)
}

func initLocker(cmd redis.Cmdable) *redislock.Client {
	return redislock.New(cmd)
}

func initThawJob(svc service.Service) *job.ThawTimeoutFrozenBasketsJob {
	const batchSize = 100
	timeout := econf.GetDuration("basket.frozenTimeout")
	if timeout <= 0 {
		timeout = 30 * time.Minute
	}
	return job.NewThawTimeoutFrozenBasketsJob(svc, timeout, batchSize)
}
