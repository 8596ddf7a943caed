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

package order

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/order/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/order/internal/event"
	"github.com/ecodeclub/ecommerce/internal/order/internal/job"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/order/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/order/internal/service"
	"github.com/ecodeclub/ecommerce/internal/order/internal/web"
	"github.com/ecodeclub/ecommerce/internal/pkg/mqx"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	cm *catalogue.Module,
	vm *voucher.Module,
	bm *basket.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		initProducer,
		initService,
		web.NewHandler,
		web.NewAdminHandler,
		initCloseJob,
		wire.FieldsOf(new(*catalogue.Module), "Svc"),
		wire.FieldsOf(new(*voucher.Module), "Svc"),
		wire.FieldsOf(new(*basket.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initProducer(q mq.MQ) (mqx.Producer[event.OrderEvent], error) {
	p, err := mqx.NewGeneralProducer[event.OrderEvent](q, event.OrderEventName)
	if err != nil {
		return nil, err
	}
	return p.WithKey(func(evt event.OrderEvent) string {
		return evt.OrderNumber
	}), nil
}

func initService(repo repository.OrderRepository,
	basketSvc basket.Service,
	voucherSvc voucher.Service,
	catalogSvc catalogue.Service,
	producer mqx.Producer[event.OrderEvent]) service.Service {
	prefix := econf.GetString("order.numberPrefix")
	if prefix == "" {
		prefix = domain.DefaultNumberPrefix
	}
	return service.NewService(repo, basketSvc, voucherSvc, catalogSvc, producer, prefix)
}

func initCloseJob(svc service.Service) *job.CloseExpiredOrdersJob {
	const batchSize = 100
	expire := econf.GetDuration("order.expire")
	if expire <= 0 {
		expire = 24 * time.Hour
	}
	return job.NewCloseExpiredOrdersJob(svc, expire, batchSize)
}
