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

package ioc

import (
	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/coupon"
	"github.com/ecodeclub/ecommerce/internal/course"
	"github.com/ecodeclub/ecommerce/internal/invoice"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		catalogue.InitModule,
		voucher.InitModule,
		basket.InitModule,
		order.InitModule,
		invoice.InitModule,
		course.InitModule,
		coupon.InitModule,
		wire.FieldsOf(new(*catalogue.Module), "AdminHdl"),
		wire.FieldsOf(new(*basket.Module), "ThawJob"),
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "CloseJob"),
		wire.FieldsOf(new(*invoice.Module), "Hdl", "Consumer"),
		wire.FieldsOf(new(*coupon.Module), "Hdl", "AdminHdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
