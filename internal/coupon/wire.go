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

package coupon

import (
	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/service"
	"github.com/ecodeclub/ecommerce/internal/coupon/internal/web"
	"github.com/ecodeclub/ecommerce/internal/course"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(cm *catalogue.Module,
	vm *voucher.Module,
	bm *basket.Module,
	om *order.Module,
	crm *course.Module) *Module {
	wire.Build(
		service.NewService,
		initHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*catalogue.Module), "Svc"),
		wire.FieldsOf(new(*voucher.Module), "Svc"),
		wire.FieldsOf(new(*basket.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*course.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initHandler(svc service.Service) *web.Handler {
	return web.NewHandler(svc, econf.GetString("lms.loginURL"))
}
