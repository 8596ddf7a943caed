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

package startup

import (
	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/order"
	testioc "github.com/ecodeclub/ecommerce/internal/test/ioc"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/google/wire"
)

// Modules 下单依赖的上游模块, 测试时用来准备数据
type Modules struct {
	Catalogue *catalogue.Module
	Voucher   *voucher.Module
	Basket    *basket.Module
	Order     *order.Module
}

func InitModules() (*Modules, error) {
	wire.Build(testioc.BaseSet,
		catalogue.InitModule,
		voucher.InitModule,
		basket.InitModule,
		order.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
