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

package course

import (
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecommerce/internal/course/internal/client"
	"github.com/ecodeclub/ecommerce/internal/course/internal/repository/cache"
	"github.com/ecodeclub/ecommerce/internal/course/internal/service"
	"github.com/google/wire"
	"github.com/gotomicro/ego/client/ehttp"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(ec ecache.Cache) *Module {
	wire.Build(
		initLMSURL,
		initFetcher,
		initCourseCache,
		service.NewService,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}

func initLMSURL() string {
	return econf.GetString("lms.url")
}

func initFetcher(lmsURL string) service.Fetcher {
	c := ehttp.Load("ehttp.lms").Build()
	return client.NewLMSClient(c.Client, lmsURL)
}

func initCourseCache(ec ecache.Cache) cache.CourseCache {
	const size = 1024
	return cache.NewCourseECache(ec, size, time.Hour)
}
