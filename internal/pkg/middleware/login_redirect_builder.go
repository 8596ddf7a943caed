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

package middleware

import (
	"net/http"
	"net/url"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// LoginRedirectMiddlewareBuilder 页面请求未登录时跳转到登录页, 登录后通过 next 回到原页面
type LoginRedirectMiddlewareBuilder struct {
	loginURL string
	logger   *elog.Component
	sp       session.Provider
}

func NewLoginRedirectMiddlewareBuilder(loginURL string) *LoginRedirectMiddlewareBuilder {
	return &LoginRedirectMiddlewareBuilder{
		loginURL: loginURL,
		logger:   elog.DefaultLogger,
	}
}

func (b *LoginRedirectMiddlewareBuilder) Build() gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		_, err := b.sp.Get(gctx)
		if err == nil {
			return
		}
		b.logger.Debug("用户未登录, 跳转登录页", elog.FieldErr(err), elog.String("path", ctx.Request.URL.Path))
		ctx.Redirect(http.StatusFound, b.loginURL+"?next="+url.QueryEscape(ctx.Request.URL.RequestURI()))
		ctx.Abort()
	}
}
