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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const StaffClaimKey = "staff"

// CheckStaffMiddlewareBuilder 只允许员工访问
type CheckStaffMiddlewareBuilder struct {
	abortStatus int
	logger      *elog.Component
	sp          session.Provider
}

func NewCheckStaffMiddlewareBuilder() *CheckStaffMiddlewareBuilder {
	return &CheckStaffMiddlewareBuilder{
		abortStatus: http.StatusForbidden,
		logger:      elog.DefaultLogger,
	}
}

// AbortStatus 页面对非员工返回 404, 不暴露页面存在
func (c *CheckStaffMiddlewareBuilder) AbortStatus(status int) *CheckStaffMiddlewareBuilder {
	c.abortStatus = status
	return c
}

func (c *CheckStaffMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusUnauthorized)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		if claims.Get(StaffClaimKey).StringOrDefault("") == "true" {
			return
		}
		c.logger.Debug("非员工访问", elog.Int64("uid", claims.Uid), elog.String("path", ctx.Request.URL.Path))
		gctx.AbortWithStatus(c.abortStatus)
	}
}
