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

package test

import (
	"errors"

	"github.com/ecodeclub/ginx/gctx"
	"github.com/ecodeclub/ginx/session"
)

var errSessionNotFound = errors.New("session 不存在")

func init() {
	session.SetDefaultProvider(&SessionProvider{})
}

// SessionProvider 测试里由中间件直接把 session 放进 "_session", 没放就当作未登录
type SessionProvider struct {
}

func (s *SessionProvider) NewSession(ctx *gctx.Context, uid int64, jwtData map[string]string, sessData map[string]any) (session.Session, error) {
	return nil, nil
}

func (s *SessionProvider) Get(ctx *gctx.Context) (session.Session, error) {
	val, ok := ctx.Get("_session")
	if !ok {
		return nil, errSessionNotFound
	}
	sess, ok := val.(session.Session)
	if !ok {
		return nil, errSessionNotFound
	}
	return sess, nil
}

// NewStaffClaims 员工登录态
func NewStaffClaims(uid int64) session.Claims {
	return session.Claims{Uid: uid, Data: map[string]string{"staff": "true"}}
}

// NewUserClaims 普通用户登录态, accessToken 用于调用 LMS
func NewUserClaims(uid int64, accessToken string) session.Claims {
	return session.Claims{Uid: uid, Data: map[string]string{"accessToken": accessToken}}
}
