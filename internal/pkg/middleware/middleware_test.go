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
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ecommerce/internal/test"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newServer(sess session.Session, hdls ...gin.HandlerFunc) *gin.Engine {
	server := gin.New()
	server.Use(func(ctx *gin.Context) {
		if sess != nil {
			ctx.Set("_session", sess)
		}
	})
	server.Use(hdls...)
	server.GET("/coupons/app/*path", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "ok")
	})
	return server
}

func TestLoginRedirectMiddlewareBuilder(t *testing.T) {
	testCases := []struct {
		name         string
		sess         session.Session
		path         string
		wantCode     int
		wantLocation string
	}{
		{
			name:         "未登录",
			path:         "/coupons/app/",
			wantCode:     http.StatusFound,
			wantLocation: "http://lms.local/login?next=%2Fcoupons%2Fapp%2F",
		},
		{
			name:         "未登录带参数",
			path:         "/coupons/app/edit?id=1",
			wantCode:     http.StatusFound,
			wantLocation: "http://lms.local/login?next=%2Fcoupons%2Fapp%2Fedit%3Fid%3D1",
		},
		{
			name:     "已登录",
			sess:     session.NewMemorySession(test.NewUserClaims(9, "token")),
			path:     "/coupons/app/",
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newServer(tc.sess, NewLoginRedirectMiddlewareBuilder("http://lms.local/login").Build())
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantLocation, recorder.Header().Get("Location"))
		})
	}
}

func TestCheckStaffMiddlewareBuilder(t *testing.T) {
	testCases := []struct {
		name        string
		sess        session.Session
		abortStatus int
		wantCode    int
	}{
		{
			name:     "未登录",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "非员工",
			sess:     session.NewMemorySession(test.NewUserClaims(9, "token")),
			wantCode: http.StatusForbidden,
		},
		{
			name:        "非员工返回404",
			sess:        session.NewMemorySession(test.NewUserClaims(9, "token")),
			abortStatus: http.StatusNotFound,
			wantCode:    http.StatusNotFound,
		},
		{
			name:     "员工",
			sess:     session.NewMemorySession(test.NewStaffClaims(1)),
			wantCode: http.StatusOK,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			builder := NewCheckStaffMiddlewareBuilder()
			if tc.abortStatus != 0 {
				builder = builder.AbortStatus(tc.abortStatus)
			}
			server := newServer(tc.sess, builder.Build())
			req := httptest.NewRequest(http.MethodGet, "/coupons/app/", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
