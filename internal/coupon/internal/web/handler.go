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

package web

import (
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ecodeclub/ecommerce/internal/coupon/internal/service"
	"github.com/ecodeclub/ecommerce/internal/pkg/middleware"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// AccessTokenClaimKey 登录时写入的 LMS OAuth token
const AccessTokenClaimKey = "accessToken"

const (
	msgCodeNotValid     = "Code not valid."
	msgCodeNotExist     = "Code does not exist."
	msgCodeExpired      = "Code expired."
	msgRedeemFailed     = "Error when trying to redeem code."
	msgInternalError    = "Internal server error."
	fmtCourseInfoFailed = "Could not get course information. [%s]"
	fmtProductNotAvail  = "Product [%s] not available for purchase."
	fmtBasketNotFree    = "Basket total not $0, current value = $%s."
)

//go:embed static/coupon_app.html
var appPage []byte

var _ ginx.Handler = &Handler{}

// Handler 兑换相关的页面和接口, 未登录时跳转登录页而不是返回 401
type Handler struct {
	svc      service.Service
	loginURL string
	logger   *elog.Component
}

func NewHandler(svc service.Service, loginURL string) *Handler {
	return &Handler{
		svc:      svc,
		loginURL: loginURL,
		logger:   elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/coupons", middleware.NewLoginRedirectMiddlewareBuilder(h.loginURL).Build())
	staffOnly := middleware.NewCheckStaffMiddlewareBuilder().AbortStatus(http.StatusNotFound).Build()
	g.GET("/app/*path", staffOnly, h.App)
	g.GET("/offer/", h.Offer)
	g.GET("/redeem/", h.Redeem)
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) App(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", appPage)
}

func (h *Handler) Offer(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req CodeReq
	if err = ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusNotAcceptable, gin.H{"error": msgCodeNotValid})
		return
	}
	claims := sess.Claims()
	token := claims.Get(AccessTokenClaimKey).StringOrDefault("")
	offer, err := h.svc.GetOffer(ctx.Request.Context(), req.Code, claims.Uid, token)
	switch {
	case errors.Is(err, service.ErrCodeNotValid):
		h.logger.Info("兑换码无效", elog.FieldErr(err), elog.Int64("uid", claims.Uid))
		ctx.JSON(http.StatusNotAcceptable, gin.H{"error": msgCodeNotValid})
	case errors.Is(err, service.ErrCourseInfo):
		h.logger.Error("Could not get course information.", elog.FieldErr(err), elog.String("code", req.Code))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf(fmtCourseInfoFailed, courseErrDetail(err))})
	case err != nil:
		h.logger.Error("获取兑换信息失败", elog.FieldErr(err), elog.String("code", req.Code))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgInternalError})
	default:
		ctx.JSON(http.StatusOK, newOffer(offer))
	}
}

func (h *Handler) Redeem(ctx *gin.Context) {
	sess, err := session.Get(&ginx.Context{Context: ctx})
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req CodeReq
	if err = ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": msgCodeNotExist})
		return
	}
	uid := sess.Claims().Uid
	res, err := h.svc.Redeem(ctx.Request.Context(), req.Code, uid)
	if err == nil {
		ctx.Redirect(http.StatusFound, res.RedirectURL)
		return
	}
	h.logger.Error("兑换失败", elog.FieldErr(err), elog.String("code", req.Code), elog.Int64("uid", uid))
	switch {
	case errors.Is(err, service.ErrCodeNotExist):
		ctx.JSON(http.StatusNotFound, gin.H{"error": msgCodeNotExist})
	case errors.Is(err, service.ErrCodeExpired):
		ctx.JSON(http.StatusNotAcceptable, gin.H{"error": msgCodeExpired})
	case errors.Is(err, service.ErrProductUnavailable):
		ctx.JSON(http.StatusNotAcceptable, gin.H{"error": fmt.Sprintf(fmtProductNotAvail, res.Product)})
	case errors.Is(err, service.ErrBasketNotFree):
		ctx.JSON(http.StatusNotAcceptable, gin.H{"error": fmt.Sprintf(fmtBasketNotFree, res.Basket.TotalExclTax().StringFixed(2))})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": msgRedeemFailed})
	}
}

// courseErrDetail 去掉外层的 ErrCourseInfo, 只保留 LMS 返回的错误
func courseErrDetail(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrCourseInfo.Error()+": ")
}
