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
	"errors"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/service"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

const defaultPageSize = 50

// AdminHandler 只挂在 admin 服务器上, 登录和员工校验由中间件负责
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	// 例如 /api/v2/products/?product_class=Coupon
	server.GET("/api/v2/products/", ginx.B[ListProductsReq](h.ListProducts))

	g := server.Group("/catalogue")
	g.POST("/partner/save", ginx.B[Partner](h.CreatePartner))
	g.POST("/product/save", ginx.B[Product](h.SaveProduct))
	g.POST("/stockrecord/save", ginx.B[SaveStockRecordReq](h.SaveStockRecord))
}

func (h *AdminHandler) ListProducts(ctx *ginx.Context, req ListProductsReq) (ginx.Result, error) {
	if req.Limit <= 0 {
		req.Limit = defaultPageSize
	}
	ps, total, err := h.svc.ListProducts(ctx.Request.Context(), req.ProductClass, req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("获取商品列表失败: %w", err)
	}
	return ginx.Result{
		Data: ListProductsResp{
			Total: total,
			Products: slice.Map(ps, func(idx int, src domain.Product) Product {
				return newProduct(src)
			}),
		},
	}, nil
}

func (h *AdminHandler) CreatePartner(ctx *ginx.Context, req Partner) (ginx.Result, error) {
	id, err := h.svc.CreatePartner(ctx.Request.Context(), domain.Partner{
		Name:      req.Name,
		ShortCode: req.ShortCode,
	})
	switch {
	case errors.Is(err, service.ErrPartnerShortCodeExists),
		errors.Is(err, service.ErrPartnerShortCodeTooLong):
		return partnerShortCodeInvalidResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("创建合作方失败: %w", err)
	}
	return ginx.Result{Data: IDResp{ID: id}}, nil
}

func (h *AdminHandler) SaveProduct(ctx *ginx.Context, req Product) (ginx.Result, error) {
	id, err := h.svc.SaveProduct(ctx.Request.Context(), req.toDomain())
	switch {
	case errors.Is(err, service.ErrProductClassNotFound):
		return productClassNotFoundResult, err
	case errors.Is(err, service.ErrAttributeRequired),
		errors.Is(err, service.ErrAttributeInvalid):
		return attributeInvalidResult, err
	case err != nil:
		return systemErrorResult, fmt.Errorf("保存商品失败: %w", err)
	}
	return ginx.Result{Data: IDResp{ID: id}}, nil
}

func (h *AdminHandler) SaveStockRecord(ctx *ginx.Context, req SaveStockRecordReq) (ginx.Result, error) {
	sr, err := req.StockRecord.toDomain()
	if err != nil {
		return systemErrorResult, fmt.Errorf("价格格式非法: %w", err)
	}
	id, err := h.svc.SaveStockRecord(ctx.Request.Context(), sr, req.CatalogName)
	if errors.Is(err, service.ErrProductNotFound) {
		return productNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存库存记录失败: %w", err)
	}
	return ginx.Result{Data: IDResp{ID: id}}, nil
}
