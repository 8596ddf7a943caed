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

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecommerce/internal/basket"
	"github.com/ecodeclub/ecommerce/internal/catalogue"
	"github.com/ecodeclub/ecommerce/internal/course"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/shopspring/decimal"
)

var (
	ErrCodeNotValid       = errors.New("兑换码无效")
	ErrCodeNotExist       = errors.New("兑换码不存在")
	ErrCodeExpired        = errors.New("兑换码已过期")
	ErrCourseInfo         = errors.New("获取课程信息失败")
	ErrProductUnavailable = errors.New("商品不可购买")
	ErrBasketNotFree      = errors.New("购物车总价不为 0")
	ErrOrderNotComplete   = errors.New("订单未完成")

	ErrInvalidCoupon       = errors.New("兑换券参数非法")
	ErrStockRecordNotFound = catalogue.ErrStockRecordNotFound
	ErrCodeExists          = voucher.ErrVoucherCodeExists
)

// Offer 兑换码对应的课程以及兑换后的价格
type Offer struct {
	Course   course.Course
	Code     string
	Price    decimal.Decimal
	Benefit  voucher.Benefit
	NewPrice decimal.Decimal
}

// Redemption 兑换失败时也会带上已经拿到的商品和购物车, 用于拼接提示信息
type Redemption struct {
	Product     catalogue.Product
	Basket      basket.Basket
	Order       order.Order
	RedirectURL string
}

type CreateCouponReq struct {
	Title          string
	ClientUID      int64
	StartAt        int64
	EndAt          int64
	StockRecordIDs []int64
	// 指定兑换码时 Quantity 只能是 1
	Code         string
	Usage        voucher.Usage
	Quantity     int64
	Price        decimal.Decimal
	BenefitType  voucher.BenefitType
	BenefitValue decimal.Decimal
	Category     string
}

func (r CreateCouponReq) validate() error {
	hundred := decimal.NewFromInt(100)
	switch {
	case r.Title == "":
		return fmt.Errorf("%w: 标题不能为空", ErrInvalidCoupon)
	case r.ClientUID <= 0:
		return fmt.Errorf("%w: 客户ID非法", ErrInvalidCoupon)
	case r.StartAt >= r.EndAt:
		return fmt.Errorf("%w: 生效时间必须早于失效时间", ErrInvalidCoupon)
	case len(r.StockRecordIDs) == 0:
		return fmt.Errorf("%w: 至少需要一个库存记录", ErrInvalidCoupon)
	case r.Quantity < 1:
		return fmt.Errorf("%w: 数量必须大于 0", ErrInvalidCoupon)
	case r.Code != "" && r.Quantity != 1:
		return fmt.Errorf("%w: 指定兑换码时数量只能为 1", ErrInvalidCoupon)
	case r.Price.IsNegative():
		return fmt.Errorf("%w: 价格不能为负数", ErrInvalidCoupon)
	case !r.BenefitType.Valid():
		return fmt.Errorf("%w: 优惠类型 %s", ErrInvalidCoupon, r.BenefitType)
	case r.BenefitValue.IsNegative():
		return fmt.Errorf("%w: 优惠值不能为负数", ErrInvalidCoupon)
	case r.BenefitType == voucher.BenefitTypePercentage && r.BenefitValue.GreaterThan(hundred):
		return fmt.Errorf("%w: 折扣比例不能超过 100", ErrInvalidCoupon)
	case r.Category == "":
		return fmt.Errorf("%w: 分类不能为空", ErrInvalidCoupon)
	}
	return nil
}

type CreateCouponResult struct {
	CouponID    int64
	OrderNumber string
	Codes       []string
}

//go:generate mockgen -source=./service.go -package=couponmocks -destination=../../mocks/coupon.mock.go Service
type Service interface {
	// GetOffer 兑换码无效时返回 ErrCodeNotValid
	GetOffer(ctx context.Context, code string, uid int64, accessToken string) (Offer, error)
	// Redeem 只有购物车总价为 0 时才会下单
	Redeem(ctx context.Context, code string, uid int64) (Redemption, error)
	CreateCoupon(ctx context.Context, req CreateCouponReq) (CreateCouponResult, error)
	ListCoupons(ctx context.Context, offset, limit int) ([]catalogue.Product, int64, error)
}

type service struct {
	catalogSvc catalogue.Service
	voucherSvc voucher.Service
	basketSvc  basket.Service
	orderSvc   order.Service
	courseSvc  course.Service
	logger     *elog.Component
}

func NewService(catalogSvc catalogue.Service,
	voucherSvc voucher.Service,
	basketSvc basket.Service,
	orderSvc order.Service,
	courseSvc course.Service) Service {
	return &service{
		catalogSvc: catalogSvc,
		voucherSvc: voucherSvc,
		basketSvc:  basketSvc,
		orderSvc:   orderSvc,
		courseSvc:  courseSvc,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) GetOffer(ctx context.Context, code string, uid int64, accessToken string) (Offer, error) {
	if code == "" {
		return Offer{}, ErrCodeNotValid
	}
	v, p, err := s.voucherSvc.GetVoucher(ctx, code)
	if errors.Is(err, voucher.ErrVoucherNotFound) {
		return Offer{}, fmt.Errorf("%w: code=%s", ErrCodeNotValid, code)
	}
	if err != nil {
		return Offer{}, err
	}
	if p.ID == 0 || !v.IsActive(time.Now()) {
		return Offer{}, fmt.Errorf("%w: code=%s", ErrCodeNotValid, code)
	}
	avail, msg, err := s.voucherSvc.IsAvailableToUser(ctx, v, uid)
	if err != nil {
		return Offer{}, err
	}
	if !avail {
		return Offer{}, fmt.Errorf("%w: code=%s %s", ErrCodeNotValid, code, msg)
	}

	c, err := s.courseSvc.Course(ctx, courseIDOf(p), accessToken)
	if err != nil {
		return Offer{}, fmt.Errorf("%w: %w", ErrCourseInfo, err)
	}
	info, err := s.catalogSvc.FetchForProduct(ctx, p.ID)
	if err != nil {
		return Offer{}, err
	}
	res := Offer{
		Course:   c,
		Code:     code,
		Price:    info.Price,
		NewPrice: info.Price,
	}
	if len(v.Offers) > 0 {
		res.Benefit = v.Offers[0].Benefit
		res.NewPrice = info.Price.Sub(res.Benefit.Discount(info.Price))
	}
	return res, nil
}

func courseIDOf(p catalogue.Product) string {
	if id := p.Attr(catalogue.AttrCourseKey); id != "" {
		return id
	}
	return p.CourseID
}

func (s *service) Redeem(ctx context.Context, code string, uid int64) (Redemption, error) {
	var res Redemption
	if code == "" {
		return res, ErrCodeNotExist
	}
	v, p, err := s.voucherSvc.GetVoucher(ctx, code)
	if errors.Is(err, voucher.ErrVoucherNotFound) {
		return res, fmt.Errorf("%w: code=%s", ErrCodeNotExist, code)
	}
	if err != nil {
		return res, err
	}
	res.Product = p
	if !v.IsActive(time.Now()) {
		return res, fmt.Errorf("%w: code=%s", ErrCodeExpired, code)
	}
	if p.ID == 0 {
		return res, fmt.Errorf("%w: 兑换券 %d 没有可兑换的商品", ErrProductUnavailable, v.ID)
	}
	info, err := s.catalogSvc.FetchForProduct(ctx, p.ID)
	if err != nil {
		return res, err
	}
	if !info.Availability.IsAvailableToBuy {
		return res, fmt.Errorf("%w: product=%d %s", ErrProductUnavailable, p.ID, info.Availability.Message)
	}

	b, err := s.basketSvc.Prepare(ctx, basket.PrepareReq{
		UID:       uid,
		ProductID: p.ID,
		Quantity:  1,
		Voucher:   &v,
	})
	if err != nil {
		return res, fmt.Errorf("准备购物车失败: %w", err)
	}
	res.Basket = b
	if !b.TotalExclTax().IsZero() {
		return res, fmt.Errorf("%w: basket=%d total=%s", ErrBasketNotFree, b.ID, b.TotalExclTax().StringFixed(2))
	}

	b, err = s.basketSvc.Freeze(ctx, b.ID)
	if err != nil {
		return res, fmt.Errorf("冻结购物车失败: %w", err)
	}
	res.Basket = b
	meta := s.orderSvc.GetOrderMetadata(b)
	s.logger.Info(fmt.Sprintf("Preparing to place order [%s] for the contents of basket [%d].", meta.Number, b.ID))
	o, err := s.orderSvc.PlaceOrder(ctx, order.PlaceOrderReq{
		Metadata: meta,
		Basket:   b,
		UserID:   uid,
	})
	if err != nil {
		return res, fmt.Errorf("%w: %w", ErrOrderNotComplete, err)
	}
	res.Order = o
	if !o.IsComplete() {
		return res, fmt.Errorf("%w: order=%d", ErrOrderNotComplete, o.ID)
	}
	res.RedirectURL = s.courseSvc.LMSURL("")
	return res, nil
}

func (s *service) CreateCoupon(ctx context.Context, req CreateCouponReq) (CreateCouponResult, error) {
	if err := req.validate(); err != nil {
		return CreateCouponResult{}, err
	}
	srs, err := s.catalogSvc.FindStockRecordsByIDs(ctx, req.StockRecordIDs)
	if err != nil {
		return CreateCouponResult{}, err
	}
	first, productIDs, err := s.seatProducts(req.StockRecordIDs, srs)
	if err != nil {
		return CreateCouponResult{}, err
	}

	if err = s.checkCodeFree(ctx, req.Code); err != nil {
		return CreateCouponResult{}, err
	}

	catalog, created, err := s.catalogSvc.GetOrCreateCatalog(ctx, req.Title, first.PartnerID, req.StockRecordIDs)
	if err != nil {
		return CreateCouponResult{}, fmt.Errorf("创建目录失败: %w", err)
	}
	if !created {
		s.logger.Info("复用已有目录", elog.Int64("catalogId", catalog.ID), elog.String("name", catalog.Name))
	}

	p := catalogue.Product{
		Structure: catalogue.StructureStandalone,
		Title:     req.Title,
		ClassName: catalogue.ClassCoupon,
		UPC:       catalogue.GenerateUPC(first.PartnerID, req.Title, catalog.Name),
		Attributes: map[string]string{
			catalogue.AttrCouponCategory: req.Category,
		},
	}
	p.ID, err = s.catalogSvc.SaveProduct(ctx, p)
	if err != nil {
		return CreateCouponResult{}, fmt.Errorf("创建兑换券商品失败: %w", err)
	}
	_, err = s.catalogSvc.SaveStockRecord(ctx, catalogue.StockRecord{
		ProductID:    p.ID,
		PartnerID:    first.PartnerID,
		PartnerSKU:   catalogue.GenerateSKU(p, first.PartnerID, catalog.Name),
		PriceExclTax: decimal.NewNullDecimal(req.Price),
	}, catalog.Name)
	if err != nil {
		s.rollbackCoupon(ctx, p.ID, nil)
		return CreateCouponResult{}, fmt.Errorf("创建兑换券库存记录失败: %w", err)
	}

	vs, err := s.voucherSvc.CreateVouchers(ctx, voucher.VoucherBatch{
		Name:         req.Title,
		Code:         req.Code,
		Usage:        req.Usage,
		StartAt:      req.StartAt,
		EndAt:        req.EndAt,
		Quantity:     req.Quantity,
		BenefitType:  req.BenefitType,
		BenefitValue: req.BenefitValue,
		CatalogID:    catalog.ID,
		ProductIDs:   productIDs,
	})
	if err != nil {
		s.rollbackCoupon(ctx, p.ID, nil)
		return CreateCouponResult{}, fmt.Errorf("创建兑换码失败: %w", err)
	}

	o, err := s.placeClientOrder(ctx, req.ClientUID, p.ID)
	if err != nil {
		s.rollbackCoupon(ctx, p.ID, vs)
		return CreateCouponResult{}, err
	}
	return CreateCouponResult{
		CouponID:    p.ID,
		OrderNumber: o.Number,
		Codes: slice.Map(vs, func(idx int, src voucher.Voucher) string {
			return src.Code
		}),
	}, nil
}

// checkCodeFree 指定的兑换码必须还没有被占用, 在写入任何数据之前检查
func (s *service) checkCodeFree(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	_, err := s.voucherSvc.FindByCode(ctx, code)
	switch {
	case err == nil:
		return fmt.Errorf("%w: code=%s", ErrCodeExists, code)
	case errors.Is(err, voucher.ErrVoucherNotFound):
		return nil
	default:
		return fmt.Errorf("查找兑换码失败: %w", err)
	}
}

// rollbackCoupon 创建失败时删掉已经写入的兑换码和兑换券商品
func (s *service) rollbackCoupon(ctx context.Context, productID int64, vs []voucher.Voucher) {
	if len(vs) > 0 {
		if err := s.voucherSvc.DeleteVouchers(ctx, vs); err != nil {
			s.logger.Error("回滚兑换码失败", elog.FieldErr(err), elog.Int64("productId", productID))
		}
	}
	if err := s.catalogSvc.DeleteProduct(ctx, productID); err != nil {
		s.logger.Error("回滚兑换券商品失败", elog.FieldErr(err), elog.Int64("productId", productID))
	}
}

// seatProducts 按请求顺序返回第一个库存记录和去重后的商品ID
func (s *service) seatProducts(ids []int64, srs []catalogue.StockRecord) (catalogue.StockRecord, []int64, error) {
	byID := make(map[int64]catalogue.StockRecord, len(srs))
	for _, sr := range srs {
		byID[sr.ID] = sr
	}
	productIDs := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		sr, ok := byID[id]
		if !ok {
			return catalogue.StockRecord{}, nil, fmt.Errorf("%w: id=%d", ErrStockRecordNotFound, id)
		}
		if _, ok = seen[sr.ProductID]; ok {
			continue
		}
		seen[sr.ProductID] = struct{}{}
		productIDs = append(productIDs, sr.ProductID)
	}
	return byID[ids[0]], productIDs, nil
}

// placeClientOrder 为购买兑换券的客户下单, 发票由订单事件异步生成
func (s *service) placeClientOrder(ctx context.Context, uid, productID int64) (order.Order, error) {
	b, err := s.basketSvc.Prepare(ctx, basket.PrepareReq{
		UID:       uid,
		ProductID: productID,
		Quantity:  1,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("准备客户购物车失败: %w", err)
	}
	b, err = s.basketSvc.Freeze(ctx, b.ID)
	if err != nil {
		return order.Order{}, fmt.Errorf("冻结客户购物车失败: %w", err)
	}
	o, err := s.orderSvc.PlaceOrder(ctx, order.PlaceOrderReq{
		Metadata: s.orderSvc.GetOrderMetadata(b),
		Basket:   b,
		UserID:   uid,
		Source:   order.SourceInvoice,
	})
	if err != nil {
		return order.Order{}, fmt.Errorf("客户下单失败: %w", err)
	}
	return o, nil
}

func (s *service) ListCoupons(ctx context.Context, offset, limit int) ([]catalogue.Product, int64, error) {
	return s.catalogSvc.ListProducts(ctx, catalogue.ClassCoupon, offset, limit)
}
