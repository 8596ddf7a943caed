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

package domain

import (
	"errors"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/voucher"
	"github.com/shopspring/decimal"
)

var ErrIllegalStatus = errors.New("购物车状态非法")

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

func (s Status) String() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusMerged:
		return "Merged"
	case StatusSaved:
		return "Saved"
	case StatusFrozen:
		return "Frozen"
	case StatusSubmitted:
		return "Submitted"
	}
	return "Unknown"
}

const (
	StatusOpen      Status = 1 // 可以编辑
	StatusMerged    Status = 2 // 已合并到其他购物车
	StatusSaved     Status = 3 // 稍后购买
	StatusFrozen    Status = 4 // 下单中, 不能编辑
	StatusSubmitted Status = 5 // 已生成订单
)

const DefaultCurrency = "USD"

type Basket struct {
	ID          int64
	OwnerID     int64
	Status      Status
	Lines       []Line
	VoucherIDs  []int64
	Discounts   []Discount
	FrozenAt    int64
	SubmittedAt int64
	Ctime       int64
	Utime       int64
}

type Line struct {
	ID            int64
	ProductID     int64
	StockRecordID int64
	Quantity      int64
	PriceCurrency string
	PriceExclTax  decimal.Decimal
	// 不计税, 与 PriceExclTax 一致
	PriceInclTax decimal.Decimal
}

func (l Line) LineTotal() decimal.Decimal {
	return l.PriceExclTax.Mul(decimal.NewFromInt(l.Quantity))
}

type Discount struct {
	VoucherID   int64
	VoucherCode string
	OfferID     int64
	// 优惠落在哪个商品上
	ProductID   int64
	Amount      decimal.Decimal
	Description string
}

func (b Basket) IsEmpty() bool {
	return len(b.Lines) == 0
}

func (b Basket) Currency() string {
	if len(b.Lines) == 0 || b.Lines[0].PriceCurrency == "" {
		return DefaultCurrency
	}
	return b.Lines[0].PriceCurrency
}

func (b Basket) TotalBeforeDiscounts() decimal.Decimal {
	total := decimal.Zero
	for _, l := range b.Lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

func (b Basket) TotalDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, d := range b.Discounts {
		total = total.Add(d.Amount)
	}
	return total
}

// TotalExclTax 优惠后的总价, 不会小于 0
func (b Basket) TotalExclTax() decimal.Decimal {
	total := b.TotalBeforeDiscounts().Sub(b.TotalDiscount())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

func (b Basket) TotalInclTax() decimal.Decimal {
	return b.TotalExclTax()
}

func (b Basket) IsFree() bool {
	return b.TotalExclTax().IsZero()
}

func (b Basket) CanBeEdited() bool {
	return b.Status == StatusOpen
}

func (b *Basket) Freeze(now int64) error {
	if b.Status != StatusOpen {
		return fmt.Errorf("%w: 无法冻结 %s 状态的购物车 %d", ErrIllegalStatus, b.Status, b.ID)
	}
	b.Status = StatusFrozen
	b.FrozenAt = now
	return nil
}

// Thaw 冻结的购物车恢复为可编辑, 本来就可编辑的不做处理
func (b *Basket) Thaw() error {
	switch b.Status {
	case StatusOpen:
		return nil
	case StatusFrozen:
		b.Status = StatusOpen
		b.FrozenAt = 0
		return nil
	}
	return fmt.Errorf("%w: 无法解冻 %s 状态的购物车 %d", ErrIllegalStatus, b.Status, b.ID)
}

func (b *Basket) Submit(now int64) error {
	if b.Status != StatusFrozen {
		return fmt.Errorf("%w: 无法提交 %s 状态的购物车 %d", ErrIllegalStatus, b.Status, b.ID)
	}
	b.Status = StatusSubmitted
	b.SubmittedAt = now
	return nil
}

// Merge 把 other 的商品合并进来, other 变为已合并
func (b *Basket) Merge(other *Basket) error {
	if !b.CanBeEdited() || !other.CanBeEdited() {
		return fmt.Errorf("%w: 合并购物车 %d <- %d", ErrIllegalStatus, b.ID, other.ID)
	}
	for _, l := range other.Lines {
		b.addLine(l)
	}
	for _, id := range other.VoucherIDs {
		if !b.ContainsVoucher(id) {
			b.VoucherIDs = append(b.VoucherIDs, id)
		}
	}
	other.Lines = nil
	other.VoucherIDs = nil
	other.Discounts = nil
	other.Status = StatusMerged
	return nil
}

func (b *Basket) Flush() error {
	if !b.CanBeEdited() {
		return fmt.Errorf("%w: 无法清空 %s 状态的购物车 %d", ErrIllegalStatus, b.Status, b.ID)
	}
	b.Lines = nil
	b.Discounts = nil
	return nil
}

func (b *Basket) AddProduct(l Line) error {
	if !b.CanBeEdited() {
		return fmt.Errorf("%w: 无法向 %s 状态的购物车 %d 添加商品", ErrIllegalStatus, b.Status, b.ID)
	}
	if l.Quantity <= 0 {
		l.Quantity = 1
	}
	l.PriceInclTax = l.PriceExclTax
	b.addLine(l)
	return nil
}

// 同一个库存记录合并为一行
func (b *Basket) addLine(l Line) {
	for i := range b.Lines {
		if b.Lines[i].ProductID == l.ProductID && b.Lines[i].StockRecordID == l.StockRecordID {
			b.Lines[i].Quantity += l.Quantity
			return
		}
	}
	l.ID = 0
	b.Lines = append(b.Lines, l)
}

func (b Basket) ContainsVoucher(id int64) bool {
	for _, vid := range b.VoucherIDs {
		if vid == id {
			return true
		}
	}
	return false
}

func (b *Basket) AddVoucher(id int64) {
	if !b.ContainsVoucher(id) {
		b.VoucherIDs = append(b.VoucherIDs, id)
	}
}

func (b *Basket) RemoveVoucher(id int64) {
	res := b.VoucherIDs[:0]
	for _, vid := range b.VoucherIDs {
		if vid != id {
			res = append(res, vid)
		}
	}
	b.VoucherIDs = res
	b.removeDiscountsOf(id)
}

func (b *Basket) RemoveAllVouchers() []int64 {
	removed := b.VoucherIDs
	b.VoucherIDs = nil
	b.Discounts = nil
	return removed
}

func (b *Basket) ResetOfferApplications() {
	b.Discounts = nil
}

func (b *Basket) removeDiscountsOf(voucherID int64) {
	res := b.Discounts[:0]
	for _, d := range b.Discounts {
		if d.VoucherID != voucherID {
			res = append(res, d)
		}
	}
	b.Discounts = res
}

// ApplyVoucher 按优先级应用兑换券的优惠, 每个商品只享受一次优惠.
// 返回是否产生了来自该兑换券的优惠
func (b *Basket) ApplyVoucher(v voucher.Voucher) bool {
	discounted := make(map[int64]struct{}, len(b.Lines))
	for _, d := range b.Discounts {
		discounted[d.ProductID] = struct{}{}
	}
	applied := false
	for _, o := range v.Offers {
		for _, l := range b.Lines {
			if _, ok := discounted[l.ProductID]; ok {
				continue
			}
			if !o.Benefit.Range.Contains(l.ProductID) {
				continue
			}
			amount := o.Benefit.Discount(l.PriceExclTax).Mul(decimal.NewFromInt(l.Quantity))
			if !amount.IsPositive() {
				continue
			}
			discounted[l.ProductID] = struct{}{}
			applied = true
			b.Discounts = append(b.Discounts, Discount{
				VoucherID:   v.ID,
				VoucherCode: v.Code,
				OfferID:     o.ID,
				ProductID:   l.ProductID,
				Amount:      amount,
				Description: o.Benefit.Description(),
			})
		}
	}
	return applied
}

func (b Basket) HasDiscountFrom(voucherID int64) bool {
	for _, d := range b.Discounts {
		if d.VoucherID == voucherID {
			return true
		}
	}
	return false
}
