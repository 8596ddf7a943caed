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
	"time"

	"github.com/shopspring/decimal"
)

type Usage uint8

func (u Usage) ToUint8() uint8 {
	return uint8(u)
}

func (u Usage) String() string {
	switch u {
	case UsageSingleUse:
		return "Single use"
	case UsageMultiUse:
		return "Multi-use"
	case UsageOncePerCustomer:
		return "Once per customer"
	default:
		return "Unknown"
	}
}

const (
	UsageSingleUse       Usage = 1 // 只能使用一次
	UsageMultiUse        Usage = 2 // 不限次数
	UsageOncePerCustomer Usage = 3 // 每个用户一次
)

// UsageFromString 兼容前端传过来的展示名称
func UsageFromString(s string) (Usage, bool) {
	for _, u := range []Usage{UsageSingleUse, UsageMultiUse, UsageOncePerCustomer} {
		if u.String() == s {
			return u, true
		}
	}
	return 0, false
}

const (
	MsgAlreadyUsed        = "This voucher has already been used"
	MsgAlreadyUsedByUser  = "You have already used this voucher in a previous order"
	MsgAvailableToUser    = ""
	MsgVoucherNotActive   = "This voucher is not active"
	MsgVoucherUnavailable = "This voucher is not available"
)

type Voucher struct {
	ID                 int64
	Name               string
	Code               string
	Usage              Usage
	StartAt            int64
	EndAt              int64
	NumBasketAdditions int64
	NumOrders          int64
	TotalDiscount      decimal.Decimal
	Offers             []Offer
}

// IsActive 当前时间是否在有效期内, 包含两端
func (v Voucher) IsActive(now time.Time) bool {
	ms := now.UnixMilli()
	return v.StartAt <= ms && ms <= v.EndAt
}

// IsAvailableToUser userApplications 是该用户的使用记录数, totalApplications 是全部使用记录数
func (v Voucher) IsAvailableToUser(userApplications, totalApplications int64) (bool, string) {
	switch v.Usage {
	case UsageSingleUse:
		if totalApplications > 0 {
			return false, MsgAlreadyUsed
		}
	case UsageOncePerCustomer:
		if userApplications > 0 {
			return false, MsgAlreadyUsedByUser
		}
	case UsageMultiUse:
	default:
		return false, MsgVoucherUnavailable
	}
	return true, MsgAvailableToUser
}

// FirstProductID 第一个优惠的适用范围中的第一个商品
func (v Voucher) FirstProductID() (int64, bool) {
	if len(v.Offers) == 0 {
		return 0, false
	}
	ids := v.Offers[0].Benefit.Range.ProductIDs
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

type Application struct {
	ID        int64
	VoucherID int64
	UserID    int64
	OrderID   int64
	Discount  decimal.Decimal
	Ctime     int64
}
