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
	"strconv"
	"time"
)

var (
	ErrAttributeRequired = errors.New("缺少必填的商品属性")
	ErrAttributeInvalid  = errors.New("商品属性取值非法")
)

const (
	ClassSeat   = "Seat"
	ClassCoupon = "Coupon"

	AttrCouponCategory         = "coupon_category"
	AttrCertificateType        = "certificate_type"
	AttrCourseKey              = "course_key"
	AttrIDVerificationRequired = "id_verification_required"
	AttrCreditProvider         = "credit_provider"
)

type Structure string

const (
	StructureStandalone Structure = "standalone"
	StructureParent     Structure = "parent"
	StructureChild      Structure = "child"
)

type AttributeType string

const (
	AttributeTypeText    AttributeType = "text"
	AttributeTypeBoolean AttributeType = "boolean"
	AttributeTypeInteger AttributeType = "integer"
	AttributeTypeDate    AttributeType = "date"
)

type ProductAttribute struct {
	ID             int64
	ProductClassID int64
	Name           string
	Code           string
	Type           AttributeType
	Required       bool
}

type ProductClass struct {
	ID               int64
	Name             string
	Slug             string
	RequiresShipping bool
	TrackStock       bool
	Attributes       []ProductAttribute
}

// Validate 校验商品属性是否满足该类别的属性定义
func (c ProductClass) Validate(attrs map[string]string) error {
	for _, a := range c.Attributes {
		val, ok := attrs[a.Code]
		if !ok || val == "" {
			if a.Required {
				return fmt.Errorf("%w: %s", ErrAttributeRequired, a.Code)
			}
			continue
		}
		if err := a.check(val); err != nil {
			return err
		}
	}
	return nil
}

func (a ProductAttribute) check(val string) error {
	var err error
	switch a.Type {
	case AttributeTypeBoolean:
		_, err = strconv.ParseBool(val)
	case AttributeTypeInteger:
		_, err = strconv.ParseInt(val, 10, 64)
	case AttributeTypeDate:
		_, err = time.Parse(time.DateOnly, val)
	}
	if err != nil {
		return fmt.Errorf("%w: %s=%s", ErrAttributeInvalid, a.Code, val)
	}
	return nil
}

type Product struct {
	ID          int64
	ParentID    int64
	Structure   Structure
	UPC         string
	Title       string
	Description string
	ClassName   string
	CourseID    string
	// 过期时间, 毫秒, 0 表示永不过期
	ExpiresAt    int64
	Attributes   map[string]string
	StockRecords []StockRecord
	Ctime        int64
	Utime        int64
}

// Attr 取不到的时候返回空字符串
func (p Product) Attr(code string) string {
	if p.Attributes == nil {
		return ""
	}
	return p.Attributes[code]
}

func (p Product) IsExpired(now time.Time) bool {
	return p.ExpiresAt > 0 && p.ExpiresAt <= now.UnixMilli()
}

func (p Product) String() string {
	return p.Title
}
