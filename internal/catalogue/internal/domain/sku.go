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
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
)

const (
	skuLength = 7
	upcLength = 10
)

// GenerateSKU 为商品和合作方的组合生成 SKU, 例如 76E4E71
// 目前只区分兑换券和席位两种类别
func GenerateSKU(p Product, partnerID int64, catalogName string) string {
	var parts []string
	if p.ClassName == ClassCoupon {
		parts = []string{
			strconv.FormatInt(p.ID, 10),
			catalogName,
			strconv.FormatInt(partnerID, 10),
		}
	} else {
		parts = []string{
			p.Attr(AttrCertificateType),
			p.Attr(AttrCourseKey),
			boolAttr(p.Attr(AttrIDVerificationRequired)),
			p.Attr(AttrCreditProvider),
			strconv.FormatInt(partnerID, 10),
		}
	}
	return digest(strings.Join(parts, " "), skuLength)
}

// boolAttr 统一布尔属性的写法, "1" 和 "True" 都按 "true" 算, 不是布尔值的保持原样
func boolAttr(v string) string {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return v
	}
	return strconv.FormatBool(b)
}

// GenerateUPC 根据标题、目录和合作方为兑换券商品生成 UPC
func GenerateUPC(partnerID int64, title string, catalogName string) string {
	return digest(strings.Join([]string{
		title,
		catalogName,
		strconv.FormatInt(partnerID, 10),
	}, " "), upcLength)
}

func digest(raw string, n int) string {
	sum := md5.Sum([]byte(strings.ToLower(raw)))
	h := hex.EncodeToString(sum[:])
	return strings.ToUpper(h[len(h)-n:])
}
