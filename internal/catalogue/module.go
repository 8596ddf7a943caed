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

package catalogue

import (
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/service"
	"github.com/ecodeclub/ecommerce/internal/catalogue/internal/web"
)

type (
	AdminHandler     = web.AdminHandler
	Service          = service.Service
	Product          = domain.Product
	ProductClass     = domain.ProductClass
	Partner          = domain.Partner
	StockRecord      = domain.StockRecord
	Catalog          = domain.Catalog
	PurchaseInfo     = domain.PurchaseInfo
	Availability     = domain.Availability
	Structure        = domain.Structure
	ProductAttribute = domain.ProductAttribute
)

const (
	ClassSeat   = domain.ClassSeat
	ClassCoupon = domain.ClassCoupon

	AttrCouponCategory         = domain.AttrCouponCategory
	AttrCertificateType        = domain.AttrCertificateType
	AttrCourseKey              = domain.AttrCourseKey
	AttrIDVerificationRequired = domain.AttrIDVerificationRequired
	AttrCreditProvider         = domain.AttrCreditProvider

	StructureStandalone = domain.StructureStandalone
)

var (
	ErrProductNotFound     = service.ErrProductNotFound
	ErrStockRecordNotFound = service.ErrStockRecordNotFound
	ErrAttributeRequired   = service.ErrAttributeRequired

	GenerateSKU = domain.GenerateSKU
	GenerateUPC = domain.GenerateUPC
)

type Module struct {
	Svc      Service
	AdminHdl *AdminHandler
}
