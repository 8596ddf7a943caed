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

package basket

import (
	"github.com/ecodeclub/ecommerce/internal/basket/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/job"
	"github.com/ecodeclub/ecommerce/internal/basket/internal/service"
)

type (
	Service                     = service.Service
	PrepareReq                  = service.PrepareReq
	Basket                      = domain.Basket
	Line                        = domain.Line
	Discount                    = domain.Discount
	Status                      = domain.Status
	ThawTimeoutFrozenBasketsJob = job.ThawTimeoutFrozenBasketsJob
)

const (
	StatusOpen      = domain.StatusOpen
	StatusMerged    = domain.StatusMerged
	StatusSaved     = domain.StatusSaved
	StatusFrozen    = domain.StatusFrozen
	StatusSubmitted = domain.StatusSubmitted
)

var (
	ErrBasketNotFound = service.ErrBasketNotFound
	ErrIllegalStatus  = service.ErrIllegalStatus
	ErrNoStockRecord  = service.ErrNoStockRecord
	ErrBasketBusy     = service.ErrBasketBusy
)

type Module struct {
	Svc     Service
	ThawJob *ThawTimeoutFrozenBasketsJob
}
