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

package repository

import (
	"context"

	"github.com/ecodeclub/ecommerce/internal/invoice/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/invoice/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/order"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=./mocks/repository.mock.go InvoiceRepository
type InvoiceRepository interface {
	Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error)
	// FindByOrder 发票只存订单ID, 订单由调用方查好传进来
	FindByOrder(ctx context.Context, o order.Order) (domain.Invoice, error)
}

type invoiceRepository struct {
	dao dao.InvoiceDAO
}

func NewInvoiceRepository(d dao.InvoiceDAO) InvoiceRepository {
	return &invoiceRepository{dao: d}
}

func (r *invoiceRepository) Create(ctx context.Context, inv domain.Invoice) (domain.Invoice, error) {
	res, err := r.dao.Create(ctx, dao.Invoice{
		OrderId:     inv.Order.ID,
		OrderNumber: inv.Order.Number,
		UserId:      inv.Order.UserID,
		State:       string(inv.State),
	})
	if err != nil {
		return domain.Invoice{}, err
	}
	return r.toDomain(res, inv.Order), nil
}

func (r *invoiceRepository) FindByOrder(ctx context.Context, o order.Order) (domain.Invoice, error) {
	res, err := r.dao.FindByOrderID(ctx, o.ID)
	if err != nil {
		return domain.Invoice{}, err
	}
	return r.toDomain(res, o), nil
}

func (r *invoiceRepository) toDomain(inv dao.Invoice, o order.Order) domain.Invoice {
	return domain.Invoice{
		ID:    inv.Id,
		Order: o,
		State: domain.State(inv.State),
		Ctime: inv.Ctime,
		Utime: inv.Utime,
	}
}
