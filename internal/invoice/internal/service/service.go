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

	"github.com/ecodeclub/ecommerce/internal/invoice/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/invoice/internal/repository"
	"github.com/ecodeclub/ecommerce/internal/invoice/internal/repository/dao"
	"github.com/ecodeclub/ecommerce/internal/order"
)

var ErrInvoiceNotFound = errors.New("发票不存在")

//go:generate mockgen -source=./service.go -package=invoicemocks -destination=../../mocks/invoice.mock.go Service
type Service interface {
	// CreateInvoice 幂等, 同一订单只会有一张发票
	CreateInvoice(ctx context.Context, orderNumber string) (domain.Invoice, error)
	FindUserInvoice(ctx context.Context, uid int64, orderNumber string) (domain.Invoice, error)
}

type service struct {
	repo     repository.InvoiceRepository
	orderSvc order.Service
}

func NewService(repo repository.InvoiceRepository, orderSvc order.Service) Service {
	return &service{repo: repo, orderSvc: orderSvc}
}

func (s *service) CreateInvoice(ctx context.Context, orderNumber string) (domain.Invoice, error) {
	o, err := s.orderSvc.FindOrderByNumber(ctx, orderNumber)
	if err != nil {
		return domain.Invoice{}, fmt.Errorf("查找订单失败 number=%s: %w", orderNumber, err)
	}
	return s.repo.Create(ctx, domain.Invoice{
		Order: o,
		State: domain.StateOf(o),
	})
}

func (s *service) FindUserInvoice(ctx context.Context, uid int64, orderNumber string) (domain.Invoice, error) {
	o, err := s.orderSvc.FindUserOrderByNumber(ctx, uid, orderNumber)
	if errors.Is(err, order.ErrOrderNotFound) {
		return domain.Invoice{}, fmt.Errorf("%w: %w", ErrInvoiceNotFound, err)
	}
	if err != nil {
		return domain.Invoice{}, err
	}
	inv, err := s.repo.FindByOrder(ctx, o)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Invoice{}, fmt.Errorf("%w: %w", ErrInvoiceNotFound, err)
	}
	return inv, err
}
