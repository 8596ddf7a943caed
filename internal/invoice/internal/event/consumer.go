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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/ecommerce/internal/invoice/internal/service"
	"github.com/ecodeclub/ecommerce/internal/order"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// OrderEventConsumer 每个新订单开一张发票
type OrderEventConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderEventConsumer(svc service.Service, q mq.MQ) (*OrderEventConsumer, error) {
	const groupID = "invoice"
	consumer, err := q.Consumer(order.OrderEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderEventConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费订单事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt order.OrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	inv, err := c.svc.CreateInvoice(ctx, evt.OrderNumber)
	if err != nil {
		c.logger.Warn("创建发票失败",
			elog.FieldErr(err),
			elog.String("order_number", evt.OrderNumber),
			elog.Int64("user_id", evt.UserID))
		return err
	}
	c.logger.Info("创建发票成功", elog.String("invoice", inv.String()))
	return nil
}
