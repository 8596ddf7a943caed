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

package job

import (
	"context"
	"time"

	"github.com/ecodeclub/ecommerce/internal/order/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// CloseExpiredOrdersJob 超时未支付的订单改为已取消
type CloseExpiredOrdersJob struct {
	svc       service.Service
	expire    time.Duration
	batchSize int
	logger    *elog.Component
}

func NewCloseExpiredOrdersJob(svc service.Service, expire time.Duration, batchSize int) *CloseExpiredOrdersJob {
	return &CloseExpiredOrdersJob{
		svc:       svc,
		expire:    expire,
		batchSize: batchSize,
		logger:    elog.DefaultLogger,
	}
}

func (c *CloseExpiredOrdersJob) Name() string {
	return "CloseExpiredOrdersJob"
}

func (c *CloseExpiredOrdersJob) Run(ctx context.Context) error {
	// 冗余10秒
	ctime := time.Now().Add(-c.expire - 10*time.Second).UnixMilli()
	cnt, err := c.svc.CloseExpiredOrders(ctx, ctime, c.batchSize)
	if err != nil {
		return err
	}
	if cnt > 0 {
		c.logger.Info("关闭超时订单", elog.Int64("count", cnt))
	}
	return nil
}
