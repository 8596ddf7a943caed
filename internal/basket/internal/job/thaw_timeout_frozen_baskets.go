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

	"github.com/ecodeclub/ecommerce/internal/basket/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// ThawTimeoutFrozenBasketsJob 下单失败后购物车会一直处于冻结状态, 超时后恢复为可编辑
type ThawTimeoutFrozenBasketsJob struct {
	svc       service.Service
	timeout   time.Duration
	batchSize int
	logger    *elog.Component
}

func NewThawTimeoutFrozenBasketsJob(svc service.Service, timeout time.Duration, batchSize int) *ThawTimeoutFrozenBasketsJob {
	return &ThawTimeoutFrozenBasketsJob{
		svc:       svc,
		timeout:   timeout,
		batchSize: batchSize,
		logger:    elog.DefaultLogger,
	}
}

func (j *ThawTimeoutFrozenBasketsJob) Name() string {
	return "ThawTimeoutFrozenBasketsJob"
}

func (j *ThawTimeoutFrozenBasketsJob) Run(ctx context.Context) error {
	frozenBefore := time.Now().Add(-j.timeout).UnixMilli()
	cnt, err := j.svc.ThawTimeoutFrozen(ctx, frozenBefore, j.batchSize)
	if err != nil {
		return err
	}
	if cnt > 0 {
		j.logger.Info("解冻超时购物车", elog.Int64("count", cnt))
	}
	return nil
}
