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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ecommerce/internal/voucher/internal/domain"
	pkgerrs "github.com/pkg/errors"
)

var ErrVoucherNotFound = errors.New("兑换券缓存不存在")

type VoucherCache interface {
	Get(ctx context.Context, code string) (domain.Voucher, error)
	Set(ctx context.Context, v domain.Voucher) error
	Del(ctx context.Context, code string) error
}

type VoucherECache struct {
	ec         ecache.Cache
	expiration time.Duration
}

func NewVoucherECache(ec ecache.Cache, expiration time.Duration) VoucherCache {
	return &VoucherECache{
		ec: &ecache.NamespaceCache{
			Namespace: "voucher:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *VoucherECache) Get(ctx context.Context, code string) (domain.Voucher, error) {
	val := c.ec.Get(ctx, c.codeKey(code))
	if val.KeyNotFound() {
		return domain.Voucher{}, ErrVoucherNotFound
	}
	str, err := val.AsString()
	if err != nil {
		return domain.Voucher{}, pkgerrs.Wrap(err, "查询缓存出错")
	}
	var v domain.Voucher
	err = json.Unmarshal([]byte(str), &v)
	return v, pkgerrs.Wrap(err, "反序列化兑换券失败")
}

func (c *VoucherECache) Set(ctx context.Context, v domain.Voucher) error {
	data, err := json.Marshal(v)
	if err != nil {
		return pkgerrs.Wrap(err, "序列化兑换券失败")
	}
	return c.ec.Set(ctx, c.codeKey(v.Code), string(data), c.expiration)
}

func (c *VoucherECache) Del(ctx context.Context, code string) error {
	_, err := c.ec.Delete(ctx, c.codeKey(code))
	return err
}

// 注意 Namespace 设置
func (c *VoucherECache) codeKey(code string) string {
	return fmt.Sprintf("code:%s", code)
}
