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
	"github.com/ecodeclub/ecommerce/internal/course/internal/domain"
	"github.com/hashicorp/golang-lru/v2/expirable"
	pkgerrs "github.com/pkg/errors"
)

var ErrCourseNotFound = errors.New("课程缓存不存在")

type CourseCache interface {
	Get(ctx context.Context, courseID string) (domain.Course, error)
	Set(ctx context.Context, c domain.Course) error
}

// CourseECache 本地 LRU 挡在 ecache 前面, 课程信息很少变化
type CourseECache struct {
	local      *expirable.LRU[string, domain.Course]
	ec         ecache.Cache
	expiration time.Duration
}

func NewCourseECache(ec ecache.Cache, size int, expiration time.Duration) CourseCache {
	return &CourseECache{
		local: expirable.NewLRU[string, domain.Course](size, nil, expiration),
		ec: &ecache.NamespaceCache{
			Namespace: "course:",
			C:         ec,
		},
		expiration: expiration,
	}
}

func (c *CourseECache) Get(ctx context.Context, courseID string) (domain.Course, error) {
	if course, ok := c.local.Get(courseID); ok {
		return course, nil
	}
	val := c.ec.Get(ctx, c.key(courseID))
	if val.KeyNotFound() {
		return domain.Course{}, ErrCourseNotFound
	}
	str, err := val.AsString()
	if err != nil {
		return domain.Course{}, pkgerrs.Wrap(err, "查询缓存出错")
	}
	var course domain.Course
	if err = json.Unmarshal([]byte(str), &course); err != nil {
		return domain.Course{}, pkgerrs.Wrap(err, "反序列化课程失败")
	}
	c.local.Add(courseID, course)
	return course, nil
}

func (c *CourseECache) Set(ctx context.Context, course domain.Course) error {
	data, err := json.Marshal(course)
	if err != nil {
		return pkgerrs.Wrap(err, "序列化课程失败")
	}
	c.local.Add(course.ID, course)
	return c.ec.Set(ctx, c.key(course.ID), string(data), c.expiration)
}

func (c *CourseECache) key(courseID string) string {
	return fmt.Sprintf("id:%s", courseID)
}
