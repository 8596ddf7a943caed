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

	"github.com/ecodeclub/ecommerce/internal/course/internal/client"
	"github.com/ecodeclub/ecommerce/internal/course/internal/domain"
	"github.com/ecodeclub/ecommerce/internal/course/internal/repository/cache"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCourseAPI = client.ErrCourseAPI

type Fetcher interface {
	Course(ctx context.Context, courseID, accessToken string) (domain.Course, error)
}

//go:generate mockgen -source=./service.go -package=coursemocks -destination=../../mocks/course.mock.go Service
type Service interface {
	// Course 先查缓存, 缓存没有再调用 LMS
	Course(ctx context.Context, courseID, accessToken string) (domain.Course, error)
	// LMSURL 拼接 LMS 的完整地址
	LMSURL(path string) string
}

type service struct {
	fetcher Fetcher
	cache   cache.CourseCache
	lmsURL  string
	logger  *elog.Component
}

func NewService(fetcher Fetcher, c cache.CourseCache, lmsURL string) Service {
	return &service{
		fetcher: fetcher,
		cache:   c,
		lmsURL:  lmsURL,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) Course(ctx context.Context, courseID, accessToken string) (domain.Course, error) {
	res, err := s.cache.Get(ctx, courseID)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, cache.ErrCourseNotFound) {
		s.logger.Error("查询课程缓存失败", elog.FieldErr(err), elog.String("courseId", courseID))
	}
	res, err = s.fetcher.Course(ctx, courseID, accessToken)
	if err != nil {
		return domain.Course{}, err
	}
	if er := s.cache.Set(ctx, res); er != nil {
		s.logger.Error("回写课程缓存失败", elog.FieldErr(er), elog.String("courseId", courseID))
	}
	return res, nil
}

func (s *service) LMSURL(path string) string {
	return domain.JoinURL(s.lmsURL, path)
}
