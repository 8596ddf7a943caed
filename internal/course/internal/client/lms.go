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

package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ecodeclub/ecommerce/internal/course/internal/domain"
	"github.com/go-resty/resty/v2"
)

var ErrCourseAPI = errors.New("课程接口调用失败")

type courseResp struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ShortDescription string `json:"short_description"`
	Start            string `json:"start"`
	End              string `json:"end"`
	Media            struct {
		CourseImage struct {
			URI string `json:"uri"`
		} `json:"course_image"`
	} `json:"media"`
}

// LMSClient 调用 LMS 的课程接口
type LMSClient struct {
	client *resty.Client
	lmsURL string
}

func NewLMSClient(client *resty.Client, lmsURL string) *LMSClient {
	return &LMSClient{client: client, lmsURL: lmsURL}
}

func (c *LMSClient) Course(ctx context.Context, courseID, accessToken string) (domain.Course, error) {
	var res courseResp
	resp, err := c.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		SetHeader("Accept", "application/json").
		SetResult(&res).
		Get(domain.JoinURL(c.lmsURL, fmt.Sprintf("api/courses/v1/courses/%s/", url.PathEscape(courseID))))
	if err != nil {
		return domain.Course{}, fmt.Errorf("%w: %w", ErrCourseAPI, err)
	}
	if resp.IsError() {
		return domain.Course{}, fmt.Errorf("%w: %d %s", ErrCourseAPI, resp.StatusCode(), resp.Status())
	}
	return domain.Course{
		ID:               res.ID,
		Name:             res.Name,
		ShortDescription: res.ShortDescription,
		ImageURL:         domain.JoinURL(c.lmsURL, res.Media.CourseImage.URI),
		Start:            res.Start,
		End:              res.End,
	}, nil
}
