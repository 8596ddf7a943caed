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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinURL(t *testing.T) {
	testCases := []struct {
		name string
		root string
		path string
		want string
	}{
		{name: "根地址带斜杠", root: "http://lms.local/", path: "/api/courses/v1/", want: "http://lms.local/api/courses/v1/"},
		{name: "都不带斜杠", root: "http://lms.local", path: "dashboard", want: "http://lms.local/dashboard"},
		{name: "空路径", root: "http://lms.local", path: "", want: "http://lms.local"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, JoinURL(tc.root, tc.path))
		})
	}
}
