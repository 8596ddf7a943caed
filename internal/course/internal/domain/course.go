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

import "strings"

type Course struct {
	ID               string
	Name             string
	ShortDescription string
	ImageURL         string
	Start            string
	End              string
}

// JoinURL 拼接 LMS 根地址和路径, 中间只保留一个 /
func JoinURL(root, path string) string {
	if path == "" {
		return root
	}
	return strings.TrimRight(root, "/") + "/" + strings.TrimLeft(path, "/")
}
