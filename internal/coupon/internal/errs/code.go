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

package errs

var (
	SystemError         = ErrorCode{Code: 406001, Msg: "系统错误"}
	CouponInvalid       = ErrorCode{Code: 406002, Msg: "兑换券参数非法"}
	StockRecordNotFound = ErrorCode{Code: 406003, Msg: "库存记录不存在"}
	CodeExists          = ErrorCode{Code: 406004, Msg: "兑换码已存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
