// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "strconv"

// Status is the result code returned by HAL kernels.
type Status int

const (
	// OK reports that the kernel ran to completion.
	OK Status = 0

	// NotImplemented reports that a kernel does not handle the request and
	// the caller should fall back to another implementation.
	NotImplemented Status = 1

	// Unknown reports an unspecified failure.
	Unknown Status = -1
)

func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case NotImplemented:
		return "not implemented"
	case Unknown:
		return "unknown error"
	default:
		return "status(" + strconv.Itoa(int(s)) + ")"
	}
}
