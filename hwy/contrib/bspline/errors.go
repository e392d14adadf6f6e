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

package bspline

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is matched (via errors.Is) by every argument
// validation failure. Validation happens once, before any evaluation work.
var ErrInvalidArguments = errors.New("bspline: invalid arguments")

// ErrNativeUnavailable is returned when StrategyNative is requested but no
// native kernel is installed for the element type on this build and CPU.
var ErrNativeUnavailable = errors.New("bspline: native SIMD kernel unavailable")

// ArgumentError describes which argument broke the evaluation contract.
type ArgumentError struct {
	// Field names the offending argument, e.g. "knots" or "degree".
	Field string
	// Reason is a human-readable description of the violation.
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("bspline: invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidArguments) hold.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArguments
}

func argError(field, format string, args ...any) error {
	return &ArgumentError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
