// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package compare

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// ErrUnsupportedType is matched (via errors.Is) by every error returned when
// the comparator meets a value it cannot describe, such as a func or a byte
// buffer.
//
// This indicates misuse of the library, not an inequality.
var ErrUnsupportedType = errors.New("unsupported type")

// UnsupportedTypeError carries the location and type of the offending value.
type UnsupportedTypeError struct {
	Path string
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	where := e.Path
	if where == "" {
		where = "<root>"
	}
	return fmt.Sprintf("%s: cannot compare values of type %s at %s", ErrUnsupportedType, e.Type, where)
}

// Unwrap returns ErrUnsupportedType.
func (e *UnsupportedTypeError) Unwrap() error {
	return ErrUnsupportedType
}

func unsupported(path string, rv reflect.Value) error {
	return errors.WithStack(&UnsupportedTypeError{Path: path, Type: rv.Type()})
}
