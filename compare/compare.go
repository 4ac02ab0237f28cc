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

// Package compare implements the structural comparison of two arbitrary
// values.
//
// Compare walks an expected and an actual value side by side and reports
// every discrepancy as a Record. The walk is deterministic: record keys are
// visited in sorted order and native maps in key order, so the same inputs
// always produce the same records in the same order.
//
// Cyclic values are not supported.
package compare

import (
	"fmt"
	"reflect"
	"regexp"
	"time"

	"go.chromium.org/certainty/format"
	"go.chromium.org/certainty/value"
)

const (
	// MaxExtraEntries is how many property or element records are emitted for
	// each side of a composite before the rest are summarized by a single
	// KindMore record.
	MaxExtraEntries = 3

	// ShortStringLength is the length, in runes, under which two differing
	// strings are always reported whole, as a KindValue record.
	ShortStringLength = 60

	// ValueClip is the clip applied when formatting values into records.
	ValueClip = 100
)

// Compare reports whether `expected` and `actual` are equal.
//
// `path` names the compared values in records; it may be empty. When `deep`
// is false, two distinct composite values are never equal. When `diffs` is
// nil, Compare stops at the first discrepancy; otherwise it appends a Record
// for every discrepancy to *diffs.
//
// The only error is one wrapping ErrUnsupportedType.
func Compare(expected, actual any, path string, deep bool, diffs *[]Record) (bool, error) {
	c := comparer{diffs: diffs}
	return c.compare(reflect.ValueOf(expected), reflect.ValueOf(actual), path, deep)
}

// Records returns every discrepancy between `expected` and `actual`. It is
// empty iff the values are equal.
func Records(expected, actual any, path string, deep bool) ([]Record, error) {
	var diffs []Record
	_, err := Compare(expected, actual, path, deep, &diffs)
	return diffs, err
}

type comparer struct {
	diffs *[]Record
}

func (c *comparer) collecting() bool {
	return c.diffs != nil
}

func (c *comparer) add(r Record) {
	if c.diffs != nil {
		*c.diffs = append(*c.diffs, r)
	}
}

func (c *comparer) mismatch(path string, exp, act reflect.Value) (bool, error) {
	if c.collecting() {
		c.add(Record{
			Kind:     KindValue,
			Path:     path,
			Expected: formatValue(exp),
			Actual:   formatValue(act),
		})
	}
	return false, nil
}

func (c *comparer) typeMismatch(path string, exp, act reflect.Value) (bool, error) {
	if c.collecting() {
		c.add(Record{
			Kind:     KindType,
			Path:     path,
			Expected: exp.Type().String(),
			Actual:   act.Type().String(),
		})
	}
	return false, nil
}

func formatValue(rv reflect.Value) string {
	return format.Options{Clip: ValueClip}.Reflect(rv)
}

func (c *comparer) compare(exp, act reflect.Value, path string, deep bool) (bool, error) {
	if identical(exp, act) {
		return true, nil
	}

	ek, ev := value.Inspect(exp)
	ak, av := value.Inspect(act)

	// All nils and all undefineds are alike, whatever their static type.
	if ek == ak && (ek == value.Null || ek == value.KindUndefined) {
		return true, nil
	}

	if ek.Tag() != ak.Tag() || isScalar(ek) || isScalar(ak) {
		if ek == ak && isTyped(ek) && ev.Type() != av.Type() {
			return c.typeMismatch(path, ev, av)
		}
		return c.mismatch(path, exp, act)
	}

	switch {
	case ek == value.Unsupported:
		return false, unsupported(path, ev)
	case ak == value.Unsupported:
		return false, unsupported(path, av)

	case ek == value.String:
		if ev.Type() != av.Type() {
			return c.typeMismatch(path, ev, av)
		}
		return c.text(ev.String(), av.String(), path, exp, act)
	}

	// Both are objects.
	if !deep {
		return c.mismatch(path, exp, act)
	}
	if ev.Type() != av.Type() {
		return c.typeMismatch(path, ev, av)
	}

	switch ek {
	case value.Array:
		return c.arrays(ev, av, path, deep)

	case value.RegExp:
		if ev.Interface().(*regexp.Regexp).String() == av.Interface().(*regexp.Regexp).String() {
			return true, nil
		}
		return c.mismatch(path, exp, act)

	case value.Date:
		if ev.Interface().(time.Time).Equal(av.Interface().(time.Time)) {
			return true, nil
		}
		return c.mismatch(path, exp, act)

	case value.Record:
		if isOpaque(ev) {
			return c.opaque(exp, act, ev, av, path)
		}
		return c.records(ev, av, path, deep)

	case value.Map:
		return c.maps(ev, av, path, deep)

	case value.Set:
		return c.sets(ev, av, path, deep)
	}

	// Promises are equal only when identical.
	return c.mismatch(path, exp, act)
}

// isScalar is true for kinds which have no structure to walk.
func isScalar(k value.Kind) bool {
	switch k {
	case value.Number, value.Boolean, value.KindUndefined, value.Null:
		return true
	}
	return false
}

// isTyped is true for scalar kinds whose Go type is significant.
func isTyped(k value.Kind) bool {
	return k == value.Number || k == value.Boolean
}

// isOpaque is true for structs with fields but none exported, such as most
// error implementations.
func isOpaque(rv reflect.Value) bool {
	return rv.Kind() == reflect.Struct && rv.NumField() > 0 && len(value.Fields(rv)) == 0
}

var (
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// opaque compares two opaque structs of the same type. Errors and Stringers
// compare by their text. Other comparable structs compare with ==, and the
// rest cannot be compared at all.
func (c *comparer) opaque(exp, act, ev, av reflect.Value, path string) (bool, error) {
	switch {
	case describesItself(exp) && describesItself(act):
		if formatValue(exp) == formatValue(act) {
			return true, nil
		}
		return c.mismatch(path, exp, act)

	case ev.Comparable() && av.Comparable():
		if ev.Equal(av) {
			return true, nil
		}
		return c.mismatch(path, exp, act)
	}
	return false, unsupported(path, ev)
}

// describesItself is true if `rv`, or a value it points to, implements error
// or fmt.Stringer.
func describesItself(rv reflect.Value) bool {
	for rv.IsValid() {
		if t := rv.Type(); t.Implements(errorType) || t.Implements(stringerType) {
			return true
		}
		if k := rv.Kind(); (k != reflect.Pointer && k != reflect.Interface) || rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return false
}

// Identical reports whether `a` and `b` are the same value: equal scalars
// of the same type, or the same reference.
func Identical(a, b any) bool {
	return identical(reflect.ValueOf(a), reflect.ValueOf(b))
}

// identical is the strict identity check: the same scalar, or the same
// reference.
func identical(a, b reflect.Value) bool {
	a, b = unwrapInterface(a), unwrapInterface(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}
	switch a.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return a.Pointer() == b.Pointer()
	case reflect.Slice:
		return a.Pointer() == b.Pointer() && a.Len() == b.Len() && a.IsNil() == b.IsNil()
	case reflect.Func:
		return a.IsNil() && b.IsNil()
	case reflect.Interface:
		return a.IsNil() && b.IsNil()
	}
	if a.Comparable() {
		return a.Equal(b)
	}
	return false
}

func unwrapInterface(rv reflect.Value) reflect.Value {
	for rv.IsValid() && rv.Kind() == reflect.Interface && !rv.IsNil() {
		rv = rv.Elem()
	}
	return rv
}

// extras emits up to MaxExtraEntries records from `rec`, then a KindMore
// record for the remaining `n - MaxExtraEntries`.
func (c *comparer) extras(path string, n int, rec func(i int) Record) {
	for i := 0; i < n && i < MaxExtraEntries; i++ {
		c.add(rec(i))
	}
	if n > MaxExtraEntries {
		c.add(More(path, n-MaxExtraEntries))
	}
}

func (c *comparer) arrays(ev, av reflect.Value, path string, deep bool) (bool, error) {
	el, al := ev.Len(), av.Len()
	same := el == al
	if !same && !c.collecting() {
		return false, nil
	}
	n := min(el, al)
	for i := 0; i < n; i++ {
		ok, err := c.compare(ev.Index(i), av.Index(i), joinIndex(path, i), deep)
		if err != nil {
			return false, err
		}
		if !ok {
			if !c.collecting() {
				return false, nil
			}
			same = false
		}
	}

	c.extras(path, el-n, func(i int) Record {
		return MissingElement(joinIndex(path, n+i), formatValue(ev.Index(n+i)))
	})
	c.extras(path, al-n, func(i int) Record {
		return UnexpectedElement(joinIndex(path, n+i), formatValue(av.Index(n+i)))
	})
	return same, nil
}

func (c *comparer) records(ev, av reflect.Value, path string, deep bool) (bool, error) {
	eFields, aFields := value.Fields(ev), value.Fields(av)
	inExp := make(map[string]struct{}, len(eFields))
	for _, f := range eFields {
		inExp[f.Name] = struct{}{}
	}
	inAct := make(map[string]reflect.Value, len(aFields))
	for _, f := range aFields {
		inAct[f.Name] = f.Value
	}

	same := true
	missing := 0
	for _, f := range eFields {
		fpath := joinProperty(path, f.Name)
		if v, ok := inAct[f.Name]; ok {
			ok, err := c.compare(f.Value, v, fpath, deep)
			if err != nil {
				return false, err
			}
			if !ok {
				if !c.collecting() {
					return false, nil
				}
				same = false
			}
			continue
		}
		if !c.collecting() {
			return false, nil
		}
		same = false
		if missing < MaxExtraEntries {
			c.add(MissingProperty(fpath, formatValue(f.Value)))
		}
		missing++
	}
	if missing > MaxExtraEntries {
		c.add(More(path, missing-MaxExtraEntries))
	}

	var unexpected []value.Field
	for _, f := range aFields {
		if _, ok := inExp[f.Name]; !ok {
			unexpected = append(unexpected, f)
		}
	}
	if len(unexpected) > 0 && !c.collecting() {
		return false, nil
	}
	c.extras(path, len(unexpected), func(i int) Record {
		return UnexpectedProperty(joinProperty(path, unexpected[i].Name), formatValue(unexpected[i].Value))
	})
	return same && len(unexpected) == 0, nil
}

func (c *comparer) maps(ev, av reflect.Value, path string, deep bool) (bool, error) {
	ePairs, aPairs := value.Pairs(ev), value.Pairs(av)
	inExp := make(map[any]struct{}, len(ePairs))
	for _, p := range ePairs {
		inExp[keyOf(p.Key)] = struct{}{}
	}
	inAct := make(map[any]reflect.Value, len(aPairs))
	for _, p := range aPairs {
		inAct[keyOf(p.Key)] = p.Value
	}

	same := true
	var missing []value.Pair
	for _, p := range ePairs {
		kpath := joinKey(path, format.Options{}.Reflect(p.Key))
		if v, ok := inAct[keyOf(p.Key)]; ok {
			ok, err := c.compare(p.Value, v, kpath, deep)
			if err != nil {
				return false, err
			}
			if !ok {
				if !c.collecting() {
					return false, nil
				}
				same = false
			}
			continue
		}
		if !c.collecting() {
			return false, nil
		}
		same = false
		missing = append(missing, p)
	}
	var unexpected []value.Pair
	for _, p := range aPairs {
		if _, ok := inExp[keyOf(p.Key)]; !ok {
			unexpected = append(unexpected, p)
		}
	}
	if len(unexpected) > 0 && !c.collecting() {
		return false, nil
	}

	c.extras(path, len(missing), func(i int) Record {
		p := missing[i]
		return MissingElement(joinKey(path, format.Options{}.Reflect(p.Key)), formatValue(p.Value))
	})
	c.extras(path, len(unexpected), func(i int) Record {
		p := unexpected[i]
		return UnexpectedElement(joinKey(path, format.Options{}.Reflect(p.Key)), formatValue(p.Value))
	})
	return same && len(unexpected) == 0, nil
}

// keyOf returns a map key's dynamic value, for use as a Go map key.
func keyOf(rv reflect.Value) any {
	return value.Interface(unwrapInterface(rv))
}

func (c *comparer) sets(ev, av reflect.Value, path string, deep bool) (bool, error) {
	eMembers, aMembers := value.Members(ev), value.Members(av)
	matched := make([]bool, len(aMembers))
	probe := comparer{}

	var missing []reflect.Value
	for _, em := range eMembers {
		found := false
		for j, am := range aMembers {
			if matched[j] {
				continue
			}
			ok, err := probe.compare(em, am, path, deep)
			if err != nil {
				return false, err
			}
			if ok {
				matched[j], found = true, true
				break
			}
		}
		if !found {
			if !c.collecting() {
				return false, nil
			}
			missing = append(missing, em)
		}
	}
	var unexpected []reflect.Value
	for j, am := range aMembers {
		if !matched[j] {
			unexpected = append(unexpected, am)
		}
	}
	if len(unexpected) > 0 && !c.collecting() {
		return false, nil
	}

	c.extras(path, len(missing), func(i int) Record {
		return MissingElement(path, formatValue(missing[i]))
	})
	c.extras(path, len(unexpected), func(i int) Record {
		return UnexpectedElement(path, formatValue(unexpected[i]))
	})
	return len(missing) == 0 && len(unexpected) == 0, nil
}
