package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values, usually pointers, into random readable names.
// It flagrantly leaks memory, since every named value stays in the memo, so
// Name is only for poking at pointer identity while debugging. Anything that
// names values on a normal code path should use NewName, which keeps nothing.
//
// Independent polygons may be triangulated from different goroutines, so the
// memo is guarded.

var (
	mu   sync.Mutex
	memo = make(map[interface{}]string)
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	if v := reflect.ValueOf(obj); isNillable(v.Kind()) && v.IsNil() {
		return "Ø"
	}
	if !reflect.TypeOf(obj).Comparable() {
		return fmt.Sprintf("%T", obj)
	}

	mu.Lock()
	defer mu.Unlock()
	if r, ok := memo[obj]; ok {
		return r
	}
	r := NewName()
	memo[obj] = r
	return r
}

// A fresh random name like "BraveOtter". Nothing is remembered, so two calls
// may collide, but that only matters for telling apart log lines. This is what
// sweeps use to tag their debug entries.
func NewName() string {
	return fmt.Sprintf("%s%s", title(petname.Adjective()), title(petname.Name()))
}

func isNillable(kind reflect.Kind) bool {
	switch kind {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return true
	}
	return false
}

// strings.Title is deprecated, and petname words are plain lowercase ASCII.
func title(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
