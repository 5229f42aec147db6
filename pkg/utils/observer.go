package utils

import "reflect"

type Observer[T any] interface {
	Update(T)
}

// Subject keeps an ordered list of observers and pushes to them on Notify.
type Subject[T any] interface {
	Attach(Observer[T])
	Detach(Observer[T])
	Notify()
}

// SameObserver reports whether a and b are the same observer. Pointer and channel
// observers compare by address. Other observers compare with ==, and never match
// when that comparison would panic, e.g. a struct holding a slice in an interface field.
func SameObserver[T any](a, b Observer[T]) (same bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	switch ta.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return a == b
	}
	if !ta.Comparable() {
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			same = false
		}
	}()
	return a == b
}
