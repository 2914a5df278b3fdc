package readthrough

import "reflect"

// coalesce returns def when v is the zero value of T - otherwise v.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// present reports whether v holds a value worth caching: nil references
// (pointer, map, slice, interface, func, chan) are absent.
func present[V any](v V) bool {
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// nonZero is the strict variant used by Options.SkipZero.
func nonZero[V any](v V) bool {
	return !reflect.ValueOf(&v).Elem().IsZero()
}
