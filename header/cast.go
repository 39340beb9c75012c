package header

// Cast returns hdr as the concrete header type T.
//
// The cast succeeds only if hdr reports the identity of T and its dynamic type is exactly T.
// It never converts between structurally compatible types, and a foreign implementation
// that reports the identity of T is rejected as well.
// If hdr is nil or the check fails, Cast returns the zero T and false.
//
// T is expected to be a value header type, such as [ContentLength] or [Host].
// Pointer types whose ID method dereferences the receiver have no identity and never match.
//
// Example usage:
//
//	if cl, ok := header.Cast[header.ContentLength](hdr); ok {
//		n := cl.Value()
//	}
func Cast[T Header](hdr Header) (T, bool) {
	var zero T
	if hdr == nil {
		return zero, false
	}
	id, ok := idOf[T]()
	if !ok || hdr.ID() != id {
		return zero, false
	}
	h, ok := hdr.(T)
	if !ok {
		return zero, false
	}
	return h, true
}

// Is reports whether hdr has the identity and dynamic type of T.
func Is[T Header](hdr Header) bool {
	_, ok := Cast[T](hdr)
	return ok
}

// IDOf returns the identity of the header type T.
func IDOf[T Header]() ID {
	id, _ := idOf[T]()
	return id
}

func idOf[T Header]() (id ID, ok bool) {
	defer func() {
		if recover() != nil {
			id, ok = 0, false
		}
	}()
	var zero T
	return zero.ID(), true
}
