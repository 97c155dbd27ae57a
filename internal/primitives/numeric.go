package primitives

// Numeric covers the element types the buffer kernels operate on.
type Numeric interface {
	~float32 | ~float64 |
		~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Signed covers the element types that support unary negation.
type Signed interface {
	~float32 | ~float64 | ~int8 | ~int16 | ~int32 | ~int64
}

// Float covers the native floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Index covers the integer types usable as position buffers.
type Index interface {
	~int | ~int32 | ~int64
}
