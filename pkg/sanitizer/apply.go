package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose stores a transform chain for reuse, e.g. one cleaner per form field:
//
//	cleanLine := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine)
//	name = cleanLine(name)
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
