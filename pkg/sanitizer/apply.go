package sanitizer

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value

	for _, transform := range transforms {
		result = transform(result)
	}

	return result
}

// Compose bundles transforms into one reusable function, e.g. a
// trim-then-sanitize step for form fields:
//
//	clean := sanitizer.Compose(strings.TrimSpace, sanitizer.Sanitize)
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
