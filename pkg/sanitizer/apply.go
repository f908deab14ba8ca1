package sanitizer

// Apply runs value through the given transforms left to right and returns the
// final result.
func Apply[T any](value T, transforms ...func(T) T) T {
	result := value
	for _, transform := range transforms {
		result = transform(result)
	}
	return result
}

// Compose bundles transforms into a single reusable function. Prefer this
// over repeated Apply calls when the same chain is used in more than one
// place.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T {
		return Apply(value, transforms...)
	}
}
