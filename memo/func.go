package memo

// pair is a composite key for two-argument memoizers. Local type
// declarations cannot mention a generic function's type parameters, so it
// lives at package level.
type pair[A, B comparable] struct {
	a A
	b B
}

// Func1 memoizes a pure single-argument function, keeping up to maxSize
// results per generation.
func Func1[I comparable, O any](fn func(I) O, maxSize uint32) func(I) O {
	table := NewTable[I, O](maxSize, 1)
	return func(i I) O {
		return table.Do(i, func() O {
			return fn(i)
		})
	}
}

// Func2 memoizes a pure two-argument function, keyed by the argument pair.
func Func2[I1, I2 comparable, O any](fn func(I1, I2) O, maxSize uint32) func(I1, I2) O {
	table := NewTable[pair[I1, I2], O](maxSize, 1)
	return func(i1 I1, i2 I2) O {
		return table.Do(pair[I1, I2]{a: i1, b: i2}, func() O {
			return fn(i1, i2)
		})
	}
}
