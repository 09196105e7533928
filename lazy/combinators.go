package lazy

// Combinators over Lazy cells.
//
// Go methods cannot introduce fresh type parameters, so the combinators are
// package-level generic functions taking the cell as their first argument.
// None of them force the receiver at construction time; forcing happens
// when the returned cell is itself forced.

// Map returns an unevaluated cell that, when forced, computes fn over the
// forced value of l (functor map).
func Map[T, U any](l *Lazy[T], fn func(T) U) *Lazy[U] {
	return New(func() U {
		return fn(l.Get())
	})
}

// Bind returns an unevaluated cell that, when forced, applies fn to the
// forced value of l and forces the cell fn produced (monadic bind).
//
// Bind satisfies the monad laws: chains associate like ordinary function
// composition, and Bind(l, FromValue) forces to the same value as l.
func Bind[T, U any](l *Lazy[T], fn func(T) *Lazy[U]) *Lazy[U] {
	return New(func() U {
		return fn(l.Get()).Get()
	})
}

// Extend returns an unevaluated cell that, when forced, passes the cell l
// itself — not its value — to fn (comonadic extend). fn decides whether and
// when to force l, and may observe it without forcing at all.
func Extend[T, U any](l *Lazy[T], fn func(*Lazy[T]) U) *Lazy[U] {
	return New(func() U {
		return fn(l)
	})
}

// Apply returns an unevaluated cell that, when forced, forces fl to obtain
// a function and applies it to the forced value of l (applicative apply).
func Apply[T, U any](l *Lazy[T], fl *Lazy[func(T) U]) *Lazy[U] {
	return New(func() U {
		return fl.Get()(l.Get())
	})
}

// Join forces the outer cell and returns the inner cell it contains. The
// inner cell is returned unforced.
func Join[U any](outer *Lazy[*Lazy[U]]) *Lazy[U] {
	return outer.Get()
}

// Flatten is the nested-cell spelling of Get: it forces outer and returns
// the contained cell unforced. Equivalent to Join; provided so call sites
// that think of the operation as collapsing one layer read naturally.
func Flatten[U any](outer *Lazy[*Lazy[U]]) *Lazy[U] {
	return Join(outer)
}
