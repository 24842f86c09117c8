package maybe

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_NilYieldsNone(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, Wrap(p).IsNone())

	var iface any
	assert.True(t, Wrap(iface).IsNone())

	var m map[string]int
	assert.True(t, Wrap(m).IsNone())

	var s []int
	assert.True(t, Wrap(s).IsNone())
}

func TestWrap_ZeroValuesArePresent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Just(0), Wrap(0))
	assert.Equal(t, Just(""), Wrap(""))
	assert.Equal(t, Just(false), Wrap(false))

	zero := 0
	wrapped := Wrap(&zero)
	assert.True(t, wrapped.IsJust())
	assert.Equal(t, 0, *wrapped.Value())
}

func TestPredicates_ExhaustiveAndExclusive(t *testing.T) {
	t.Parallel()

	j := Just(5)
	assert.True(t, j.IsJust())
	assert.False(t, j.IsNone())

	n := None[int]()
	assert.False(t, n.IsJust())
	assert.True(t, n.IsNone())
}

func TestUnwrapOr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, Just(5).UnwrapOr(9))
	assert.Equal(t, 9, None[int]().UnwrapOr(9))
	assert.Equal(t, "", Wrap("").UnwrapOr("fallback"))
}

func TestBind_SuccessPath(t *testing.T) {
	t.Parallel()

	out := Bind(Just("12"), func(s string) Maybe[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}
		return Just(n)
	})
	assert.Equal(t, Just(12), out)
}

func TestBind_ShortCircuitOnNone(t *testing.T) {
	t.Parallel()

	called := false
	out := Bind(None[int](), func(n int) Maybe[int] {
		called = true
		return Just(n + 1)
	})
	assert.True(t, out.IsNone())
	assert.False(t, called, "f must not be invoked on None")
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Just(10), Map(Just(5), func(n int) int { return n * 2 }))
	assert.Equal(t, Just("5"), Map(Just(5), strconv.Itoa))
	assert.True(t, Map(None[int](), strconv.Itoa).IsNone())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	gt3 := func(n int) bool { return n > 3 }
	assert.Equal(t, Just(5), Filter(Just(5), gt3))
	assert.True(t, Filter(Just(2), gt3).IsNone())
	assert.True(t, Filter(None[int](), gt3).IsNone())
}

func TestChain_AllPresent(t *testing.T) {
	t.Parallel()

	out := Chain(Just(5),
		func(n int) Maybe[int] { return Just(n * 2) },
		func(n int) Maybe[int] { return Just(n + 3) },
		func(n int) Maybe[int] { return Just(n - 1) },
	)
	assert.Equal(t, Just(12), out)
}

func TestChain_ShortCircuitSkipsLaterSteps(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Chain(Just(5),
		func(n int) Maybe[int] { calls++; return Just(n * 2) },
		func(n int) Maybe[int] { calls++; return None[int]() },
		func(n int) Maybe[int] { calls++; return Just(n + 100) },
	)
	assert.True(t, out.IsNone())
	assert.Equal(t, 2, calls, "third step must never run after the short circuit")
}

func TestChain_StartingFromNone(t *testing.T) {
	t.Parallel()

	calls := 0
	out := Chain(None[int](),
		func(n int) Maybe[int] { calls++; return Just(n) },
	)
	assert.True(t, out.IsNone())
	assert.Zero(t, calls)
}

func TestMonadLaws(t *testing.T) {
	t.Parallel()

	f := func(n int) Maybe[int] {
		if n%2 == 0 {
			return Just(n / 2)
		}
		return None[int]()
	}
	g := func(n int) Maybe[int] { return Just(n + 7) }

	t.Run("left identity", func(t *testing.T) {
		t.Parallel()
		for _, a := range []int{-4, 0, 1, 42} {
			assert.Equal(t, f(a), Bind(Wrap(a), f))
		}
	})

	t.Run("right identity", func(t *testing.T) {
		t.Parallel()
		for _, m := range []Maybe[int]{Just(3), Just(0), None[int]()} {
			assert.Equal(t, m, Bind(m, Just[int]))
		}
	})

	t.Run("associativity", func(t *testing.T) {
		t.Parallel()
		for _, m := range []Maybe[int]{Just(8), Just(3), None[int]()} {
			lhs := Bind(Bind(m, f), g)
			rhs := Bind(m, func(n int) Maybe[int] { return Bind(f(n), g) })
			assert.Equal(t, rhs, lhs)
		}
	})
}
