package demo

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/monadlab/monadlab/pkg/maybe"
	"github.com/monadlab/monadlab/pkg/result"
	"github.com/monadlab/monadlab/pkg/result/flow"
)

// ParseAge turns a raw form field into a validated age:
// trim, require non-empty, parse, range-check 0..150.
func ParseAge(raw string) result.Result[int, error] {
	checked := flow.From(strings.TrimSpace(raw)).
		Verify(func(s string) (bool, string) {
			if s == "" {
				return false, "age is required"
			}
			return true, ""
		}).
		Result()

	parsed := result.Bind(checked, func(s string) result.Result[int, error] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return result.Fail[int, error](fmt.Errorf("not a number: %q", s))
		}
		return result.Success[int, error](n)
	})

	return result.Bind(parsed, func(n int) result.Result[int, error] {
		if n < 0 || n > 150 {
			return result.Fail[int, error](fmt.Errorf("age out of range: %d", n))
		}
		return result.Success[int, error](n)
	})
}

// Greet builds a greeting from a possibly-absent name, falling back for
// None and for blank strings.
func Greet(name maybe.Maybe[string]) string {
	trimmed := maybe.Map(name, strings.TrimSpace)
	present := maybe.Filter(trimmed, func(s string) bool { return s != "" })
	return maybe.Map(present, func(s string) string {
		return "Hello, " + s + "!"
	}).UnwrapOr("Hello, stranger!")
}

// Discount validates a discount code of the form SAVE<percent> and returns
// the percentage. Rules run in order and stop at the first failure.
func Discount(code string) result.Result[int, error] {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	checked := result.Chain(result.Success[string, error](normalized),
		func(s string) result.Result[string, error] {
			if s == "" {
				return result.Fail[string, error](fmt.Errorf("code is required"))
			}
			return result.Success[string, error](s)
		},
		func(s string) result.Result[string, error] {
			if !strings.HasPrefix(s, "SAVE") {
				return result.Fail[string, error](fmt.Errorf("unknown code: %q", s))
			}
			return result.Success[string, error](s)
		},
	)

	return result.Bind(checked, func(s string) result.Result[int, error] {
		n, err := strconv.Atoi(strings.TrimPrefix(s, "SAVE"))
		if err != nil || n <= 0 || n > 50 {
			return result.Fail[int, error](fmt.Errorf("bad discount amount in %q", s))
		}
		return result.Success[int, error](n)
	})
}
