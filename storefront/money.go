package storefront

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Money arithmetic panics on coefficient overflow; storefront amounts stay
// far below the 19-digit limit unless the input is corrupted.

func mustAdd(a, b decimal.Decimal) decimal.Decimal {
	sum, err := a.Add(b)
	if err != nil {
		panic(fmt.Errorf("storefront: money addition failed: %w", err))
	}
	return sum
}

func mustSub(a, b decimal.Decimal) decimal.Decimal {
	diff, err := a.Sub(b)
	if err != nil {
		panic(fmt.Errorf("storefront: money subtraction failed: %w", err))
	}
	return diff
}

func mustMul(a, b decimal.Decimal) decimal.Decimal {
	product, err := a.Mul(b)
	if err != nil {
		panic(fmt.Errorf("storefront: money multiplication failed: %w", err))
	}
	return product
}

func mustMulInt(a decimal.Decimal, n int) decimal.Decimal {
	factor, err := decimal.New(int64(n), 0)
	if err != nil {
		panic(fmt.Errorf("storefront: bad integer factor %d: %w", n, err))
	}
	return mustMul(a, factor)
}
