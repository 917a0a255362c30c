package diag

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedot-ml/seedot/internal/tensor"
)

func TestCheckLen(t *testing.T) {
	require.NoError(t, CheckLen("op", "A", 6, tensor.Shape{2, 3}))

	err := CheckLen("op", "A", 5, tensor.Shape{2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
	assert.Contains(t, err.Error(), "A has 5 elements")

	err = CheckLen("op", "A", 0, tensor.Shape{0, 3})
	assert.True(t, errors.Is(err, ErrShape))
}

func TestCheckTreeDepth(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		h1, h2 int
		ok     bool
	}{
		{"exact", 8, 3, 0, true},
		{"mixed", 8, 1, 2, true},
		{"not power of two", 5, 3, 0, true},
		{"too shallow", 5, 2, 0, false},
		{"single value", 1, 0, 0, true},
		{"excess is legal", 4, 5, 0, true},
		{"negative", 4, -1, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckTreeDepth("matmul", tt.n, tt.h1, tt.h2)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDepth))
		})
	}
}

func TestCheckTreeDepth_Hint(t *testing.T) {
	err := CheckTreeDepth("conv", 9, 1, 1)
	require.Error(t, err)
	hints := errors.GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Contains(t, hints[0], "ceil(log2(n))")
}

func TestExcessHalving(t *testing.T) {
	assert.Equal(t, 0, ExcessHalving(8, 3))
	assert.Equal(t, 2, ExcessHalving(8, 5))
	assert.Equal(t, 1, ExcessHalving(1, 1))
	assert.Equal(t, 0, ExcessHalving(8, 1))
}

func TestReport_CombinesFailures(t *testing.T) {
	var r Report
	r.Add(nil)
	assert.NoError(t, r.Err())

	r.Add(CheckScratch("matmul", 2, 4))
	r.Add(CheckDivisors("matmul", Divisor{"shrA", 0}))
	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrScratch))
	assert.True(t, errors.Is(err, ErrDivisor))
}

func TestCheckDivisors_ReportsInArgumentOrder(t *testing.T) {
	assert.NoError(t, CheckDivisors("op", Divisor{"shrA", 1}, Divisor{"demote", -2}))

	for i := 0; i < 20; i++ {
		err := CheckDivisors("matmul",
			Divisor{"shrA", 0}, Divisor{"shrB", 4}, Divisor{"shrC", 0}, Divisor{"demote", 0})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDivisor))

		msg := err.Error()
		a := strings.Index(msg, "shrA is zero")
		c := strings.Index(msg, "shrC is zero")
		d := strings.Index(msg, "demote is zero")
		require.True(t, a >= 0 && c >= 0 && d >= 0, msg)
		assert.Less(t, a, c)
		assert.Less(t, c, d)
		assert.NotContains(t, msg, "shrB")
	}
}

func TestCheckScratch(t *testing.T) {
	assert.NoError(t, CheckScratch("op", 4, 4))
	assert.NoError(t, CheckScratch("op", 1, 0))
	assert.True(t, errors.Is(CheckScratch("op", 0, 0), ErrScratch))
}
