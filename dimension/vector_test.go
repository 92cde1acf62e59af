// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	length       = Of(int(Length), 1)
	speed        = Of(int(Length), 1, int(Time), -1)
	force        = Of(int(Length), 1, int(Time), -2, int(Mass), 1)
	area         = Of(int(Length), 2)
	voltage      = Of(int(Length), 2, int(Time), -3, int(Mass), 1, int(Current), -1)
	sampleVector = []Vector{Dimensionless, length, speed, force, area, voltage}
)

func TestMulDivRoundTrip(t *testing.T) {
	for _, a := range sampleVector {
		for _, b := range sampleVector {
			assert.Equal(t, a, a.Mul(b).Div(b), "%v * %v / %v", a, b, b)
		}
	}
}

func TestMulCommutativeAssociative(t *testing.T) {
	for _, a := range sampleVector {
		assert.Equal(t, a, a.Mul(Dimensionless))
		for _, b := range sampleVector {
			assert.Equal(t, a.Mul(b), b.Mul(a))
			for _, c := range sampleVector {
				assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
			}
		}
	}
}

func TestPowRoot(t *testing.T) {
	for _, u := range sampleVector {
		for n := 1; n <= 4; n++ {
			r, err := u.Pow(n).Root(n)
			require.NoError(t, err)
			assert.Equal(t, u, r)

			if root, err := u.Root(n); err == nil {
				assert.Equal(t, u, root.Pow(n))
			}
		}
	}
}

func TestRootNotRepresentable(t *testing.T) {
	_, err := length.Pow(1).Root(2)
	assert.ErrorIs(t, err, ErrRootNotRepresentable)

	_, err = voltage.Root(3)
	assert.ErrorIs(t, err, ErrRootNotRepresentable)

	_, err = area.Root(0)
	assert.ErrorIs(t, err, ErrInvalidRoot)

	got, err := area.Root(2)
	require.NoError(t, err)
	assert.Equal(t, length, got)
}

func TestRatPow(t *testing.T) {
	got, err := Of(int(Length), 4).RatPow(3, 2)
	require.NoError(t, err)
	assert.Equal(t, Of(int(Length), 6), got)

	_, err = length.RatPow(3, 2)
	assert.ErrorIs(t, err, ErrRootNotRepresentable)
}

func TestInverse(t *testing.T) {
	assert.Equal(t, Dimensionless, force.Mul(force.Inverse()))
	assert.True(t, force.Div(force).IsDimensionless())
}

func TestString(t *testing.T) {
	tests := []struct {
		input    Vector
		expected string
	}{
		{Dimensionless, "dimensionless"},
		{length, "length^1"},
		{force, "length^1 time^-2 mass^1"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			assert.Equal(t, test.expected, test.input.String())
		})
	}
}

func TestLess(t *testing.T) {
	assert.True(t, Dimensionless.Less(length))
	assert.False(t, length.Less(Dimensionless))
	assert.False(t, length.Less(length))
}
