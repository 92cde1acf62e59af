// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package format_test

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikecarlton/dim/format"
	"github.com/mikecarlton/dim/si"
)

func TestScan(t *testing.T) {
	facet := si.DefaultFacet()

	tests := []struct {
		input    string
		expected format.FormattedQuantity
	}{
		{"5 m", format.FormattedQuantity{Value: 5, Symbol: "m"}},
		{"5m", format.FormattedQuantity{Value: 5, Symbol: "m"}},
		{"5_m", format.FormattedQuantity{Value: 5, Symbol: "m"}},
		{"5*m", format.FormattedQuantity{Value: 5, Symbol: "m"}},
		{"  -2.5e-3\ts", format.FormattedQuantity{Value: -2.5e-3, Symbol: "s"}},
		{"+.5 kg", format.FormattedQuantity{Value: 0.5, Symbol: "kg"}},
		{"5. m", format.FormattedQuantity{Value: 5, Symbol: "m"}},
		{"1E3 m", format.FormattedQuantity{Value: 1000, Symbol: "m"}},
		{"5eV", format.FormattedQuantity{Value: 5, Symbol: "eV"}},
		{"5e+V", format.FormattedQuantity{Value: 5, Symbol: "e"}},
		{"12.3 kg*m/s^2", format.FormattedQuantity{Value: 12.3, Symbol: "kg*m/s^2"}},
		{"1 m^-1", format.FormattedQuantity{Value: 1, Symbol: "m^-1"}},
		{"1 m^(-2)", format.FormattedQuantity{Value: 1, Symbol: "m^(-2)"}},
		{"1 (kg*m)/s^2", format.FormattedQuantity{Value: 1, Symbol: "(kg*m)/s^2"}},
		{"20 °C", format.FormattedQuantity{Value: 20, Symbol: "°C"}},
		{"3 Ω", format.FormattedQuantity{Value: 3, Symbol: "Ω"}},
		{"7", format.FormattedQuantity{Value: 7, Symbol: ""}},
		{"7,", format.FormattedQuantity{Value: 7, Symbol: ""}},
		{"5 m-3", format.FormattedQuantity{Value: 5, Symbol: "m"}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			s := facet.NewScanner(strings.NewReader(test.input))
			fq, err := s.Scan()
			require.NoError(t, err)
			assert.Equal(t, test.expected, fq)
		})
	}
}

func TestScanSequence(t *testing.T) {
	facet := si.DefaultFacet()
	s := facet.NewScanner(strings.NewReader("5 m 3 s\n2\t6 kg*m/s^2  "))

	var got []string
	for {
		q, err := s.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		assert.Equal(t, "resolved", s.State())
		got = append(got, facet.Format(q))
	}

	assert.Equal(t, []string{"5 m", "3 s", "2", "6 N"}, got)
	assert.Equal(t, "idle", s.State())
}

// A number followed by another number is a dimensionless quantity; the second
// one starts the next read.
func TestScanAdjacentNumbers(t *testing.T) {
	facet := si.DefaultFacet()
	s := facet.NewScanner(strings.NewReader("5 6 m"))

	fq, err := s.Scan()
	require.NoError(t, err)
	assert.Equal(t, format.FormattedQuantity{Value: 5}, fq)

	fq, err = s.Scan()
	require.NoError(t, err)
	assert.Equal(t, format.FormattedQuantity{Value: 6, Symbol: "m"}, fq)
}

// The scanner leaves the delimiter after a quantity for the caller.
func TestScanStopsAtDelimiter(t *testing.T) {
	facet := si.DefaultFacet()
	r := bufio.NewReader(strings.NewReader("5 m, 6 ft;"))
	s := facet.NewScanner(r)

	q, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "5 m", facet.Format(q))

	c, err := r.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(','), c)

	q, err = s.Next()
	require.NoError(t, err)
	assert.InDelta(t, 1.8288, q.Value(), 1e-12)

	assert.Equal(t, ";", s.Rest())
}

func TestScanRecovers(t *testing.T) {
	facet := si.DefaultFacet()
	s := facet.NewScanner(strings.NewReader("abc 5 furlong 5 m 3_"))

	_, err := s.Next()
	assert.ErrorIs(t, err, format.ErrMalformedInput)
	assert.Equal(t, "failed", s.State())

	_, err = s.Next()
	assert.ErrorIs(t, err, format.ErrSymbolNotFound)
	assert.Equal(t, "failed", s.State())

	q, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, "5 m", facet.Format(q))

	_, err = s.Next()
	assert.ErrorIs(t, err, format.ErrMalformedInput)

	_, err = s.Next()
	assert.Equal(t, io.EOF, err)
}
