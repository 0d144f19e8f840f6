package swimtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	table := []struct {
		input    string
		expected float64
	}{
		{input: "23.45", expected: 23.45},
		{input: "1:02:03.450", expected: 3723.45},
		{input: "02:03.45M", expected: 123.45},
		{input: "59.99", expected: 59.99},
		{input: " 25.00 ", expected: 25},
		{input: "1:00.00", expected: 60},
	}

	for _, row := range table {
		result, err := Parse(row.input)
		require.NoError(t, err, row.input)
		require.InDelta(t, row.expected, result, 0.0001, row.input)
	}
}

func TestParseInvalid(t *testing.T) {
	table := []string{
		"",
		"M",
		"abc",
		"1:2:3:4.5",
		"1:75.00",
		"-1:10.00",
	}

	for _, input := range table {
		_, err := Parse(input)
		require.Error(t, err, input)
	}
}
