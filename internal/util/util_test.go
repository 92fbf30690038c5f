package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_MakeTextList(t *testing.T) {
	testCases := []struct {
		name   string
		input  []string
		expect string
	}{
		{"empty", nil, ""},
		{"one", []string{"a"}, "a"},
		{"two", []string{"a", "b"}, "a and b"},
		{"three", []string{"a", "b", "c"}, "a, b, and c"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, MakeTextList(tc.input))
		})
	}
}

func Test_OrderedKeys(t *testing.T) {
	m := map[string]int{"banana": 2, "apple": 1, "cherry": 3}
	assert.Equal(t, []string{"apple", "banana", "cherry"}, OrderedKeys(m))
}

func Test_OrderedKeys_empty(t *testing.T) {
	m := map[int]string{}
	assert.Empty(t, OrderedKeys(m))
}
