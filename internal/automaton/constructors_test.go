package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EmptyStringNfa(t *testing.T) {
	a := EmptyStringNfa(NewIntAlphabet(2))
	assert.True(t, a.IsInLang(nil))
	assert.False(t, a.IsInLang([]Symbol{0}))
}

func Test_SigmaStar(t *testing.T) {
	a := SigmaStar(NewIntAlphabet(2))
	assert.True(t, a.IsInLang(nil))
	assert.True(t, a.IsInLang([]Symbol{0, 1, 0, 1}))
}

func Test_FromWord(t *testing.T) {
	a := FromWord(NewIntAlphabet(3), []Symbol{0, 1, 2})
	assert.True(t, a.IsInLang([]Symbol{0, 1, 2}))
	assert.False(t, a.IsInLang([]Symbol{0, 1}))
	assert.False(t, a.IsInLang([]Symbol{2, 1, 0}))
}

func Test_FromWord_emptyWord(t *testing.T) {
	a := FromWord(NewIntAlphabet(1), nil)
	assert.True(t, a.IsInLang(nil))
}
