package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCounter_EvictsOnZero guards the coverage invariant: a symbol whose
// count reaches zero must leave the map, not linger with a zero value.
func TestCounter_EvictsOnZero(t *testing.T) {
	c := make(counter[byte])
	c.push('a')
	c.push('a')
	c.push('b')
	assert.Len(t, c, 2)

	c.pop('a')
	assert.Equal(t, 1, c['a'])
	assert.Len(t, c, 2)

	c.pop('a')
	_, present := c['a']
	assert.False(t, present, "zero-count symbol must be evicted")
	assert.Len(t, c, 1)

	c.pop('b')
	assert.Empty(t, c)
}

// TestCounter_PopAbsent keeps the map clean when popping an unknown symbol.
func TestCounter_PopAbsent(t *testing.T) {
	c := make(counter[rune])
	c.pop('z')
	assert.Empty(t, c)
}
