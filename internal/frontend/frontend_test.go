package frontend

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyForRune(t *testing.T) {
	tests := []struct {
		r   rune
		key int
	}{
		{'1', 0x1}, {'4', 0xC},
		{'q', 0x4}, {'R', 0xD},
		{'s', 0x8}, {'f', 0xE},
		{'z', 0xA}, {'X', 0x0}, {'v', 0xF},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			key, ok := KeyForRune(tt.r)
			assert.True(t, ok)
			assert.Equal(t, tt.key, key)
		})
	}

	_, ok := KeyForRune('m')
	assert.False(t, ok)
}

func TestLayoutIsComplete(t *testing.T) {
	seen := map[rune]bool{}
	for _, r := range Layout {
		assert.True(t, r != 0)
		assert.False(t, seen[r])
		seen[r] = true
	}
}

func TestControlForRune(t *testing.T) {
	var ctl Controls
	assert.True(t, ControlForRune('p', &ctl))
	assert.True(t, ctl.Pause)
	assert.True(t, ControlForRune('P', &ctl))
	assert.False(t, ctl.Pause)

	assert.True(t, ControlForRune('n', &ctl))
	assert.True(t, ctl.Step)
	assert.True(t, ControlForRune(KeyQuit, &ctl))
	assert.True(t, ctl.Quit)

	assert.False(t, ControlForRune('q', &ctl))
}
