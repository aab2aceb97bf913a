package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemove(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		id       string
		expected []string
		found    bool
	}{
		{"middle", []string{"a", "b", "c"}, "b", []string{"a", "c"}, true},
		{"first", []string{"a", "b", "c"}, "a", []string{"b", "c"}, true},
		{"last", []string{"a", "b", "c"}, "c", []string{"a", "b"}, true},
		{"absent", []string{"a", "b"}, "x", []string{"a", "b"}, false},
		{"empty", []string{}, "x", []string{}, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			out, found := Remove(testCase.ids, testCase.id)
			assert.Equal(t, testCase.expected, out)
			assert.Equal(t, testCase.found, found)
		})
	}
}

func TestRemove_DoesNotModifyInput(t *testing.T) {
	ids := []string{"a", "b", "c"}
	Remove(ids, "b")
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestInsertAt(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		index    int
		expected []string
	}{
		{"front", []string{"a", "b"}, 0, []string{"x", "a", "b"}},
		{"middle", []string{"a", "b"}, 1, []string{"a", "x", "b"}},
		{"end", []string{"a", "b"}, 2, []string{"a", "b", "x"}},
		{"past_end_appends", []string{"a", "b"}, 7, []string{"a", "b", "x"}},
		{"negative_appends", []string{"a", "b"}, -1, []string{"a", "b", "x"}},
		{"empty", []string{}, 0, []string{"x"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, InsertAt(testCase.ids, "x", testCase.index))
		})
	}
}

func TestInsertBefore(t *testing.T) {
	tests := []struct {
		name     string
		ids      []string
		target   string
		expected []string
	}{
		{"before_first", []string{"a", "b"}, "a", []string{"x", "a", "b"}},
		{"before_last", []string{"a", "b"}, "b", []string{"a", "x", "b"}},
		{"missing_target_appends", []string{"a", "b"}, "z", []string{"a", "b", "x"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, InsertBefore(testCase.ids, "x", testCase.target))
		})
	}
}

func TestMove_CrossScope(t *testing.T) {
	src := []string{"x", "a", "b"}
	dst := []string{"y", "z"}

	newSrc, newDst := Move(src, dst, "x", 0)

	assert.Equal(t, []string{"a", "b"}, newSrc)
	assert.Equal(t, []string{"x", "y", "z"}, newDst)
}

func TestMove_SameScope(t *testing.T) {
	ids := []string{"a", "b", "c"}

	_, newDst := Move(ids, ids, "c", 0)

	assert.Equal(t, []string{"c", "a", "b"}, newDst)
}

func TestMove_AppendFallback(t *testing.T) {
	src := []string{"x"}
	dst := []string{"y", "z"}

	newSrc, newDst := Move(src, dst, "x", -1)

	assert.Equal(t, []string{}, newSrc)
	assert.Equal(t, []string{"y", "z", "x"}, newDst)
}

func TestMove_Idempotent(t *testing.T) {
	src := []string{"a", "b"}
	dst := []string{"y", "x", "z"}

	// x already sits in the destination; moving it again to the same index
	// reproduces the same ordering.
	_, newDst := Move(src, dst, "x", 1)

	assert.Equal(t, []string{"y", "x", "z"}, newDst)
}
