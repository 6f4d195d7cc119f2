package list

import (
	"testing"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
	"github.com/tychoish/fun/assert/check"
)

func TestContainer(t *testing.T) {
	t.Run("ReflectsList", func(t *testing.T) {
		l := New(3, 1, 2)
		c := l.Container()
		check.Equal(t, 3, c.Size())
		check.True(t, !c.Empty())

		values := c.Values()
		check.Equal(t, 3, len(values))
		check.Equal(t, 3, values[0].(int))

		l.PushFront(0)
		check.Equal(t, 4, c.Size())
		check.Equal(t, "SingleLinkedList\n[0 3 1 2]", c.String())
	})

	t.Run("ClearClearsList", func(t *testing.T) {
		l := New("a", "b")
		l.Container().Clear()
		check.True(t, l.IsEmpty())
	})

	t.Run("SortedValues", func(t *testing.T) {
		l := New(3, 1, 2)
		sorted := containers.GetSortedValues(l.Container(), utils.IntComparator)
		check.Equal(t, 1, sorted[0].(int))
		check.Equal(t, 2, sorted[1].(int))
		check.Equal(t, 3, sorted[2].(int))
		// Сортировка работает с копией значений
		check.Equal(t, "[3 1 2]", l.String())
	})
}

func TestCompareWith(t *testing.T) {
	for _, test := range []struct {
		name     string
		lhs, rhs []string
		want     int
	}{
		{name: "Empty", want: 0},
		{name: "Equal", lhs: []string{"a", "b"}, rhs: []string{"a", "b"}, want: 0},
		{name: "Prefix", lhs: []string{"a"}, rhs: []string{"a", "b"}, want: -1},
		{name: "Longer", lhs: []string{"a", "b"}, rhs: []string{"a"}, want: 1},
		{name: "Element", lhs: []string{"a", "c"}, rhs: []string{"a", "b", "z"}, want: 1},
	} {
		t.Run(test.name, func(t *testing.T) {
			got := CompareWith(New(test.lhs...), New(test.rhs...), utils.StringComparator)
			check.Equal(t, test.want, sign(got))
		})
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
