package list

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

// container представляет список в виде containers.Container из gods
type container[T any] struct {
	l *List[T]
}

var _ containers.Container = container[int]{}

// Container возвращает представление списка для кода, работающего с контейнерами gods.
// Представление не копирует элементы: изменения списка сразу видны через него и наоборот.
func (l *List[T]) Container() containers.Container {
	return container[T]{l: l}
}

func (c container[T]) Empty() bool    { return c.l.IsEmpty() }
func (c container[T]) Size() int      { return c.l.GetSize() }
func (c container[T]) Clear()         { c.l.Clear() }
func (c container[T]) String() string { return "SingleLinkedList\n" + c.l.String() }

func (c container[T]) Values() []interface{} {
	values := make([]interface{}, 0, c.l.GetSize())
	for v := range c.l.All() {
		values = append(values, v)
	}
	return values
}

// CompareWith лексикографически сравнивает списки компаратором gods.
// Возвращает отрицательное число, если lhs < rhs, ноль при равенстве и положительное, если lhs > rhs.
func CompareWith[T any](lhs, rhs *List[T], comparator utils.Comparator) int {
	l, r := lhs.CBegin(), rhs.CBegin()
	for ; !l.IsEnd() && !r.IsEnd(); l, r = l.Next(), r.Next() {
		if c := comparator(l.Value(), r.Value()); c != 0 {
			return c
		}
	}
	switch {
	case l.IsEnd() && r.IsEnd():
		return 0
	case l.IsEnd():
		return -1
	default:
		return 1
	}
}
