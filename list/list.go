// Package list реализует обобщенный односвязный список с фиктивным узлом перед первым элементом.
//
// Фиктивный узел позволяет вставлять и удалять элементы "после позиции" одним и тем же кодом
// как в середине списка, так и в его начале:
//
//	l := list.New(1, 2, 3)
//	l.InsertAfter(l.BeforeBegin(), 0) // [0 1 2 3]
//	l.EraseAfter(l.Begin())           // [0 2 3]
//
// Нулевое значение List готово к использованию. Список не потокобезопасен.
// Список нельзя копировать по значению после первого использования: копия разделит цепочку узлов
// с оригиналом. Для копирования служат Clone и Assign.
//
// Нарушение предусловий (разыменование end-итератора, EraseAfter у последнего узла)
// приводит к панике со значением *pkg.WrappedError, оборачивающим ErrEndIterator или ErrNoSuccessor.
package list

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/emirpasic/gods/utils"
)

type List[T any] struct {
	head node[T] // Фиктивный узел, значение не используется, head.next указывает на первый узел
	size int     // Количество узлов без учета фиктивного
}

// New создает список из значений values в том же порядке. Без аргументов создает пустой список.
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	l.build(slices.Values(values))
	return l
}

// FromSeq создает список из последовательности seq в порядке ее обхода
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := new(List[T])
	l.build(seq)
	return l
}

// Clone возвращает независимую копию списка
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	c.build(l.All())
	return c
}

// CloneFunc копирует список src, пропуская каждый элемент через copyFn.
// Если copyFn вернул ошибку, частично построенная копия отбрасывается и возвращается nil, error.
func CloneFunc[T any](src *List[T], copyFn func(T) (T, error)) (*List[T], error) {
	c := new(List[T])
	if err := c.buildFunc(src.All(), copyFn); err != nil {
		return nil, err
	}
	return c, nil
}

// Assign делает l копией src. Присваивание самому себе ничего не меняет.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}
	tmp := src.Clone()
	l.Swap(tmp)
}

// AssignFunc делает l копией src, пропуская каждый элемент через copyFn.
// При ошибке l остается в прежнем состоянии.
func (l *List[T]) AssignFunc(src *List[T], copyFn func(T) (T, error)) error {
	tmp, err := CloneFunc(src, copyFn)
	if err != nil {
		return err
	}
	l.Swap(tmp)
	return nil
}

// build заполняет l значениями seq. Список строится во временном экземпляре и
// обменивается с l только целиком, так что l никогда не бывает частично заполнен.
func (l *List[T]) build(seq iter.Seq[T]) {
	_ = l.buildFunc(seq, nil)
}

func (l *List[T]) buildFunc(seq iter.Seq[T], copyFn func(T) (T, error)) error {
	var tmp List[T]
	current := tmp.BeforeBegin()
	for v := range seq {
		if copyFn != nil {
			var err error
			if v, err = copyFn(v); err != nil {
				tmp.Clear()
				return err
			}
		}
		current = tmp.InsertAfter(current, v)
	}
	l.Swap(&tmp)
	tmp.Clear()
	return nil
}

// Swap обменивает содержимое списков за O(1), не затрагивая сами узлы
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// GetSize возвращает количество элементов в списке за O(1)
func (l *List[T]) GetSize() int {
	return l.size
}

// IsEmpty сообщает, пуст ли список, за O(1)
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front возвращает первый элемент. Если список пуст, возвращает нулевое значение и false.
func (l *List[T]) Front() (value T, ok bool) {
	if l.head.next == nil {
		return value, false
	}
	return l.head.next.value, true
}

// PushFront вставляет значение в начало списка за O(1)
func (l *List[T]) PushFront(value T) {
	l.head.next = &node[T]{value: value, next: l.head.next}
	l.size++
}

// PopFront удаляет первый элемент за O(1). Для пустого списка ничего не делает.
func (l *List[T]) PopFront() {
	if l.IsEmpty() {
		return
	}
	first := l.head.next
	l.head.next = first.next
	first.next = nil
	l.size--
}

// InsertAfter вставляет значение сразу после позиции pos и возвращает итератор на вставленный элемент.
// pos не должна быть end. Вставка не делает недействительным ни один итератор.
func (l *List[T]) InsertAfter(pos Position[T], value T) Iterator[T] {
	prev := pos.position()
	if prev == nil {
		violation("(l *List[T]) InsertAfter()", ErrEndIterator, "pos.node == nil")
	}
	// Узел создается до изменения связей
	inserted := &node[T]{value: value, next: prev.next}
	prev.next = inserted
	l.size++
	return Iterator[T]{node: inserted}
}

// EraseAfter удаляет элемент, следующий за позицией pos, и возвращает итератор на элемент,
// ставший следующим за pos (end, если удален последний).
// У pos обязан быть следующий элемент. Итераторы на удаленный элемент становятся недействительными.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	prev := pos.position()
	if prev == nil {
		violation("(l *List[T]) EraseAfter()", ErrEndIterator, "pos.node == nil")
	}
	erased := prev.next
	if erased == nil {
		violation("(l *List[T]) EraseAfter()", ErrNoSuccessor, "pos.node.next == nil")
	}
	prev.next = erased.next
	erased.next = nil
	l.size--
	return Iterator[T]{node: prev.next}
}

// Clear удаляет все элементы, отсоединяя узлы по одному от начала к концу
func (l *List[T]) Clear() {
	for l.head.next != nil {
		first := l.head.next
		l.head.next = first.next
		first.next = nil
		l.size--
	}
}

// Begin возвращает итератор на первый элемент (end для пустого списка)
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{node: l.head.next}
}

// End возвращает итератор, следующий за последним элементом
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{node: l.head.next}
}

func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// BeforeBegin возвращает итератор на фиктивный узел перед первым элементом.
// Его можно передавать в InsertAfter и EraseAfter и инкрементировать, но нельзя разыменовывать.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{node: &l.head}
}

// CBeforeBegin это BeforeBegin только для чтения
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{node: &l.head}
}

// All возвращает последовательность элементов от начала к концу
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values возвращает элементы списка в виде среза
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String возвращает список в виде [v1 v2 ...]
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for it := l.CBegin(); !it.IsEnd(); it.Inc() {
		if !it.Equal(l.CBegin()) {
			sb.WriteByte(' ')
		}
		sb.WriteString(utils.ToString(it.Value()))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Print выводит список в консоль
func (l *List[T]) Print() {
	fmt.Println(l.String())
}
