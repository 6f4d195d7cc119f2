package list_test

import (
	"fmt"

	"singleLinkedList/list"
)

func Example() {
	l := list.New(2, 4)
	l.PushFront(1)

	// Вставка после первого элемента и в самое начало одним и тем же вызовом
	l.InsertAfter(l.Begin().Next(), 3)
	l.InsertAfter(l.BeforeBegin(), 0)

	for it := l.CBegin(); !it.IsEnd(); it.Inc() {
		fmt.Println(it.Value())
	}
	fmt.Println("size:", l.GetSize())

	// Output:
	// 0
	// 1
	// 2
	// 3
	// 4
	// size: 5
}

func ExampleList_EraseAfter() {
	l := list.New("a", "b", "c", "d")
	// Удаляем каждый второй элемент
	for pos := l.Begin(); !pos.IsEnd() && !pos.Next().IsEnd(); pos.Inc() {
		l.EraseAfter(pos)
	}
	fmt.Println(l)

	// Output:
	// [a c]
}

func ExampleLess() {
	a, b := list.New(1, 2), list.New(1, 2, 3)
	fmt.Println(list.Less(a, b), list.Equal(a, b), list.Equal(a, a.Clone()))

	// Output:
	// true false true
}
