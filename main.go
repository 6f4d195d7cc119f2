package main

import (
	"errors"
	"os"
	"strconv"

	"singleLinkedList/list"
	"singleLinkedList/pkg"
)

// Демонстрация операций списка. Аргумент выбирает раздел: basic, insert, copy, compare.
// Без аргумента выполняются все разделы.
func main() {
	section := ""
	if len(os.Args) >= 2 {
		section = os.Args[1]
	}

	switch section {
	case "basic":
		basicOps()
	case "insert":
		insertErase()
	case "copy":
		copyAssign()
	case "compare":
		compare()
	default:
		basicOps()
		insertErase()
		copyAssign()
		compare()
	}
}

func basicOps() {
	wErr := pkg.NewWrappedError("basicOps()")

	var l list.List[int]
	wErr.LogMsg("empty=" + strconv.FormatBool(l.IsEmpty()) + " size=" + strconv.Itoa(l.GetSize()))

	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	wErr.LogMsg("after push_front: " + l.String())

	l.PopFront()
	wErr.LogMsg("after pop_front: " + l.String())

	l.Clear()
	wErr.LogMsg("after clear: " + l.String())
}

func insertErase() {
	wErr := pkg.NewWrappedError("insertErase()")

	l := list.New(1, 2, 3, 4, 5)
	wErr.LogMsg("seed: " + l.String())

	l.InsertAfter(l.BeforeBegin(), 0)
	pos := l.InsertAfter(l.Begin().Next(), 100)
	wErr.LogMsg("after insert: " + l.String())

	l.EraseAfter(l.BeforeBegin())
	l.EraseAfter(pos)
	wErr.LogMsg("after erase: " + l.String())

	// Удаление после последнего элемента нарушает предусловие
	func() {
		defer func() {
			if r := recover(); r != nil {
				var violation *pkg.WrappedError
				if err, ok := r.(error); ok && errors.As(err, &violation) {
					violation.LogError()
					return
				}
				panic(r)
			}
		}()
		last := l.Begin()
		for !last.Next().IsEnd() {
			last.Inc()
		}
		l.EraseAfter(last)
	}()
}

func copyAssign() {
	wErr := pkg.NewWrappedError("copyAssign()")

	a := list.New("x", "y", "z")
	b := a.Clone()
	a.PushFront("w")
	wErr.LogMsg("a=" + a.String() + " b=" + b.String())

	b.Assign(a)
	wErr.LogMsg("after assign b=" + b.String())

	numbers := list.New("1", "2", "three")
	err := b.AssignFunc(numbers, func(s string) (string, error) {
		if _, err := strconv.Atoi(s); err != nil {
			return "", err
		}
		return s, nil
	})
	wErr.Specify(err, "b.AssignFunc(numbers, ...)").LogError()
	wErr.LogMsg("b unchanged=" + b.String())

	list.Swap(a, b)
	wErr.LogMsg("after swap a=" + a.String() + " b=" + b.String())
}

func compare() {
	wErr := pkg.NewWrappedError("compare()")

	a, b := list.New(1, 2), list.New(1, 2, 3)
	wErr.LogMsg(a.String() + " < " + b.String() + ": " + strconv.FormatBool(list.Less(a, b)))
	wErr.LogMsg(a.String() + " == " + b.String() + ": " + strconv.FormatBool(list.Equal(a, b)))
	wErr.LogMsg(b.String() + " >= " + a.String() + ": " + strconv.FormatBool(list.GreaterOrEqual(b, a)))
}
