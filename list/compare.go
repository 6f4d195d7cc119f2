package list

import "cmp"

// Equal сообщает, что списки одного размера и поэлементно равны
func Equal[T comparable](lhs, rhs *List[T]) bool {
	return EqualFunc(lhs, rhs, func(a, b T) bool { return a == b })
}

func NotEqual[T comparable](lhs, rhs *List[T]) bool {
	return !Equal(lhs, rhs)
}

// EqualFunc аналогична Equal, но сравнивает элементы функцией eq
func EqualFunc[T any](lhs, rhs *List[T], eq func(a, b T) bool) bool {
	if lhs.GetSize() != rhs.GetSize() {
		return false
	}
	for l, r := lhs.CBegin(), rhs.CBegin(); !l.IsEnd(); l, r = l.Next(), r.Next() {
		if !eq(l.Value(), r.Value()) {
			return false
		}
	}
	return true
}

// Less сравнивает списки лексикографически
func Less[T cmp.Ordered](lhs, rhs *List[T]) bool {
	return LessFunc(lhs, rhs, func(a, b T) bool { return a < b })
}

// LessFunc аналогична Less, но сравнивает элементы функцией less
func LessFunc[T any](lhs, rhs *List[T], less func(a, b T) bool) bool {
	l, r := lhs.CBegin(), rhs.CBegin()
	for ; !l.IsEnd() && !r.IsEnd(); l, r = l.Next(), r.Next() {
		// Первая пара различающихся элементов решает результат
		if less(l.Value(), r.Value()) {
			return true
		}
		if less(r.Value(), l.Value()) {
			return false
		}
	}
	// Общий префикс совпал: меньше тот, что короче
	return l.IsEnd() && !r.IsEnd()
}

// Остальные сравнения выражены через Less и Equal и каждый раз заново обходят списки

func LessOrEqual[T cmp.Ordered](lhs, rhs *List[T]) bool {
	return Less(lhs, rhs) || Equal(lhs, rhs)
}

func Greater[T cmp.Ordered](lhs, rhs *List[T]) bool {
	return Less(rhs, lhs)
}

func GreaterOrEqual[T cmp.Ordered](lhs, rhs *List[T]) bool {
	return !Less(lhs, rhs)
}

// Swap обменивает содержимое двух списков, см. (*List[T]).Swap
func Swap[T any](lhs, rhs *List[T]) {
	lhs.Swap(rhs)
}
