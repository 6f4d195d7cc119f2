package list

// Position это позиция в списке, после которой можно вставить или удалить элемент.
// Ей удовлетворяют Iterator и ConstIterator, других реализаций быть не может.
type Position[T any] interface {
	position() *node[T]
}

// Iterator это однонаправленный итератор, допускающий изменение элементов списка.
// Не владеет узлом, на который указывает. Нулевое значение равно end.
//
// Итератор становится недействительным, если удален узел, на который он указывает.
// Вставка после любой позиции не делает недействительным ни один итератор.
type Iterator[T any] struct {
	node *node[T]
}

// ConstIterator это однонаправленный итератор, дающий доступ к элементам только для чтения.
// Получается из Iterator методом Const, обратного преобразования нет.
type ConstIterator[T any] struct {
	node *node[T]
}

func (it Iterator[T]) position() *node[T]      { return it.node }
func (it ConstIterator[T]) position() *node[T] { return it.node }

// Const возвращает итератор только для чтения на ту же позицию
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T](it)
}

// IsEnd сообщает, что итератор не указывает ни на какой узел
func (it Iterator[T]) IsEnd() bool {
	return it.node == nil
}

// Equal сообщает, что итераторы указывают на один и тот же узел
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.node == other.node
}

// Next возвращает итератор на следующий узел, не меняя it.
// Вызов у end-итератора паникует.
func (it Iterator[T]) Next() Iterator[T] {
	mustDeref(it.node, "(it Iterator[T]) Next()")
	return Iterator[T]{node: it.node.next}
}

// Inc продвигает итератор на следующий узел и возвращает новое значение (префиксный инкремент)
func (it *Iterator[T]) Inc() Iterator[T] {
	mustDeref(it.node, "(it *Iterator[T]) Inc()")
	it.node = it.node.next
	return *it
}

// PostInc продвигает итератор на следующий узел и возвращает прежнее значение (постфиксный инкремент)
func (it *Iterator[T]) PostInc() Iterator[T] {
	mustDeref(it.node, "(it *Iterator[T]) PostInc()")
	old := *it
	it.node = it.node.next
	return old
}

// Value возвращает значение текущего элемента.
// Вызов у end-итератора или у BeforeBegin недопустим.
func (it Iterator[T]) Value() T {
	mustDeref(it.node, "(it Iterator[T]) Value()")
	return it.node.value
}

// Ptr дает доступ к полям текущего элемента по месту
func (it Iterator[T]) Ptr() *T {
	mustDeref(it.node, "(it Iterator[T]) Ptr()")
	return &it.node.value
}

// Set заменяет значение текущего элемента
func (it Iterator[T]) Set(value T) {
	mustDeref(it.node, "(it Iterator[T]) Set()")
	it.node.value = value
}

func (it ConstIterator[T]) IsEnd() bool {
	return it.node == nil
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.node == other.node
}

func (it ConstIterator[T]) Next() ConstIterator[T] {
	mustDeref(it.node, "(it ConstIterator[T]) Next()")
	return ConstIterator[T]{node: it.node.next}
}

func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	mustDeref(it.node, "(it *ConstIterator[T]) Inc()")
	it.node = it.node.next
	return *it
}

func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	mustDeref(it.node, "(it *ConstIterator[T]) PostInc()")
	old := *it
	it.node = it.node.next
	return old
}

func (it ConstIterator[T]) Value() T {
	mustDeref(it.node, "(it ConstIterator[T]) Value()")
	return it.node.value
}

func mustDeref[T any](n *node[T], funcName string) {
	if n == nil {
		violation(funcName, ErrEndIterator, "it.node == nil")
	}
}
