package list

// node это узел списка. Узлом владеет ровно одна ссылка: next предшественника
// (или next фиктивного узла списка для первого узла).
type node[T any] struct {
	value T
	next  *node[T] // Следующий узел, nil у последнего
}
