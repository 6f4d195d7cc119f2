package list

import (
	"errors"

	"singleLinkedList/pkg"
)

var (
	// ErrEndIterator сообщает о разыменовании, инкременте или вставке/удалении
	// через итератор, не указывающий ни на какой узел (end)
	ErrEndIterator = errors.New("iterator does not reference a node")
	// ErrNoSuccessor сообщает о попытке удалить узел после последнего
	ErrNoSuccessor = errors.New("position has no successor to erase")
)

// violation паникует с *pkg.WrappedError: нарушение предусловия является ошибкой программиста,
// а не состоянием, из которого нужно восстанавливаться
func violation(funcName string, err error, comment string) {
	panic(pkg.NewWrappedError(funcName).Specify(err, comment))
}
