package pkg

import (
	"fmt"
	"log"
	"os"
	"time"
)

const (
	errorTag   = "[ERROR]"
	messageTag = "(msg)"
)

// WrappedError оборачивает ошибку вместе с именем функции, где она произошла, и комментарием.
// Реализует интерфейс error и поддерживает errors.Is / errors.As через Unwrap.
// Дополнительно умеет выводить ошибки и обычные сообщения в лог (и в файл, если он открыт).
type WrappedError struct {
	functionName string   // Имя функции (где произошла ошибка?)
	comment      string   // Комментарий к ошибке (что именно вызвало ошибку?)
	err          error    // Обернутая ошибка
	timestamp    string   // Время последнего вызова Specify() с ненулевой ошибкой
	logFile      *os.File // Файл для записи логов, может быть nil
}

// NewWrappedError создает экземпляр с именем функции, но без ошибки.
func NewWrappedError(funcName string) *WrappedError {
	return &WrappedError{functionName: funcName, timestamp: "[]"}
}

// NewWrappedErrorWithFile аналогична NewWrappedError, но дополнительно пишет логи в файл fileName.
// Если файл не удалось открыть, возвращается nil, error.
func NewWrappedErrorWithFile(funcName, fileName string) (*WrappedError, error) {
	file, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &WrappedError{functionName: funcName, timestamp: "[]", logFile: file}, nil
}

// Specify запоминает ошибку и комментарий, если err не nil. Иначе экземпляр не меняется.
func (e *WrappedError) Specify(err error, comment string) *WrappedError {
	if err != nil {
		e.err = err
		e.comment = comment
		e.timestamp = fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	}
	return e
}

// Err возвращает сам экземпляр как error, если ошибка задана, и nil в противном случае.
// Позволяет не получить ненулевой интерфейс с пустой ошибкой внутри.
func (e *WrappedError) Err() error {
	if e.err == nil {
		return nil
	}
	return e
}

func (e *WrappedError) Error() string {
	if e.err == nil {
		return ""
	}
	return fmt.Sprintf("'%s' in function '%s' invoked '%s'", e.comment, e.functionName, e.err.Error())
}

// Unwrap возвращает обернутую ошибку
func (e *WrappedError) Unwrap() error {
	return e.err
}

// LogError выводит ошибку в лог и в файл логов (если он открыт). Без ошибки ничего не делает.
func (e *WrappedError) LogError() {
	if e.err == nil {
		return
	}
	log.Println(e.timestamp, errorTag, e.Error())
	e.writeFile(e.timestamp, errorTag, e.Error())
}

// LogMsg выводит сообщение (не ошибку) в лог и в файл логов (если он открыт).
func (e *WrappedError) LogMsg(msg string) {
	msgTimestamp := fmt.Sprintf("[%s]", time.Now().Format(time.RFC3339))
	text := fmt.Sprintf("'%s' from function '%s'", msg, e.functionName)
	log.Println(msgTimestamp, messageTag, text)
	e.writeFile(msgTimestamp, messageTag, text)
}

func (e *WrappedError) writeFile(args ...any) {
	if e.logFile == nil {
		return
	}
	if _, err := fmt.Fprintln(e.logFile, args...); err != nil {
		log.Println("Failed to write log into opened file:", err)
	}
}

// Close закрывает файл логов, если он был открыт.
func (e *WrappedError) Close() {
	if e.logFile != nil {
		_ = e.logFile.Close()
	}
}
