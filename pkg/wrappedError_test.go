package pkg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestWrappedError(t *testing.T) {
	errBase := errors.New("base")

	t.Run("EmptyIsNotAnError", func(t *testing.T) {
		wErr := NewWrappedError("f()")
		check.Equal(t, "", wErr.Error())
		check.True(t, wErr.Err() == nil)
		check.True(t, wErr.Unwrap() == nil)
	})

	t.Run("SpecifyNilKeepsState", func(t *testing.T) {
		wErr := NewWrappedError("f()").Specify(errBase, "first")
		wErr.Specify(nil, "second")
		check.Equal(t, "'first' in function 'f()' invoked 'base'", wErr.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		err := NewWrappedError("f()").Specify(errBase, "g()").Err()
		check.True(t, errors.Is(err, errBase))

		var wErr *WrappedError
		check.True(t, errors.As(err, &wErr))
	})

	t.Run("LogFile", func(t *testing.T) {
		fileName := filepath.Join(t.TempDir(), "log.txt")
		wErr, err := NewWrappedErrorWithFile("f()", fileName)
		assert.NotError(t, err)

		wErr.LogMsg("hello")
		wErr.LogError()
		wErr.Specify(errBase, "g()").LogError()
		wErr.Close()

		data, err := os.ReadFile(fileName)
		assert.NotError(t, err)
		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		check.Equal(t, 2, len(lines))
		check.True(t, strings.Contains(lines[0], "(msg) 'hello' from function 'f()'"))
		check.True(t, strings.Contains(lines[1], "[ERROR] 'g()' in function 'f()' invoked 'base'"))
	})

	t.Run("LogFileOpenFailure", func(t *testing.T) {
		_, err := NewWrappedErrorWithFile("f()", filepath.Join(t.TempDir(), "missing", "log.txt"))
		check.True(t, err != nil)
	})
}
