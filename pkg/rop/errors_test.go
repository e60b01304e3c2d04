package rop

import (
	"fmt"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCauseChain_FromEscalationToOriginal(t *testing.T) {
	t.Parallel()

	_, err := Of(ioProducer).GetOrThrowWith(errors.New("config unavailable"))
	require.Error(t, err)

	chain := CauseChain(err)
	require.Len(t, chain, 3)
	assert.Same(t, errIO, chain[1])
	assert.Equal(t, fs.ErrNotExist, chain[2])
	assert.Equal(t, fs.ErrNotExist, RootCause(err))
}

func TestCauseChain_Unchecked(t *testing.T) {
	t.Parallel()

	r := recoverPanic(func() { Of(ioProducer).GetOrThrowRuntime() })
	err, ok := r.(error)
	require.True(t, ok)

	chain := CauseChain(err)
	require.Len(t, chain, 3)
	assert.IsType(t, &UncheckedError{}, chain[0])
	assert.Same(t, errIO, chain[1])
}

func TestCauseChain_Nil(t *testing.T) {
	t.Parallel()

	assert.Empty(t, CauseChain(nil))
	assert.Nil(t, RootCause(nil))
}

func TestEscalationError_Format(t *testing.T) {
	t.Parallel()

	_, err := Of(ioProducer).GetOrThrowWith(fmt.Errorf("load failed"))
	require.Error(t, err)

	assert.Equal(t, "load failed", fmt.Sprintf("%v", err))
	assert.Equal(t, `"load failed"`, fmt.Sprintf("%q", err))
	assert.Contains(t, fmt.Sprintf("%+v", err), "caused by: read config.yaml")
}

func TestInvalidArgument_Message(t *testing.T) {
	t.Parallel()

	err := invalidArgument("map", "transformer")
	assert.Equal(t, "map: transformer is nil: rop: invalid argument", err.Error())
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestCategory_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "*io/fs.PathError", CategoryOf[*fs.PathError]().String())
	assert.Equal(t, "error", CategoryOf[error]().String())
	assert.Equal(t, "<none>", Category{}.String())
	assert.False(t, Category{}.Matches(errIO))
	assert.False(t, CategoryOf[error]().Matches(nil))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var e *myErr
	var err error = e

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(err))
	assert.False(t, IsNil(errIO))
	assert.False(t, IsNil(interruptedError{}))
}
