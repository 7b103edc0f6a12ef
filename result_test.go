package latin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_Ok(t *testing.T) {
	r := Ok(42)

	require.True(t, r.OK())
	require.Nil(t, r.Err())

	v, err := r.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)

	require.Equal(t, 42, r.MustGet())
	require.Equal(t, 42, r.OrElse(-1))
}

func TestResult_Fail(t *testing.T) {
	cause := errors.New("boom")
	oe := E("file", "write", "./x", cause)
	r := Fail[int](oe)

	require.False(t, r.OK())
	require.Same(t, oe, r.Err())

	v, err := r.Get()
	require.Zero(t, v)
	require.ErrorIs(t, err, cause)

	require.Equal(t, -1, r.OrElse(-1))
	require.Panics(t, func() { r.MustGet() })
}

func TestResult_Map(t *testing.T) {
	r := Map(Ok(2), func(v int) int { return v * 3 })
	require.Equal(t, 6, r.MustGet())

	oe := E("file", "open", "./x", errors.New("boom"))
	f := Map(Fail[int](oe), func(v int) int {
		t.Fatal("map ran on a failure")
		return 0
	})
	require.Same(t, oe, f.Err())
}

func TestResult_Then(t *testing.T) {
	r := Then(Ok(2), func(v int) Result[string] {
		return Ok("ok")
	})
	require.Equal(t, "ok", r.MustGet())

	oe := E("file", "open", "./x", errors.New("boom"))
	f := Then(Fail[int](oe), func(v int) Result[string] {
		t.Fatal("then ran on a failure")
		return Ok("")
	})
	require.Same(t, oe, f.Err())
}

func TestOkUnit(t *testing.T) {
	require.True(t, OkUnit().OK())
}
