package testkit

import "testing"

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("requested port not found")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	out := `{"level":"info","component":"api","message":"listening"}`
	MustContain(t, out, `"component":"api"`)
}
