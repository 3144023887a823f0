package script

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"tessera/pkg/component"
)

func testEngine(t *testing.T) (*Engine, *component.Interface) {
	t.Helper()

	label := component.New(component.KindLabel, "greeting").SetText("hi")
	root := component.New(component.KindPanel, "root").Append(label)
	ui := component.NewInterface(root, nil, nil, zerolog.Nop())

	e := New(zerolog.Nop())
	e.Bind(ui)
	return e, ui
}

func TestRun(t *testing.T) {
	e, _ := testEngine(t)
	require.NoError(t, e.Run(`var x = 1 + 2`))
	require.Error(t, e.Run(`this is not javascript`))
}

func TestBindByID(t *testing.T) {
	e, ui := testEngine(t)

	require.NoError(t, e.Run(`ui.byId("greeting").setText("hello")`))
	label := ui.Root().Children()[0]
	require.Equal(t, "hello", label.Text())

	require.NoError(t, e.Run(`ui.byId("greeting").addClass("big")`))
	require.NoError(t, e.Run(`
		if (ui.byId("nope") !== null) throw new Error("expected null");
	`))
}

func TestValueReevaluates(t *testing.T) {
	e, _ := testEngine(t)
	require.NoError(t, e.Run(`var count = 1`))

	v, err := e.Value("count", `"n=" + count`)
	require.NoError(t, err)
	require.Equal(t, "n=1", v.String())

	require.NoError(t, e.Run(`count = 2`))
	require.Equal(t, "n=2", v.String())
}

func TestValueBool(t *testing.T) {
	e, _ := testEngine(t)

	v, err := e.Value("flag", `1 < 2`)
	require.NoError(t, err)
	require.True(t, v.Bool())
}

func TestValueCompileError(t *testing.T) {
	e, _ := testEngine(t)
	_, err := e.Value("bad", `((`)
	require.Error(t, err)
}

func TestValueRuntimeErrorYieldsEmpty(t *testing.T) {
	e, _ := testEngine(t)
	v, err := e.Value("boom", `undefinedFn()`)
	require.NoError(t, err)
	require.Equal(t, "", v.String())
	require.False(t, v.Bool())
}

func TestTriggerHandler(t *testing.T) {
	e, ui := testEngine(t)

	fn, err := e.Trigger("onTap", `self.setText("tapped " + self.id)`)
	require.NoError(t, err)

	label := ui.Root().Children()[0]
	fn(label)
	require.Equal(t, "tapped greeting", label.Text())
}

func TestStatic(t *testing.T) {
	require.Equal(t, "x", Static("x").String())
	require.True(t, Static("x").Bool())
	require.False(t, Static("").Bool())
	require.False(t, Static("false").Bool())
}
