package commands

import (
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	args, ok := Parse("  mode   2 ")
	assert.True(t, ok)
	assert.Equal(t, []string{"mode", "2"}, args)

	_, ok = Parse("   ")
	assert.False(t, ok)
}

func TestExecute(t *testing.T) {
	var out []string
	r := NewRegistry(func(line string) { out = append(out, line) })

	var got []string
	r.Register("mode", "mode <1-4>", "switch scene", nil, func(args []string) error {
		got = args
		return nil
	})
	require.NoError(t, r.ExecuteLine("mode 3"))
	assert.Equal(t, []string{"3"}, got)

	assert.ErrorIs(t, r.ExecuteLine(""), ErrEmpty)
	assert.ErrorIs(t, r.Execute(nil), ErrEmpty)

	err := r.ExecuteLine("warp 9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Empty(t, out)
}

func TestExecuteFlags(t *testing.T) {
	r := NewRegistry(nil)
	fs := flag.NewFlagSet("save", flag.ContinueOnError)
	path := fs.String("path", "config/viewer.json", "prefs file")
	var rest []string
	r.Register("save", "save [-path file]", "write prefs", fs, func(args []string) error {
		rest = args
		return nil
	})

	require.NoError(t, r.ExecuteLine("save -path /tmp/p.json extra"))
	assert.Equal(t, "/tmp/p.json", *path)
	assert.Equal(t, []string{"extra"}, rest)

	err := r.ExecuteLine("save -bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save:")
}

func TestRunErrorPropagates(t *testing.T) {
	r := NewRegistry(nil)
	boom := errors.New("boom")
	r.Register("fail", "fail", "always fails", nil, func([]string) error { return boom })
	assert.ErrorIs(t, r.ExecuteLine("fail"), boom)
}

func TestHelp(t *testing.T) {
	var out []string
	r := NewRegistry(func(line string) { out = append(out, line) })
	r.Register("fps", "fps on|off", "toggle the FPS counter", nil, func([]string) error { return nil })
	r.Register("audio", "audio on|off", "toggle rumble audio", nil, func([]string) error { return nil })

	assert.Equal(t, []string{"audio", "fps", "help"}, r.Names())
	require.NoError(t, r.ExecuteLine("help"))
	assert.Equal(t, []string{
		"audio on|off - toggle rumble audio",
		"fps on|off - toggle the FPS counter",
		"help - list commands",
	}, out)
}

func TestOnOff(t *testing.T) {
	tests := []struct {
		args    []string
		want    bool
		wantErr bool
	}{
		{[]string{"on"}, true, false},
		{[]string{"OFF"}, false, false},
		{[]string{"1"}, true, false},
		{[]string{"maybe"}, false, true},
		{nil, false, true},
		{[]string{"on", "off"}, false, true},
	}
	for _, tt := range tests {
		got, err := OnOff(tt.args)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.args)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
