package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		op   Op
		err  error
		want string
	}{
		{OpConfigLoad, nil, ""},
		{OpConfigLoad, errors.New("file not found"), "Failed to load configuration: file not found"},
		{OpStateOpen, errors.New("permission denied"), "Failed to open state database: permission denied"},
		{OpStateSave, errors.New("disk full"), "Failed to save position: disk full"},
	}
	for _, c := range cases {
		if got := Format(c.op, c.err); got != c.want {
			t.Errorf("Format(%q, %v) = %q, want %q", c.op, c.err, got, c.want)
		}
	}
}

func TestFormatWith(t *testing.T) {
	errDenied := errors.New("permission denied")

	cases := []struct {
		op      Op
		context string
		err     error
		want    string
	}{
		{OpStateOpen, "/data/state.db", nil, ""},
		{OpStateOpen, "/data/state.db", errDenied,
			"Failed to open state database '/data/state.db': permission denied"},
		// Empty context falls back to the plain form.
		{OpStateOpen, "", errDenied,
			"Failed to open state database: permission denied"},
		{OpConfigLoad, "~/.config/smooth-sheets/config.toml", errors.New("invalid TOML"),
			"Failed to load configuration '~/.config/smooth-sheets/config.toml': invalid TOML"},
		{OpTraceRun, "ballistic", errors.New("content height must be positive"),
			"Failed to run trace 'ballistic': content height must be positive"},
	}
	for _, c := range cases {
		if got := FormatWith(c.op, c.context, c.err); got != c.want {
			t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", c.op, c.context, c.err, got, c.want)
		}
	}
}

func TestOpConstantsProduceWellFormedMessages(t *testing.T) {
	ops := []Op{OpConfigLoad, OpStateOpen, OpStateSave, OpTraceRun}
	testErr := errors.New("test error")

	for _, op := range ops {
		if op == "" {
			t.Error("Op constant should not be empty")
			continue
		}
		want := "Failed to " + string(op) + ": test error"
		if got := Format(op, testErr); got != want {
			t.Errorf("Format(%q) = %q, want %q", op, got, want)
		}
	}
}
