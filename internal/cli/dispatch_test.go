package cli_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/testutil"
)

// testFactory creates a service factory backed by the given FakeSlot.
// Each dispatch loads a fresh store from the slot, like a new process would.
func testFactory(sl *testutil.FakeSlot) cli.ServiceFactory {
	ms := int64(1700000000000)
	return func(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (service.Service, error) {
		s := store.New(sl,
			store.WithKey(cfg.Key),
			store.WithLogger(log),
			store.WithClock(func() time.Time { ms++; return time.UnixMilli(ms) }),
		)
		s.Load(ctx)
		return s, nil
	}
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"unknowncmd"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_FlagBeforeCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--quiet"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: --quiet\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if !bytes.Contains(stdout.Bytes(), []byte("Usage:")) {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"version"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout.String())
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, nil)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"help", "--unknown"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--filter"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -filter\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_UnknownBackend(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list", "--backend", "mongo"}, &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown backend: mongo\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_StorageError(t *testing.T) {
	factory := func(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (service.Service, error) {
		return nil, errors.New("connection refused")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != exitcode.StorageError {
		t.Errorf("expected exit code %d, got %d", exitcode.StorageError, code)
	}
	expected := "error: storage error: connection refused\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_NoArgsListsTasks(t *testing.T) {
	sl := testutil.NewFakeSlot()
	sl.Put(config.StorageKey, `[{"id":2,"text":"Buy eggs","completed":true,"createdAt":2},{"id":1,"text":"Buy milk","completed":false,"createdAt":1}]`)
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(sl))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), nil, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [x] Buy eggs\n   2  [ ] Buy milk\n"
	if stdout.String() != expected {
		t.Errorf("expected %q, got %q", expected, stdout.String())
	}
	if sl.SetCount() != 0 {
		t.Errorf("listing must not write, got %d writes", sl.SetCount())
	}
}

func TestDispatcher_CorruptSnapshotStartsEmpty(t *testing.T) {
	sl := testutil.NewFakeSlot()
	sl.Put(config.StorageKey, "not json")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(sl))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"list"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr.String() != "" {
		t.Errorf("expected no stderr, got %q", stderr.String())
	}
	if stdout.String() != "no tasks found\n" {
		t.Errorf("expected %q, got %q", "no tasks found\n", stdout.String())
	}
}

// Each Run is a fresh process over the same slot: the full user scenario.
func TestDispatcher_Session(t *testing.T) {
	sl := testutil.NewFakeSlot()
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(sl))
	ctx := context.Background()

	steps := []struct {
		args []string
		want string
	}{
		{[]string{"add", "Buy", "milk"}, "ok\n"},
		{[]string{"add", "Call", "mom"}, "ok\n"},
		{[]string{"list"}, "   1  [ ] Call mom\n   2  [ ] Buy milk\n"},
		{[]string{"done", "2"}, "ok\n"},
		{[]string{"ls", "--filter", "active"}, "   1  [ ] Call mom\n"},
		{[]string{"ls", "-f", "completed"}, "   2  [x] Buy milk\n"},
		{[]string{"edit", "1", "Call", "dad"}, "ok\n"},
		{[]string{"search", "DAD"}, "   1  [ ] Call dad\n"},
		{[]string{"delete", "1"}, "ok\n"},
		{[]string{"list"}, "   1  [x] Buy milk\n"},
		{[]string{"toggle", "--quiet", "1"}, ""},
		{[]string{"list", "--filter", "completed"}, "no tasks found\n"},
	}
	for _, step := range steps {
		var stdout, stderr bytes.Buffer
		code := dispatcher.Run(ctx, step.args, &stdout, &stderr)

		name := strings.Join(step.args, " ")
		if code != exitcode.Success {
			t.Fatalf("%s: expected exit code %d, got %d (stderr %q)", name, exitcode.Success, code, stderr.String())
		}
		if stdout.String() != step.want {
			t.Errorf("%s: expected %q, got %q", name, step.want, stdout.String())
		}
	}
}

func TestDispatcher_DebugLogsToStderr(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(testutil.NewFakeSlot()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"add", "--debug", "Buy", "milk"}, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout.String() != "ok\n" {
		t.Errorf("expected %q, got %q", "ok\n", stdout.String())
	}
	if !strings.Contains(stderr.String(), "msg=dispatch") {
		t.Errorf("expected dispatch debug line, got %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "snapshot saved") {
		t.Errorf("expected save debug line, got %q", stderr.String())
	}
}
