package shell_test

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"calcmd/src-engine/command"
	"calcmd/src-engine/manager"
	"calcmd/src-engine/model"
	"calcmd/src-engine/shell"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestManager(t *testing.T) *manager.CalendarManager {
	t.Helper()
	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := model.CreateSchema(db); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return manager.New(db)
}

func TestInteractiveQuit(t *testing.T) {
	mgr := newTestManager(t)
	in := strings.NewReader("create calendar --name work --timezone UTC\nq\nshould never run\n")
	var out strings.Builder

	if err := shell.Interactive(context.Background(), mgr, in, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `calendar "work" created`) {
		t.Errorf("missing create output:\n%s", out.String())
	}
	if strings.Contains(out.String(), "never") {
		t.Errorf("lines after q must not run:\n%s", out.String())
	}
}

func TestInteractiveEOF(t *testing.T) {
	mgr := newTestManager(t)
	in := strings.NewReader("create calendar --name work --timezone UTC\n")
	var out strings.Builder

	if err := shell.Interactive(context.Background(), mgr, in, &out); err != nil {
		t.Errorf("EOF should end the session cleanly, got %v", err)
	}
}

func TestInteractiveStopsOnTypedError(t *testing.T) {
	mgr := newTestManager(t)
	in := strings.NewReader("not a command\ncreate calendar --name work --timezone UTC\n")
	var out strings.Builder

	err := shell.Interactive(context.Background(), mgr, in, &out)
	if !errors.Is(err, command.ErrInvalidCommand) {
		t.Fatalf("got %v, want ErrInvalidCommand", err)
	}
	if !strings.Contains(out.String(), "Error:") {
		t.Errorf("the error should be printed before the session ends:\n%s", out.String())
	}
	if strings.Contains(out.String(), "created") {
		t.Errorf("lines after the error must not run:\n%s", out.String())
	}
}

func TestInteractiveSkipsBlankLines(t *testing.T) {
	mgr := newTestManager(t)
	in := strings.NewReader("\n\ncreate calendar --name work --timezone UTC\nq\n")
	var out strings.Builder

	if err := shell.Interactive(context.Background(), mgr, in, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `calendar "work" created`) {
		t.Errorf("blank lines should be skipped, not fatal:\n%s", out.String())
	}
}

func TestRunFile(t *testing.T) {
	mgr := newTestManager(t)
	path := filepath.Join(t.TempDir(), "commands.txt")
	script := strings.Join([]string{
		"create calendar --name work --timezone America/New_York",
		"create event standup from 2025-03-01T08:00 to 2025-03-01T09:00",
		"show status on 2025-03-01T08:30",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := shell.RunFile(context.Background(), mgr, path, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "busy") {
		t.Errorf("missing status output:\n%s", out.String())
	}
}

func TestRunFileStopsOnError(t *testing.T) {
	mgr := newTestManager(t)
	path := filepath.Join(t.TempDir(), "commands.txt")
	script := strings.Join([]string{
		"create calendar --name work --timezone America/New_York",
		"bogus line",
		"create calendar --name never --timezone UTC",
	}, "\n") + "\n"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	err := shell.RunFile(context.Background(), mgr, path, &out)
	if !errors.Is(err, command.ErrInvalidCommand) {
		t.Fatalf("got %v, want ErrInvalidCommand", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("the error should carry the line number, got %v", err)
	}
	if strings.Contains(out.String(), "never") {
		t.Errorf("lines after the failure must not run:\n%s", out.String())
	}
}

func TestRunFileMissing(t *testing.T) {
	mgr := newTestManager(t)
	var out strings.Builder
	if err := shell.RunFile(context.Background(), mgr, filepath.Join(t.TempDir(), "absent.txt"), &out); err == nil {
		t.Error("a missing file should error")
	}
}
