package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/mdbridge/pkg/fsutil"
)

func TestBackupPath(t *testing.T) {
	t.Parallel()

	if got := fsutil.BackupPath("a/b.html"); got != "a/b.html.mdbridge.bak" {
		t.Errorf("BackupPath() = %q", got)
	}
}

func TestCreateBackup(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "doc.html")

	created, err := fsutil.CreateBackup(ctx, path)
	if err != nil || created {
		t.Fatalf("missing original = %v, %v; want false, nil", created, err)
	}

	if err := os.WriteFile(path, []byte("first"), 0o640); err != nil {
		t.Fatalf("setup: %v", err)
	}

	created, err = fsutil.CreateBackup(ctx, path)
	if err != nil || !created {
		t.Fatalf("first backup = %v, %v; want true, nil", created, err)
	}

	if err := os.WriteFile(path, []byte("second"), 0o640); err != nil {
		t.Fatalf("setup: %v", err)
	}

	created, err = fsutil.CreateBackup(ctx, path)
	if err != nil || created {
		t.Errorf("second backup = %v, %v; want false, nil", created, err)
	}

	got, err := os.ReadFile(fsutil.BackupPath(path))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(got) != "first" {
		t.Errorf("backup = %q, want first version kept", got)
	}
}
