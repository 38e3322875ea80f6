package storage

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFileTokenStore_MissingFileMeansNoToken(t *testing.T) {
	s := NewFileTokenStore(filepath.Join(t.TempDir(), "token"))

	token, err := s.Get(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Errorf("expected empty token, got %q", token)
	}
}

func TestFileTokenStore_SetGetRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "token")
	s := NewFileTokenStore(path)
	ctx := context.Background()

	if err := s.Set(ctx, "tok-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	token, err := s.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("expected tok-abc, got %q", token)
	}
}

func TestFileTokenStore_FileModeIsPrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)

	if err := s.Set(context.Background(), "tok-abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("token file must be 0600, got %o", perm)
	}
}

func TestFileTokenStore_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	if err := os.WriteFile(path, []byte("tok-abc\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := NewFileTokenStore(path)

	token, err := s.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if token != "tok-abc" {
		t.Errorf("expected trimmed token, got %q", token)
	}
}

func TestFileTokenStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	s := NewFileTokenStore(path)
	ctx := context.Background()

	if err := s.Set(ctx, "tok-abc"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("clear must remove the token file")
	}

	// Clearing again is fine.
	if err := s.Clear(ctx); err != nil {
		t.Errorf("second clear must be a no-op, got %v", err)
	}
}

func TestMemoryTokenStore_Roundtrip(t *testing.T) {
	s := NewMemoryTokenStore()
	ctx := context.Background()

	if err := s.Set(ctx, "tok-mem"); err != nil {
		t.Fatal(err)
	}
	token, _ := s.Get(ctx)
	if token != "tok-mem" {
		t.Errorf("expected tok-mem, got %q", token)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	token, _ = s.Get(ctx)
	if token != "" {
		t.Errorf("expected empty after clear, got %q", token)
	}
}
