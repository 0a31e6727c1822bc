package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{
			name: "valid nested path",
			path: "calendar/calendarservice.cs",
		},
		{
			name: "valid single file",
			path: "client.go",
		},
		{
			name:    "empty path",
			path:    "",
			wantErr: "empty",
		},
		{
			name:    "absolute path",
			path:    "/etc/passwd",
			wantErr: "absolute paths not allowed",
		},
		{
			name:    "windows drive path",
			path:    `C:\temp\x`,
			wantErr: "absolute paths not allowed",
		},
		{
			name:    "traversal",
			path:    "../outside.go",
			wantErr: "path traversal not allowed",
		},
		{
			name:    "embedded traversal",
			path:    "a/../b.go",
			wantErr: "path traversal not allowed",
		},
		{
			name:    "unclean path",
			path:    "a//b.go",
			wantErr: "not clean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidatePath(%q) = %v, want nil", tt.path, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("ValidatePath(%q) = nil, want error containing %q", tt.path, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidatePath(%q) = %v, want error containing %q", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestFilesystemSink_WriteFile(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)

	content := []byte("public class CalendarService {}\n")
	if err := s.WriteFile(context.Background(), "calendar/service.cs", content); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(filepath.Join(dir, "calendar", "service.cs"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("written content = %q, want %q", got, content)
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(dir, "calendar"))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".clientgen-") {
			t.Errorf("leftover temp file %q", e.Name())
		}
	}
}

func TestFilesystemSink_Overwrite(t *testing.T) {
	dir := t.TempDir()
	s := NewFilesystemSink(dir)
	ctx := context.Background()

	if err := s.WriteFile(ctx, "a.cs", []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteFile(ctx, "a.cs", []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "a.cs"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "two" {
		t.Errorf("content = %q, want %q", got, "two")
	}
}

func TestFilesystemSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewFilesystemSink(t.TempDir())
	if err := s.WriteFile(ctx, "a.cs", []byte("x")); err == nil {
		t.Error("WriteFile() with cancelled context should fail")
	}
}

func TestMemorySink_ConcurrentWrites(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			path := "file" + string(rune('a'+n)) + ".cs"
			if err := s.WriteFile(ctx, path, []byte{byte(n)}); err != nil {
				t.Errorf("WriteFile() error = %v", err)
			}
		}(i)
	}
	wg.Wait()

	if got := len(s.Paths()); got != 10 {
		t.Errorf("len(Paths()) = %d, want 10", got)
	}
}

func TestMemorySink_GetCopies(t *testing.T) {
	s := NewMemorySink()
	if err := s.WriteFile(context.Background(), "a.cs", []byte("abc")); err != nil {
		t.Fatal(err)
	}

	got := s.Get("a.cs")
	got[0] = 'z'
	if string(s.Get("a.cs")) != "abc" {
		t.Error("Get() must return a copy")
	}

	if s.Get("missing.cs") != nil {
		t.Error("Get() for missing path should return nil")
	}
}
