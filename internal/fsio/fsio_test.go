package fsio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTemp(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestLoadLinesSplitsRows(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"trailing newline", "one\ntwo\n", []string{"one", "two"}},
		{"no trailing newline", "one\ntwo", []string{"one", "two"}},
		{"crlf endings", "a\r\nb\r\n", []string{"a", "b"}},
		{"empty file", "", nil},
		{"single blank line", "\n", []string{""}},
		{"blank line between rows", "x\n\ny\n", []string{"x", "", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, "doc.txt", []byte(tt.content))
			got, err := LoadLines(path)
			if err != nil {
				t.Fatalf("LoadLines: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d rows %q, want %d rows %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadLinesStripsUTF8BOM(t *testing.T) {
	path := writeTemp(t, "bom.txt", []byte{0xEF, 0xBB, 0xBF, 'h', 'i', '\n'})
	got, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines: %v", err)
	}
	if len(got) != 1 || got[0] != "hi" {
		t.Fatalf("got %q, want [\"hi\"]", got)
	}
}

func TestLoadLinesDecodesUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 'A', 0x00, 0x0D, 0x00, 0x0A, 0x00, 'B', 0x00}
	path := writeTemp(t, "utf16.txt", content)
	got, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines: %v", err)
	}
	if len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("got %q, want [\"A\" \"B\"]", got)
	}
}

func TestLoadLinesRefusesBinary(t *testing.T) {
	content := []byte{0x7F, 'E', 'L', 'F', 0x00, 0x00, 0x01, 0x02}
	path := writeTemp(t, "prog", content)
	_, err := LoadLines(path)
	if !errors.Is(err, ErrBinaryFile) {
		t.Fatalf("expected ErrBinaryFile, got %v", err)
	}
}

func TestLoadLinesMissingFile(t *testing.T) {
	_, err := LoadLines(filepath.Join(t.TempDir(), "absent.txt"))
	if !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSaveReportsByteCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	data := []byte("hello\nworld\n")
	n, err := Save(path, data)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if n != len(data) {
		t.Fatalf("Save reported %d bytes, want %d", n, len(data))
	}

	got, err := LoadLines(path)
	if err != nil {
		t.Fatalf("LoadLines after Save: %v", err)
	}
	if len(got) != 2 || got[0] != "hello" || got[1] != "world" {
		t.Fatalf("round trip produced %q", got)
	}
}

func TestIsTextFileDetectsUTF16LE(t *testing.T) {
	content := []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}
	if !IsTextFile("config.ini", content) {
		t.Fatalf("expected UTF-16 LE content to be treated as text")
	}
}

func TestIsTextFileBinaryExtensionShortCircuit(t *testing.T) {
	if IsTextFile("image.png", []byte("plain text inside")) {
		t.Fatalf("expected .png to be treated as binary regardless of content")
	}
}
