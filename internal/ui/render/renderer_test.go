package render

import (
	"strings"
	"testing"
	"time"

	"github.com/ked-lab/ked/internal/buffer"
	statepkg "github.com/ked-lab/ked/internal/state"
)

const testReservedRows = 2

func renderState(lines []string, textRows, cols int) *statepkg.EditorState {
	buf := buffer.New(buffer.DefaultTabWidth)
	for i, line := range lines {
		buf.InsertRow(i, line)
	}
	return statepkg.NewEditorState(buf, textRows+testReservedRows, cols)
}

func TestFrameStructure(t *testing.T) {
	s := renderState([]string{"abc", "def"}, 4, 10)
	frame := string(NewRenderer().Frame(s))

	if !strings.HasPrefix(frame, "\x1b[?25l\x1b[H") {
		t.Fatalf("frame does not hide cursor and home first: %q", frame)
	}
	if !strings.HasSuffix(frame, "\x1b[?25h") {
		t.Fatalf("frame does not re-show cursor last: %q", frame)
	}
	for _, want := range []string{"abc\x1b[K\r\n", "def\x1b[K\r\n", "~\x1b[K\r\n", "\x1b[7m", "\x1b[m\r\n"} {
		if !strings.Contains(frame, want) {
			t.Errorf("frame missing %q", want)
		}
	}
	if strings.Contains(frame, "\x1b[2J") {
		t.Errorf("frame clears the whole screen; rows should be erased as drawn")
	}
}

func TestFrameTildesBelowDocument(t *testing.T) {
	s := renderState([]string{"only"}, 5, 20)
	frame := string(NewRenderer().Frame(s))
	if got := strings.Count(frame, "~\x1b[K"); got != 4 {
		t.Fatalf("frame has %d tilde rows, want 4", got)
	}
}

func TestFrameWelcomeBannerOnlyWhenEmpty(t *testing.T) {
	s := renderState(nil, 9, 80)
	frame := string(NewRenderer().Frame(s))
	if !strings.Contains(frame, "ked editor -- version "+Version) {
		t.Fatalf("empty document frame has no welcome banner: %q", frame)
	}

	s = renderState([]string{""}, 9, 80)
	frame = string(NewRenderer().Frame(s))
	if strings.Contains(frame, "ked editor -- version") {
		t.Fatalf("banner shown even though the document has a row")
	}
}

func TestFrameCursorPosition(t *testing.T) {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = "0123456789"
	}
	s := renderState(lines, 5, 40)
	s.Cy = 7
	s.Cx = 4
	frame := string(NewRenderer().Frame(s))

	// reconcile scrolls RowOffset to 3, so the cursor sits on screen row 5
	if !strings.Contains(frame, "\x1b[5;5H") {
		t.Fatalf("frame positions cursor wrong: %q", frame)
	}
}

func TestFrameCursorAfterTabExpansion(t *testing.T) {
	s := renderState([]string{"ab\tc"}, 5, 40)
	s.Cx = 3
	frame := string(NewRenderer().Frame(s))
	if !strings.Contains(frame, "\x1b[1;9H") {
		t.Fatalf("cursor not mapped through tab expansion: %q", frame)
	}
	if !strings.Contains(frame, "ab      c\x1b[K") {
		t.Fatalf("tab not expanded in drawn row: %q", frame)
	}
}

func TestFrameHorizontalWindow(t *testing.T) {
	s := renderState([]string{"0123456789"}, 5, 5)
	s.Cx = 9
	frame := string(NewRenderer().Frame(s))
	if !strings.Contains(frame, "56789\x1b[K") {
		t.Fatalf("frame does not window the row at ColOffset: %q", frame)
	}
	if strings.Contains(frame, "01234") {
		t.Fatalf("frame leaks columns left of the viewport: %q", frame)
	}
}

func TestFrameMessageExpires(t *testing.T) {
	s := renderState([]string{"x"}, 5, 80)
	s.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit")
	now := time.Now()

	r := NewRenderer()
	if frame := string(r.FrameAt(s, now)); !strings.Contains(frame, "HELP:") {
		t.Fatalf("fresh message not rendered: %q", frame)
	}
	if frame := string(r.FrameAt(s, now.Add(6*time.Second))); strings.Contains(frame, "HELP:") {
		t.Fatalf("expired message still rendered")
	}
}

func TestStatusBarLayout(t *testing.T) {
	s := renderState([]string{"a", "b", "c"}, 5, 40)
	s.Filename = "notes.txt"
	s.Buf.InsertChar(0, 0, 'x') // dirty
	s.Cy = 1

	got := statusBarText(s, 40)
	want := "notes.txt - 3 lines (modified)       2/3"
	if got != want {
		t.Fatalf("status bar %q, want %q", got, want)
	}
}

func TestStatusBarCleanAndUnnamed(t *testing.T) {
	s := renderState(nil, 5, 40)
	got := statusBarText(s, 40)
	if !strings.HasPrefix(got, "[No Name] - 0 lines") {
		t.Fatalf("status bar %q", got)
	}
	if strings.Contains(got, "(modified)") {
		t.Fatalf("clean document shows modified marker: %q", got)
	}
	if !strings.HasSuffix(got, "1/0") {
		t.Fatalf("status bar missing position indicator: %q", got)
	}
	if w := len(got); w != 40 {
		t.Fatalf("status bar width %d, want 40", w)
	}
}

func TestStatusBarDropsPositionWhenNarrow(t *testing.T) {
	s := renderState(nil, 5, 10)
	got := statusBarText(s, 10)
	if strings.Contains(got, "1/0") {
		t.Fatalf("narrow status bar kept position indicator: %q", got)
	}
}

func TestStatusBarTruncatesLongFileName(t *testing.T) {
	s := renderState(nil, 5, 80)
	s.Filename = strings.Repeat("n", 40) + ".txt"
	got := statusBarText(s, 80)
	if !strings.Contains(got, "…") {
		t.Fatalf("long file name not truncated: %q", got)
	}
	if strings.Contains(got, s.Filename) {
		t.Fatalf("full 44-char name kept in status bar: %q", got)
	}
}

func TestStatusBarSanitizesFileName(t *testing.T) {
	s := renderState(nil, 5, 80)
	s.Filename = "bad\x1bname"
	got := statusBarText(s, 80)
	if strings.Contains(got, "\x1b") {
		t.Fatalf("escape byte survived into status bar: %q", got)
	}
}

func TestFramesAreStandalone(t *testing.T) {
	s := renderState([]string{"hello"}, 3, 20)
	r := NewRenderer()
	first := string(r.Frame(s))
	second := string(r.Frame(s))
	if first != second {
		t.Fatalf("same state rendered differently:\n%q\n%q", first, second)
	}
	if c := strings.Count(second, "\x1b[?25l"); c != 1 {
		t.Fatalf("frame hides cursor %d times, want 1", c)
	}
}

func TestFrameRowWindowPastRowEnd(t *testing.T) {
	s := renderState([]string{"short", "a much longer row here"}, 5, 10)
	s.Cy = 1
	s.Cx = 20
	frame := string(NewRenderer().Frame(s))

	// ColOffset lands past the end of "short"; that row draws as blank
	if !strings.Contains(frame, "\x1b[H\x1b[K") {
		t.Fatalf("row left of viewport not blanked: %q", frame)
	}
}
