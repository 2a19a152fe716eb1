package translate

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"memalias/common"
	ierr "memalias/internal/common"
	"memalias/internal/regs"
)

const badTrace = `Detected machine m/PXA (Plat=p)
Beginning memory tracing.
Watching T(0): Addr c4a00014(@40a00014)
000001: 00000010: mem c4a00014=zz (0)
000002: 00000020: mem c4a00014=00000001 (00000000)
`

func TestRunAbortsOnBadNumber(t *testing.T) {
	var out bytes.Buffer
	st, err := Run(Config{Input: strings.NewReader(badTrace), Output: &out})

	var e *ierr.Error
	if !errors.As(err, &e) {
		t.Fatalf("Run() error = %v, want *Error", err)
	}
	if e.Code != ierr.ErrMalformedNumber || e.Line != 4 {
		t.Errorf("error = %+v, want ErrMalformedNumber at line 4", e)
	}
	if st.Lines != 4 {
		t.Errorf("Stats.Lines = %d, want 4", st.Lines)
	}
	if n := strings.Count(out.String(), "\n"); n != 3 {
		t.Errorf("wrote %d lines before abort, want 3", n)
	}
}

func TestRunSkipsBadLines(t *testing.T) {
	var out, logBuf bytes.Buffer
	st, err := Run(Config{
		Input:        strings.NewReader(badTrace),
		Output:       &out,
		SkipBadLines: true,
		Logger:       common.NewStdLoggerWithWriter(&logBuf, common.SeverityWarning),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"Detected machine m/PXA (Plat=p)",
		"Beginning memory tracing.",
		"Watching T(0): Addr c4a00014(@40a00014)",
		"000001: 00000010: mem c4a00014=zz (0)",
		// the skipped line does not advance the clock
		"000.002(0000032) T     OSSR=00000001: M0=1",
		"",
	}
	if diff := cmp.Diff(want, strings.Split(out.String(), "\n")); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Stats{Lines: 5, Translated: 1, Skipped: 1}, st); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logBuf.String(), "line 4:") {
		t.Errorf("expected warning for line 4, got %q", logBuf.String())
	}
}

func TestRunWithRegFiles(t *testing.T) {
	dir := t.TempDir()
	luaPath := filepath.Join(dir, "board.lua")
	src := `regs["Acme Board"] = { [0x80000000] = {"CTRL", {{0, "EN"}, {"3-1", "MODE"}}} }`
	if err := os.WriteFile(luaPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	trace := strings.Join([]string{
		"Detected machine Acme Board/PXA (Plat=acme)",
		"Watching IO(0): Addr f0000000(@80000000)",
		"Watching IO(0): Addr c4a00014(@40a00014)",
		"000100: mem f0000000=0000000b (00000000)",
		"000200: mem c4a00014=00000001 (00000001)",
	}, "\n")

	var out bytes.Buffer
	st, err := Run(Config{
		Input:    strings.NewReader(trace),
		Output:   &out,
		RegFiles: []string{luaPath},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if want := "000.100 IO     CTRL=0000000b: EN=1 MODE=5"; lines[3] != want {
		t.Errorf("got %q, want %q", lines[3], want)
	}
	// machine table wins over the PXA fallback, so OSSR is unknown here
	if want := "000.200 IO c4a00014: ?(0)=1"; lines[4] != want {
		t.Errorf("got %q, want %q", lines[4], want)
	}
	if st.Translated != 2 {
		t.Errorf("Stats.Translated = %d, want 2", st.Translated)
	}
}

func TestBuildCatalog(t *testing.T) {
	cat, err := BuildCatalog(Config{NoBuiltin: true})
	if err != nil {
		t.Fatal(err)
	}
	if cat.Len() != 0 {
		t.Errorf("NoBuiltin catalog has %d registers", cat.Len())
	}

	cat, err = BuildCatalog(Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cat.Get("ARCH:PXA"); !ok {
		t.Error("builtin PXA table missing")
	}

	given := regs.NewCatalog()
	cat, err = BuildCatalog(Config{Catalog: given, RegFiles: []string{"does-not-exist.ini"}})
	if err != nil || cat != given {
		t.Errorf("BuildCatalog with Catalog = %p, %v; want %p", cat, err, given)
	}

	_, err = BuildCatalog(Config{RegFiles: []string{filepath.Join(t.TempDir(), "none.ini")}})
	if !ierr.HasCode(err, ierr.ErrIO) {
		t.Errorf("missing reg file: got %v, want ErrIO", err)
	}
}

func TestRunRejectsBadBitSpecInFile(t *testing.T) {
	dir := t.TempDir()
	iniPath := filepath.Join(dir, "bad.ini")
	if err := os.WriteFile(iniPath, []byte("[ARCH:PXA]\n0x10 = X; 9-12=BAD\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Run(Config{Input: strings.NewReader(""), Output: &bytes.Buffer{}, RegFiles: []string{iniPath}})
	if !ierr.HasCode(err, ierr.ErrMalformedBitSpec) {
		t.Errorf("got %v, want ErrMalformedBitSpec", err)
	}
}

func TestRunReportsLongLines(t *testing.T) {
	long := strings.Repeat("x", maxLineLen+10)
	_, err := Run(Config{Input: strings.NewReader(long), Output: &bytes.Buffer{}, NoBuiltin: true})
	if !ierr.HasCode(err, ierr.ErrIO) {
		t.Errorf("got %v, want ErrIO", err)
	}
}
