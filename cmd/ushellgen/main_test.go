package main

import (
	"strings"
	"testing"
)

func TestParseCommandsDSL(t *testing.T) {
	src := `
		dFs: pkg.One pkg.Two,
		t:   Three,
		v:   Four,
	`
	m, err := parseCommandsDSL(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.entries) != 4 {
		t.Fatalf("entries = %d, want 4", len(m.entries))
	}
	if len(m.uniqueSpecs) != 3 {
		t.Fatalf("unique specs = %v, want 3", m.uniqueSpecs)
	}

	// Entries are sorted by derived name.
	wantOrder := []string{"four", "one", "three", "two"}
	for i, want := range wantOrder {
		if m.entries[i].name != want {
			t.Errorf("entry %d = %q, want %q", i, m.entries[i].name, want)
		}
	}

	// Equal descriptors share a spec index.
	byName := map[string]cmdEntry{}
	for _, e := range m.entries {
		byName[e.name] = e
	}
	if byName["one"].specIdx != byName["two"].specIdx {
		t.Error("shared descriptor got distinct spec indices")
	}
}

func TestParseCommandsDSLSkipsAndRejects(t *testing.T) {
	// Groups without a colon are skipped, as are empty groups.
	m, err := parseCommandsDSL("nonsense, t: Led, ,")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.entries) != 1 || m.entries[0].name != "led" {
		t.Errorf("entries = %+v", m.entries)
	}

	// A malformed function path rejects the generation.
	if _, err := parseCommandsDSL("t: not-an-ident"); err == nil {
		t.Error("invalid path accepted")
	}
	if _, err := parseCommandsDSL("t: a.b.c"); err == nil {
		t.Error("deep path accepted")
	}
	if _, err := parseCommandsDSL("tv: Led"); err == nil {
		t.Error("descriptor with embedded v accepted")
	}
	if _, err := parseCommandsDSL("Y: Led"); err == nil {
		t.Error("unknown descriptor char accepted")
	}
	if _, err := parseCommandsDSL("t: Led, t: other.Led"); err == nil {
		t.Error("duplicate command name accepted")
	}
	if _, err := parseCommandsDSL("   "); err == nil {
		t.Error("empty declaration accepted")
	}
}

func TestSpecHelpers(t *testing.T) {
	if got := specArity("v"); got != 0 {
		t.Errorf("arity(v) = %d", got)
	}
	if got := specArity("sQB"); got != 3 {
		t.Errorf("arity(sQB) = %d", got)
	}
	counts := specCounts("ssD")
	if counts['s'] != 2 || counts['D'] != 1 {
		t.Errorf("counts = %v", counts)
	}
	if got := commandName("pkg.LedToggle"); got != "ledtoggle" {
		t.Errorf("commandName = %q", got)
	}
}

func TestEmitCommands(t *testing.T) {
	m, err := parseCommandsDSL("t: Led, bD: Read, v: Reset")
	if err != nil {
		t.Fatal(err)
	}
	out := emitCommands(m, "demo", "github.com/phroun/ushell", "cmds.cfg", 32, 48)

	for _, want := range []string{
		"// Code generated by ushellgen. DO NOT EDIT.",
		"package demo",
		"MaxBool = 1",
		"MaxI8 = 1",
		"MaxU32 = 1",
		"MaxArity = 2",
		"NumCommands = 3",
		"MaxHexstrLen = 32",
		"ErrorBufferSize = 48",
		"func parseSpec0(ctx *CallCtx, args []string) ushell.DispatchError {",
		"func callLed(ctx *CallCtx) {",
		"Led(ctx.bools[0])",
		"Read(ctx.i8s[0], ctx.u32s[0])",
		"case \"led\":",
		"func Dispatch(line string, eb *ushell.ErrBuf) bool {",
		"func CandidatesForLetter(first byte) []string {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Entries must appear in sorted order.
	ledAt := strings.Index(out, `{name: "led"`)
	readAt := strings.Index(out, `{name: "read"`)
	resetAt := strings.Index(out, `{name: "reset"`)
	if !(ledAt < readAt && readAt < resetAt) {
		t.Errorf("entries out of order: led=%d read=%d reset=%d", ledAt, readAt, resetAt)
	}
}

func TestParseShortcutsDSL(t *testing.T) {
	src := `
		+: { +: PlusPlus, l: PlusL },
		.: { .: DotDot },
	`
	m, err := parseShortcutsDSL(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.entries) != 3 {
		t.Fatalf("entries = %+v", m.entries)
	}
	if m.entries[0].key != "++" || m.entries[0].path != "PlusPlus" {
		t.Errorf("entry 0 = %+v", m.entries[0])
	}
	if len(m.prefixes) != 2 {
		t.Errorf("prefixes = %q", m.prefixes)
	}
}

func TestParseShortcutsDSLRejects(t *testing.T) {
	if _, err := parseShortcutsDSL("ab: { c: Fn },"); err == nil {
		t.Error("multi-char prefix accepted")
	}
	if _, err := parseShortcutsDSL("+: { cd: Fn },"); err == nil {
		t.Error("multi-char tail accepted")
	}
	if _, err := parseShortcutsDSL("+: { c: 1bad },"); err == nil {
		t.Error("invalid path accepted")
	}
	if _, err := parseShortcutsDSL("+: { c: Fn, c: Fn2 },"); err == nil {
		t.Error("duplicate shortcut accepted")
	}
	if _, err := parseShortcutsDSL(""); err == nil {
		t.Error("empty declaration accepted")
	}
}

func TestEmitShortcuts(t *testing.T) {
	m, err := parseShortcutsDSL("+: { +: PlusPlus, l: PlusL },")
	if err != nil {
		t.Fatal(err)
	}
	out := emitShortcuts(m, "demo", "github.com/phroun/ushell", "sc.cfg")

	for _, want := range []string{
		"package demo",
		`case "++":`,
		"PlusPlus(param)",
		`case "+l":`,
		"func IsSupportedShortcut(input string) bool {",
		`return "++ | +l"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
