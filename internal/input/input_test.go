package input_test

import (
	"testing"

	"discparams/internal/input"
)

func TestNumberClampsToDeclaredBounds(t *testing.T) {
	cases := []struct {
		tokens []string
		want   int32
	}{
		{[]string{"/speed", "999"}, 72},
		{[]string{"/speed", "-5"}, 0},
		{[]string{"/speed", "24"}, 24},
		{[]string{"/speed=100"}, 72},
	}
	for _, tc := range cases {
		speed := input.NewInt32("/speed").WithBounds(0, 72)
		index := 0
		if !speed.Process(tc.tokens, &index) {
			t.Fatalf("Process(%v) returned false", tc.tokens)
		}
		got, ok := speed.Get()
		if !ok || got != tc.want {
			t.Fatalf("Process(%v) value = %d (%v), want %d", tc.tokens, got, ok, tc.want)
		}
		if index != len(tc.tokens) {
			t.Fatalf("Process(%v) index = %d, want %d", tc.tokens, index, len(tc.tokens))
		}
	}
}

func TestParseIntegerSuffixesAndHex(t *testing.T) {
	cases := []struct {
		text string
		want int32
		ok   bool
	}{
		{"4k", 4096, true},
		{"0x10", 16, true},
		{"0X1d", 29, true},
		{"0x10k", 16384, true},
		{"2M", 2 * 1024 * 1024, true},
		{"3q", 24, true},
		{"5w", 10, true},
		{"7c", 7, true},
		{"1d", 4, true},
		{"-12", -12, true},
		{"2G", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := input.ParseInteger[int32](tc.text)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseInteger(%q) = %d, %v; want %d, %v", tc.text, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseIntegerRejectsValuesOutsideType(t *testing.T) {
	if _, ok := input.ParseInteger[int8]("200"); ok {
		t.Fatal("expected 200 to overflow int8")
	}
	if _, ok := input.ParseInteger[uint8]("-1"); ok {
		t.Fatal("expected -1 to be rejected for uint8")
	}
	if got, ok := input.ParseInteger[uint8]("0xff"); !ok || got != 255 {
		t.Fatalf("ParseInteger[uint8](0xff) = %d, %v", got, ok)
	}
}

func TestRequiredNumberFailsWithoutValue(t *testing.T) {
	offset := input.NewInt32("/a")
	index := 0
	if offset.Process([]string{"/a"}, &index) {
		t.Fatal("expected failure when required value is missing")
	}
	if offset.IsSet() {
		t.Fatal("expected value slot cleared")
	}
	if index != 0 {
		t.Fatalf("index moved on failure: %d", index)
	}

	index = 0
	if offset.Process([]string{"/a", "nope"}, &index) {
		t.Fatal("expected failure when required value is unparsable")
	}
}

func TestOptionalNumberStoresSentinel(t *testing.T) {
	level := input.NewInt32("/s", input.Optional())
	index := 0
	tokens := []string{"/s", "/q"}
	if !level.Process(tokens, &index) {
		t.Fatal("expected optional flag to be recognized")
	}
	if index != 1 {
		t.Fatalf("expected index to stop at next flag, got %d", index)
	}
	if !level.IsSentinel() {
		t.Fatalf("expected sentinel value, got %v", *level.Value)
	}
	if _, ok := level.Get(); ok {
		t.Fatal("sentinel must not be reported as an explicit value")
	}
	if got := level.Format(false); got != "" {
		t.Fatalf("sentinel should format empty, got %q", got)
	}
}

func TestLookaheadStopLeavesIndexAtNextFlag(t *testing.T) {
	isFlag := func(token string) bool { return token == "/q" }
	value := input.NewString("/be", input.Optional(), input.WithStop(isFlag))
	tokens := []string{"/be", "/q"}
	index := 0
	if !value.Process(tokens, &index) {
		t.Fatal("expected optional string to be recognized")
	}
	if index != 1 {
		t.Fatalf("expected index 1, got %d", index)
	}
	if _, ok := value.Get(); ok {
		t.Fatal("expected no value to be consumed")
	}
}

func TestAltNamesAndEqualsForm(t *testing.T) {
	retries := input.NewInt32("--retries", input.WithAltNames("-r"))
	for _, tokens := range [][]string{{"-r", "5"}, {"--retries=5"}, {"-r=5"}} {
		retries.Reset()
		index := 0
		if !retries.Process(tokens, &index) {
			t.Fatalf("Process(%v) failed", tokens)
		}
		if got, _ := retries.Get(); got != 5 {
			t.Fatalf("Process(%v) = %d", tokens, got)
		}
	}
	if !retries.Matches("--retries=9") || retries.Matches("--retriesx") {
		t.Fatal("unexpected Matches result")
	}
}

func TestFormat(t *testing.T) {
	speed := input.NewInt32("--speed")
	speed.Set(24)
	if got := speed.Format(true); got != "--speed=24" {
		t.Fatalf("Format(true) = %q", got)
	}
	if got := speed.Format(false); got != "--speed 24" {
		t.Fatalf("Format(false) = %q", got)
	}

	path := input.NewString("--image-path")
	path.Set(`C:\My Dumps`)
	if got := path.Format(true); got != `--image-path="C:\My Dumps"` {
		t.Fatalf("quoted Format = %q", got)
	}

	verbose := input.NewFlag("--verbose")
	if got := verbose.Format(true); got != "" {
		t.Fatalf("unset flag Format = %q", got)
	}
	verbose.Value = true
	if got := verbose.Format(true); got != "--verbose" {
		t.Fatalf("set flag Format = %q", got)
	}
}

func TestStringRejectsDoubleQuotes(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
		want  string
	}{
		{"game", true, "--image-name=game"},
		{"my game", true, `--image-name="my game"`},
		{`say "hi"`, false, ""},
		{`"edge`, false, ""},
		{`edge"`, false, ""},
	}
	for _, tc := range cases {
		name := input.NewString("--image-name")
		if ok := name.Set(tc.value); ok != tc.ok {
			t.Fatalf("Set(%q) = %v, want %v", tc.value, ok, tc.ok)
		}
		if !tc.ok && name.IsSet() {
			t.Fatalf("rejected Set(%q) must leave the input unset", tc.value)
		}
		if got := name.Format(true); got != tc.want {
			t.Fatalf("Format after Set(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}

	name := input.NewString("--image-name")
	index := 0
	if name.Process([]string{`--image-name=a"b`}, &index) {
		t.Fatal("Process must reject a value containing a double quote")
	}
}

func TestBoolInput(t *testing.T) {
	eject := input.NewBool("--eject", input.Optional())
	index := 0
	if !eject.Process([]string{"--eject", "false"}, &index) || *eject.Value {
		t.Fatalf("expected explicit false, got %v", eject.Value)
	}
	eject.Reset()
	index = 0
	if !eject.Process([]string{"--eject", "--next"}, &index) || !*eject.Value || index != 1 {
		t.Fatalf("expected bare optional bool to mean true at index 1, got %v at %d", eject.Value, index)
	}
	if got := eject.Format(true); got != "--eject=true" {
		t.Fatalf("Format = %q", got)
	}
}

func TestProcessIgnoresOtherFlags(t *testing.T) {
	flag := input.NewFlag("/q")
	index := 0
	if flag.Process([]string{"/c2"}, &index) {
		t.Fatal("unexpected match")
	}
	if flag.Process([]string{"/q"}, &index) == false || index != 1 {
		t.Fatal("expected match advancing index")
	}
	index = 5
	if flag.Process([]string{"/q"}, &index) {
		t.Fatal("out of range index must fail")
	}
}
