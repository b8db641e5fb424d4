package dic_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"discparams/internal/execution"
	"discparams/internal/execution/dic"
	"discparams/internal/media"
	"discparams/internal/options"
)

func mustParse(t *testing.T, parameters string) *dic.Context {
	t.Helper()
	ctx, err := dic.FromParameters(parameters)
	if err != nil {
		t.Fatalf("parse %q: %v", parameters, err)
	}
	return ctx
}

func mustGenerate(t *testing.T, ctx *dic.Context) string {
	t.Helper()
	out, err := ctx.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return out
}

func TestCompactDiscScenario(t *testing.T) {
	ctx, ok := dic.NewCommand(dic.CommandCompactDisc)
	if !ok {
		t.Fatal("select cd")
	}
	ctx.DrivePath = "D:"
	ctx.Filename = "game.bin"
	ctx.SetSpeed(24)
	if !ctx.SetFlag(dic.FlagC2Opcode, true) {
		t.Fatal("cd must support /c2")
	}
	ctx.C2 = dic.C2Reread{Count: dic.Int32(20)}

	const want = `cd D: "game.bin" 24 /c2 20`
	got := mustGenerate(t, ctx)
	if got != want {
		t.Fatalf("Generate = %q, want %q", got, want)
	}

	parsed := mustParse(t, want)
	if parsed.Command() != "cd" || parsed.InputPath() != "D:" || parsed.OutputPath() != "game.bin" {
		t.Fatalf("unexpected positionals: %q %q %q", parsed.Command(), parsed.InputPath(), parsed.OutputPath())
	}
	if speed, ok := parsed.Speed(); !ok || speed != 24 {
		t.Fatalf("speed = %d, %v", speed, ok)
	}
	if parsed.C2.Count == nil || *parsed.C2.Count != 20 || parsed.C2.Offset != nil || parsed.C2.Scope != nil {
		t.Fatalf("unexpected C2 state: %+v", parsed.C2)
	}
	if !reflect.DeepEqual(ctx, parsed) {
		t.Fatalf("round trip state differs:\n%+v\n%+v", ctx, parsed)
	}
}

func TestCloseAcceptsExactlyTwoTokens(t *testing.T) {
	ctx, _ := dic.NewCommand(dic.CommandClose)
	ctx.DrivePath = "D:"
	if got := mustGenerate(t, ctx); got != "close D:" {
		t.Fatalf("Generate = %q", got)
	}
	mustParse(t, "close D:")

	err := dic.New().Parse("close D: extra")
	if !errors.Is(err, execution.ErrShape) {
		t.Fatalf("expected shape error, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{
		`cd D: "game.bin" 24 /c2 20`,
		`cd D: "game.bin" 24 /be raw /c2 20 4 1 0 /q /ns /sf /ss /sk 2 0 /s 2`,
		`cd E: "C:\My Dumps\game one.bin" 8 /a 6 /c2 20 0 0 1 100 200 /mr 50 /nl /am`,
		`dvd E: "movie.iso" 8 /c /rr 10 /fix 5 /ps 255 /ra 0 1000 /raw /r 100 200 /avdp`,
		`dvd D: "a.iso" 8 /ps 0`,
		`dvd D: "a.iso" 8 /ps`,
		`audio D: "track.bin" 16 0 4500 /a 6 /r /s 1`,
		`data D: "track.bin" 16 10 20`,
		`gd D: "dc.bin" 20 /c2 20 /d8`,
		`bd F: "disc.iso" 6 /q /rr 10`,
		`sacd D: "s.iso" 2 /q`,
		`xbox D: "game.iso" /nss 64`,
		`xboxswap D: "game.iso" 4 8000 9000 /nss`,
		`xgd3swap D: "game.iso" 2`,
		`swap D: "game.bin" 8 /74 /vnc`,
		`fd A: "floppy.img"`,
		`disk G: "hdd.img" /d`,
		`tape "backup.bin"`,
		`merge "a.bin" "b.bin"`,
		`mds "x.mds"`,
		`sub "x.sub"`,
		`eject E:`,
		`ls D:`,
		`/v`,
	}
	for _, parameters := range cases {
		first := mustParse(t, parameters)
		generated := mustGenerate(t, first)
		if generated != parameters {
			t.Fatalf("generate(parse(%q)) = %q", parameters, generated)
		}
		second := mustParse(t, generated)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("parse(generate(state)) differs for %q", parameters)
		}
	}
}

func TestPadSectorZeroSurvivesRoundTrip(t *testing.T) {
	cases := []struct {
		value int32
		want  string
	}{
		{value: 0, want: `dvd D: "a.iso" 8 /ps 0`},
		{value: 255, want: `dvd D: "a.iso" 8 /ps 255`},
	}
	for _, tc := range cases {
		ctx, err := dic.FromParameters(`dvd D: "a.iso" 8`)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if !ctx.SetValue(dic.FlagPadSector, tc.value) {
			t.Fatalf("SetValue(/ps, %d) rejected", tc.value)
		}
		generated := mustGenerate(t, ctx)
		if generated != tc.want {
			t.Fatalf("generate = %q, want %q", generated, tc.want)
		}
		reparsed := mustParse(t, generated)
		value, ok := reparsed.Value(dic.FlagPadSector)
		if !ok || value != tc.value {
			t.Fatalf("reparsed /ps = %d, %v; want %d", value, ok, tc.value)
		}
		if again := mustGenerate(t, reparsed); again != tc.want {
			t.Fatalf("regenerate = %q, want %q", again, tc.want)
		}
	}
}

func TestPositionalArity(t *testing.T) {
	cases := []string{
		`audio D: "a.bin" 8 0 100`,
		`cd D: "a.bin" 8`,
		`dvd D: "a.iso" 8`,
		`bd D: "a.iso" 4`,
		`xboxswap D: "a.iso" 4`,
		`xbox D: "a.iso"`,
		`merge "a.bin" "b.bin"`,
		`close D:`,
		`mds "a.mds"`,
	}
	for _, parameters := range cases {
		if err := dic.New().Parse(parameters); err != nil {
			t.Fatalf("minimum form %q rejected: %v", parameters, err)
		}
		tokens := execution.Tokenize(parameters)
		short := strings.Join(strings.Fields(parameters)[:len(tokens)-1], " ")
		err := dic.New().Parse(short)
		if !errors.Is(err, execution.ErrShape) {
			t.Fatalf("short form %q: expected shape error, got %v", short, err)
		}
	}
}

func TestParseRejectsMalformedPositionals(t *testing.T) {
	cases := []string{
		``,
		`floppy A: "a.img"`,
		`"cd" D: "a.bin" 8`,
		`cd DD: "a.bin" 8`,
		`cd D: /q 8`,
		`cd D: "a.bin" 73`,
		`cd D: "a.bin" -1`,
		`bd D: "a.iso" 13`,
		`audio D: "a.bin" 8 -5 100`,
		`audio D: "a.bin" 8 0 end`,
		`xboxswap D: "a.iso" 4 abc`,
		`bd D: "a.iso" 4 /c2`,
		`cd D: "a.bin" 8 /bogus`,
	}
	for _, parameters := range cases {
		err := dic.New().Parse(parameters)
		if !errors.Is(err, execution.ErrShape) {
			t.Fatalf("Parse(%q): expected shape error, got %v", parameters, err)
		}
	}
}

func TestParseRejectsBadFlagValues(t *testing.T) {
	cases := []string{
		`cd D: "a.bin" 8 /a`,
		`cd D: "a.bin" 8 /a /q`,
		`cd D: "a.bin" 8 /be foo`,
		`cd D: "a.bin" 8 /c2 20 0 0 1 100`,
		`cd D: "a.bin" 8 /c2 20 0 0 2`,
		`cd D: "a.bin" 8 /c2 20 0 0 0 5`,
		`cd D: "a.bin" 8 /c2 -1`,
		`cd D: "a.bin" 8 /c2 twenty`,
		`cd D: "a.bin" 8 /sk`,
		`cd D: "a.bin" 8 /sk 0`,
		`cd D: "a.bin" 8 /s x`,
		`cd D: "a.bin" 8 /ps 300`,
		`cd D: "a.bin" 8 /ps -1`,
		`dvd D: "a.iso" 8 /r 100`,
		`dvd D: "a.iso" 8 /ra 5`,
	}
	for _, parameters := range cases {
		err := dic.New().Parse(parameters)
		if !errors.Is(err, execution.ErrValue) {
			t.Fatalf("Parse(%q): expected value error, got %v", parameters, err)
		}
	}
}

func TestLookaheadStopsAtNextFlag(t *testing.T) {
	ctx := mustParse(t, `cd D: "a.bin" 8 /c2 /q`)
	if !ctx.C2.IsZero() {
		t.Fatalf("expected no C2 sub-values, got %+v", ctx.C2)
	}
	if !ctx.IsEnabled(dic.FlagC2Opcode) || !ctx.IsEnabled(dic.FlagDisableBeep) {
		t.Fatal("expected both flags enabled")
	}

	ctx = mustParse(t, `cd D: "a.bin" 8 /s /q`)
	if _, ok := ctx.Value(dic.FlagSubchannelReadLevel); ok {
		t.Fatal("expected /s without a value")
	}
	if got := mustGenerate(t, ctx); got != `cd D: "a.bin" 8 /q /s` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestQuotedFilenameMayLookLikeAFlag(t *testing.T) {
	ctx := mustParse(t, `cd D: "/q" 8`)
	if ctx.Filename != "/q" {
		t.Fatalf("filename = %q", ctx.Filename)
	}
	if ctx.IsEnabled(dic.FlagDisableBeep) {
		t.Fatal("quoted filename must not enable /q")
	}
}

func TestEqualsFormIsAccepted(t *testing.T) {
	ctx := mustParse(t, `cd D: "a.bin" 8 /s=9 /a=-12`)
	if v, ok := ctx.Value(dic.FlagSubchannelReadLevel); !ok || v != 2 {
		t.Fatalf("/s = %d, %v; want clamped 2", v, ok)
	}
	if got := mustGenerate(t, ctx); got != `cd D: "a.bin" 8 /a -12 /s 2` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestUnsupportedFlagWriteIsNoOp(t *testing.T) {
	ctx, _ := dic.NewCommand(dic.CommandBluRay)
	if ctx.SetFlag(dic.FlagC2Opcode, true) {
		t.Fatal("bd must not accept /c2")
	}
	if ctx.SetValue(dic.FlagSubchannelReadLevel, 2) {
		t.Fatal("bd must not accept /s")
	}
	if ctx.Flag(dic.FlagC2Opcode) != execution.FlagUnset || len(ctx.EnabledFlags()) != 0 {
		t.Fatal("flag dictionary changed")
	}
}

func TestGenerateFailures(t *testing.T) {
	build := func(mutate func(*dic.Context)) *dic.Context {
		ctx, _ := dic.NewCommand(dic.CommandCompactDisc)
		ctx.DrivePath = "D:"
		ctx.Filename = "a.bin"
		ctx.SetSpeed(8)
		mutate(ctx)
		return ctx
	}
	cases := []struct {
		name   string
		mutate func(*dic.Context)
		kind   error
	}{
		{"missing drive", func(c *dic.Context) { c.DrivePath = "" }, execution.ErrShape},
		{"missing file", func(c *dic.Context) { c.Filename = "" }, execution.ErrShape},
		{"quoted file", func(c *dic.Context) { c.Filename = `my "best" game.bin` }, execution.ErrValue},
		{"missing speed", func(c *dic.Context) { c.DriveSpeed = nil }, execution.ErrShape},
		{"ranged c2 without lba", func(c *dic.Context) {
			c.SetFlag(dic.FlagC2Opcode, true)
			c.C2 = dic.C2Reread{Count: dic.Int32(20), Offset: dic.Int32(0), ReadMode: dic.Int32(0), Scope: dic.Scope(dic.C2ScopeRanged)}
		}, execution.ErrValue},
		{"illegal c2 scope", func(c *dic.Context) {
			c.SetFlag(dic.FlagC2Opcode, true)
			c.C2 = dic.C2Reread{Count: dic.Int32(20), Offset: dic.Int32(0), ReadMode: dic.Int32(0), Scope: dic.Scope(2)}
		}, execution.ErrValue},
		{"skip count zero", func(c *dic.Context) {
			c.SetFlag(dic.FlagSkipSector, true)
			c.Skip = &dic.SkipSector{Count: 0}
		}, execution.ErrValue},
		{"skip missing", func(c *dic.Context) { c.SetFlag(dic.FlagSkipSector, true) }, execution.ErrValue},
		{"offset missing value", func(c *dic.Context) { c.SetFlag(dic.FlagAddOffset, true) }, execution.ErrValue},
		{"bad opcode", func(c *dic.Context) {
			c.SetFlag(dic.FlagBEOpcode, true)
			c.BEOpcode = "cooked"
		}, execution.ErrValue},
	}
	for _, tc := range cases {
		ctx := build(tc.mutate)
		_, err := ctx.Generate()
		if !errors.Is(err, tc.kind) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.kind, err)
		}
		if _, ok := ctx.GenerateParameters(); ok {
			t.Fatalf("%s: GenerateParameters reported success", tc.name)
		}
	}

	if _, err := dic.New().Generate(); !errors.Is(err, execution.ErrShape) {
		t.Fatalf("expected shape error without command, got %v", err)
	}
}

func TestC2EmissionStopsAtFirstUnset(t *testing.T) {
	ctx, _ := dic.NewCommand(dic.CommandCompactDisc)
	ctx.DrivePath = "D"
	ctx.Filename = "a.bin"
	ctx.SetSpeed(4)
	ctx.SetFlag(dic.FlagC2Opcode, true)
	ctx.C2 = dic.C2Reread{Count: dic.Int32(10), ReadMode: dic.Int32(1), Scope: dic.Scope(dic.C2ScopeRanged)}
	if got := mustGenerate(t, ctx); got != `cd D "a.bin" 4 /c2 10` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestSkipSectorTrailingEmittedOnlyWhenZero(t *testing.T) {
	ctx, _ := dic.NewCommand(dic.CommandCompactDisc)
	ctx.DrivePath = "D:"
	ctx.Filename = "a.bin"
	ctx.SetSpeed(4)
	ctx.SetFlag(dic.FlagSkipSector, true)
	ctx.Skip = &dic.SkipSector{Count: 3, Trailing: dic.Int32(5)}
	if got := mustGenerate(t, ctx); got != `cd D: "a.bin" 4 /sk 3` {
		t.Fatalf("Generate = %q", got)
	}
	ctx.Skip.Trailing = dic.Int32(0)
	if got := mustGenerate(t, ctx); got != `cd D: "a.bin" 4 /sk 3 0` {
		t.Fatalf("Generate = %q", got)
	}
}

func TestReverseRangeOnlyForDVD(t *testing.T) {
	cd := mustParse(t, `cd D: "a.bin" 8 /r`)
	if !cd.IsEnabled(dic.FlagReverse) || cd.ReverseLBA != nil {
		t.Fatal("cd /r must be bare")
	}
	if err := dic.New().Parse(`cd D: "a.bin" 8 /r 1 2`); !errors.Is(err, execution.ErrShape) {
		t.Fatalf("cd /r must not take LBAs, got %v", err)
	}
	dvd := mustParse(t, `dvd D: "a.iso" 8 /r 1 2`)
	if dvd.ReverseLBA == nil || *dvd.ReverseLBA != (dic.LBARange{Start: 1, End: 2}) {
		t.Fatalf("dvd reverse range = %+v", dvd.ReverseLBA)
	}
}

func TestSpeedClamping(t *testing.T) {
	ctx, _ := dic.NewCommand(dic.CommandCompactDisc)
	ctx.SetSpeed(999)
	if speed, _ := ctx.Speed(); speed != 72 {
		t.Fatalf("speed = %d, want 72", speed)
	}
	ctx.SetSpeed(-5)
	if speed, _ := ctx.Speed(); speed != 0 {
		t.Fatalf("speed = %d, want 0", speed)
	}

	bd, _ := dic.NewCommand(dic.CommandBluRay)
	bd.SetSpeed(40)
	if speed, _ := bd.Speed(); speed != 12 {
		t.Fatalf("bd speed = %d, want 12", speed)
	}

	eject, _ := dic.NewCommand(dic.CommandEject)
	eject.SetSpeed(8)
	if _, ok := eject.Speed(); ok {
		t.Fatal("eject has no speed slot")
	}
}

func TestFailedParseLeavesContextEmpty(t *testing.T) {
	ctx := mustParse(t, `cd D: "a.bin" 8 /q`)
	if ctx.ValidateAndSetParameters(`cd D: "a.bin" 8 /q /bogus`) {
		t.Fatal("expected failure")
	}
	if ctx.Command() != "" || ctx.DrivePath != "" || len(ctx.EnabledFlags()) != 0 {
		t.Fatalf("context not cleared: %+v", ctx)
	}
}

func TestAccessors(t *testing.T) {
	cases := []struct {
		parameters string
		media      media.Type
		hasMedia   bool
		dumping    bool
	}{
		{`cd D: "a.bin" 8`, media.CDROM, true, true},
		{`audio D: "a.bin" 8 0 1`, media.CDROM, true, true},
		{`gd D: "a.bin" 8`, media.GDROM, true, true},
		{`xbox D: "a.iso"`, media.DVD, true, true},
		{`bd D: "a.iso" 4`, media.BluRay, true, true},
		{`fd A: "a.img"`, media.FloppyDisk, true, true},
		{`disk G: "a.img"`, media.HardDisk, true, true},
		{`tape "a.bin"`, media.DataCartridge, true, true},
		{`sacd D: "a.iso" 2`, media.Unknown, false, true},
		{`eject D:`, media.Unknown, false, false},
		{`/v`, media.Unknown, false, false},
	}
	for _, tc := range cases {
		ctx := mustParse(t, tc.parameters)
		got, ok := ctx.MediaType()
		if got != tc.media || ok != tc.hasMedia {
			t.Fatalf("%q MediaType = %v, %v", tc.parameters, got, ok)
		}
		if ctx.IsDumpingCommand() != tc.dumping {
			t.Fatalf("%q IsDumpingCommand = %v", tc.parameters, !tc.dumping)
		}
	}

	ctx := dic.New()
	extensions := map[media.Type]string{
		media.CDROM:                    ".bin",
		media.GDROM:                    ".bin",
		media.DVD:                      ".iso",
		media.BluRay:                   ".iso",
		media.NintendoWiiOpticalDisc:   ".iso",
		media.NintendoGameCubeGameDisc: ".iso",
		media.FloppyDisk:               ".img",
		media.HardDisk:                 ".img",
		media.DataCartridge:            ".bin",
	}
	for mediaType, want := range extensions {
		if got, ok := ctx.DefaultExtension(mediaType); !ok || got != want {
			t.Fatalf("DefaultExtension(%v) = %q, %v", mediaType, got, ok)
		}
	}
	if _, ok := ctx.DefaultExtension(media.Unknown); ok {
		t.Fatal("absent media must have no extension")
	}
}

func TestFlagsView(t *testing.T) {
	ctx := mustParse(t, `cd D: "a.bin" 8 /c2 20 /s 2`)
	views := ctx.Flags()
	if len(views) != len(dic.SupportedFlags(dic.CommandCompactDisc)) {
		t.Fatalf("got %d views", len(views))
	}
	found := 0
	for _, view := range views {
		switch view.Name {
		case "/c2":
			found++
			if view.State != execution.FlagEnabled || view.Value != "20" {
				t.Fatalf("unexpected /c2 view %+v", view)
			}
		case "/s":
			found++
			if view.Value != "2" {
				t.Fatalf("unexpected /s view %+v", view)
			}
		}
		if view.Description == "" {
			t.Fatalf("flag %s has no description", view.Name)
		}
	}
	if found != 2 {
		t.Fatalf("expected /c2 and /s views, found %d", found)
	}
}

func TestSupportMatrixCoversEveryCommand(t *testing.T) {
	for _, command := range dic.Commands() {
		ctx, ok := dic.NewCommand(command)
		if !ok {
			t.Fatalf("command %q not in support table", command)
		}
		if ctx.Command() != string(command) {
			t.Fatalf("Command() = %q", ctx.Command())
		}
	}
	for _, flag := range dic.Flags() {
		if flag.Description() == "" {
			t.Fatalf("flag %s has no description", flag)
		}
	}
}

func TestDefaults(t *testing.T) {
	base := func(system media.System, mediaType media.Type, mutate func(*options.DICOptions)) execution.Defaults {
		opts := options.Default()
		if mutate != nil {
			mutate(&opts.DIC)
		}
		return execution.Defaults{
			System:    system,
			MediaType: mediaType,
			Drive:     "D:",
			Filename:  "disc" + map[bool]string{true: ".bin", false: ".iso"}[mediaType == media.CDROM || mediaType == media.GDROM],
			Speed:     16,
			Options:   opts,
		}
	}
	cases := []struct {
		name     string
		defaults execution.Defaults
		want     string
	}{
		{"plain cd", base(media.AudioCD, media.CDROM, nil), `cd D: "disc.bin" 16 /c2 20`},
		{"pc cd", base(media.IBMPCCompatible, media.CDROM, nil), `cd D: "disc.bin" 16 /c2 20 /ns /sf /s 2`},
		{"psx cd", base(media.SonyPlayStation, media.CDROM, nil), `cd D: "disc.bin" 16 /c2 20 /nl /am`},
		{"pc engine multi-sector", base(media.NECPCEngineCD, media.CDROM, func(o *options.DICOptions) {
			o.MultiSectorRead = true
		}), `cd D: "disc.bin" 16 /c2 20 /mr`},
		{"dreamcast gd", base(media.SegaDreamcast, media.GDROM, nil), `gd D: "disc.bin" 16 /c2 20`},
		{"dvd video", base(media.DVDVideo, media.DVD, nil), `dvd D: "disc.iso" 16 /rr 10`},
		{"xbox dvd", base(media.MicrosoftXbox, media.DVD, nil), `xbox D: "disc.iso"`},
		{"bd", base(media.SonyPlayStation3, media.BluRay, func(o *options.DICOptions) {
			o.BDRereadCount = 5
		}), `bd D: "disc.iso" 12 /rr 5`},
		{"gamecube", base(media.NintendoGameCube, media.NintendoGameCubeGameDisc, nil), `dvd D: "disc.iso" 16 /raw`},
		{"quiet paranoid pc cd", base(media.IBMPCCompatible, media.CDROM, func(o *options.DICOptions) {
			o.QuietMode = true
			o.ParanoidMode = true
		}), `cd D: "disc.bin" 16 /c2 20 /q /ns /sf /ss /s 2`},
		{"paranoid dvd", base(media.DVDVideo, media.DVD, func(o *options.DICOptions) {
			o.ParanoidMode = true
		}), `dvd D: "disc.iso" 16 /c /rr 10`},
	}
	for _, tc := range cases {
		ctx := dic.New()
		if err := ctx.SetDefaults(tc.defaults); err != nil {
			t.Fatalf("%s: SetDefaults: %v", tc.name, err)
		}
		if got := mustGenerate(t, ctx); got != tc.want {
			t.Fatalf("%s: Generate = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDefaultsRejectInvalidPair(t *testing.T) {
	ctx := mustParse(t, `cd D: "a.bin" 8`)
	err := ctx.SetDefaults(execution.Defaults{
		System:    media.SonyPlayStation,
		MediaType: media.BluRay,
		Drive:     "D:",
		Filename:  "a.iso",
		Options:   options.Default(),
	})
	if err == nil {
		t.Fatal("expected invalid pair to fail")
	}
	if ctx.Command() != "" {
		t.Fatalf("expected command-less context, got %q", ctx.Command())
	}
}
