package tools_test

import (
	"errors"
	"testing"

	"discparams/internal/execution"
	"discparams/internal/media"
	"discparams/internal/options"
	"discparams/internal/tools"
)

func TestLookup(t *testing.T) {
	cases := map[string]execution.Tool{
		"dic":              execution.ToolDIC,
		"DiscImageCreator": execution.ToolDIC,
		" Redumper ":       execution.ToolRedumper,
	}
	for name, want := range cases {
		got, err := tools.Lookup(name)
		if err != nil || got != want {
			t.Fatalf("Lookup(%q) = %q, %v", name, got, err)
		}
	}
	if _, err := tools.Lookup("aaru"); !errors.Is(err, tools.ErrUnknownTool) {
		t.Fatalf("expected unknown tool, got %v", err)
	}
}

func TestParseDispatchesByTool(t *testing.T) {
	ctx, err := tools.Parse(execution.ToolDIC, `cd D: "game.bin" 24 /c2 20`)
	if err != nil {
		t.Fatalf("parse dic: %v", err)
	}
	if ctx.Tool() != execution.ToolDIC || ctx.OutputPath() != "game.bin" {
		t.Fatalf("unexpected context %q %q", ctx.Tool(), ctx.OutputPath())
	}

	if _, err := tools.Parse(execution.ToolRedumper, `cd D: "game.bin" 24`); !errors.Is(err, execution.ErrShape) {
		t.Fatalf("expected redumper to reject DIC syntax, got %v", err)
	}
	if _, err := tools.Parse("aaru", "x"); !errors.Is(err, tools.ErrUnknownTool) {
		t.Fatalf("expected unknown tool, got %v", err)
	}
}

func TestDefaultsForEveryTool(t *testing.T) {
	for _, tool := range tools.Names() {
		ctx, err := tools.Defaults(tool, execution.Defaults{
			System:    media.IBMPCCompatible,
			MediaType: media.CDROM,
			Drive:     "D:",
			Filename:  "disc.bin",
			Speed:     8,
			Options:   options.Default(),
		})
		if err != nil {
			t.Fatalf("%s defaults: %v", tool, err)
		}
		parameters, ok := ctx.GenerateParameters()
		if !ok {
			t.Fatalf("%s: generation failed", tool)
		}
		again, err := tools.Parse(tool, parameters)
		if err != nil {
			t.Fatalf("%s: reparse %q: %v", tool, parameters, err)
		}
		if regenerated, _ := again.GenerateParameters(); regenerated != parameters {
			t.Fatalf("%s: %q regenerated as %q", tool, parameters, regenerated)
		}
	}
}
