package media_test

import (
	"sync"
	"testing"

	"discparams/internal/media"
)

func TestParseTypeIsCaseInsensitive(t *testing.T) {
	cases := map[string]media.Type{
		"CD":       media.CDROM,
		" dvd ":    media.DVD,
		"Blu-Ray":  media.BluRay,
		"GD-ROM":   media.GDROM,
		"HDDVD":    media.HDDVD,
		"floppy":   media.FloppyDisk,
		"GameCube": media.NintendoGameCubeGameDisc,
	}
	for input, want := range cases {
		got, ok := media.ParseType(input)
		if !ok || got != want {
			t.Fatalf("ParseType(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if _, ok := media.ParseType("laserdisc"); ok {
		t.Fatal("expected unknown media name to fail")
	}
	if _, ok := media.ParseType("unknown"); ok {
		t.Fatal("expected placeholder name to fail")
	}
}

func TestParseSystem(t *testing.T) {
	cases := map[string]media.System{
		"PSX":              media.SonyPlayStation,
		"playstation":      media.SonyPlayStation,
		"Microsoft Xbox":   media.MicrosoftXbox,
		"XBOX360":          media.MicrosoftXbox360,
		"pc":               media.IBMPCCompatible,
		"none":             media.NoSystem,
		"NEC PC Engine CD": media.NECPCEngineCD,
	}
	for input, want := range cases {
		got, ok := media.ParseSystem(input)
		if !ok || got != want {
			t.Fatalf("ParseSystem(%q) = %v, %v; want %v", input, got, ok, want)
		}
	}
	if _, ok := media.ParseSystem(""); ok {
		t.Fatal("expected empty system name to fail")
	}
}

func TestSupports(t *testing.T) {
	if !media.MicrosoftXbox.Supports(media.DVD) {
		t.Fatal("xbox should accept DVD")
	}
	if media.SonyPlayStation.Supports(media.BluRay) {
		t.Fatal("playstation should reject BD")
	}
	if !media.NoSystem.Supports(media.FloppyDisk) {
		t.Fatal("no system should accept any media")
	}
	if media.NoSystem.Supports(media.Unknown) {
		t.Fatal("unknown media is never supported")
	}
}

func TestSystemsHaveValidMedia(t *testing.T) {
	for _, system := range media.Systems() {
		if system.Key() == "" {
			t.Fatalf("system %d has no key", system)
		}
		if len(system.ValidMedia()) == 0 {
			t.Fatalf("system %s declares no media", system.Key())
		}
	}
}

func TestParseIsSafeForConcurrentUse(t *testing.T) {
	inputs := []struct {
		system string
		media  string
		want   media.Type
	}{
		{"PSX", "CD-ROM", media.CDROM},
		{"ps2", "DVD", media.DVD},
		{"Sega Dreamcast", "gd-rom", media.GDROM},
		{"pc", "Blu-Ray", media.BluRay},
	}
	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				in := inputs[(worker+i)%len(inputs)]
				if _, ok := media.ParseSystem(in.system); !ok {
					errs <- "system " + in.system
					return
				}
				if got, ok := media.ParseType(in.media); !ok || got != in.want {
					errs <- "media " + in.media
					return
				}
			}
		}(worker)
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Errorf("concurrent parse failed for %s", msg)
	}
}
