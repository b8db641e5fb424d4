package options_test

import (
	"strings"
	"testing"

	"discparams/internal/options"
)

func TestDefault(t *testing.T) {
	opts := options.Default()
	if opts.DIC.RereadCount != 20 || opts.DIC.DVDRereadCount != 10 || opts.DIC.BDRereadCount != 10 {
		t.Fatalf("unexpected DIC defaults: %+v", opts.DIC)
	}
	if opts.Redumper.RereadCount != 20 {
		t.Fatalf("unexpected redumper retries: %d", opts.Redumper.RereadCount)
	}
	if err := opts.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejectsNegativeCounts(t *testing.T) {
	opts := options.Default()
	opts.DIC.DVDRereadCount = -1
	opts.Redumper.RereadCount = -3
	err := opts.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"dic.dvd_reread_count", "redumper.reread_count"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q missing %q", err, want)
		}
	}
}
