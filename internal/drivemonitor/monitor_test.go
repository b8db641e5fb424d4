package drivemonitor

import (
	"context"
	"errors"
	"testing"

	"github.com/pilebones/go-udev/netlink"

	"discparams/internal/logging"
	"discparams/internal/media"
)

func TestNewEmptyDeviceReturnsNil(t *testing.T) {
	m := New("  ", logging.NewNop(), nil)
	if m != nil {
		t.Fatal("expected nil monitor for empty device")
	}
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("nil Start: %v", err)
	}
	m.Stop()
	if m.Running() {
		t.Fatal("nil monitor should not report running")
	}
	if m.Device() != "" {
		t.Fatal("nil monitor should have no device")
	}
}

func TestStopWithoutStart(t *testing.T) {
	m := New("/dev/sr0", logging.NewNop(), nil)
	m.Stop()
	m.Stop()
	if m.Running() {
		t.Fatal("expected stopped monitor")
	}
}

func TestBuildMatcher(t *testing.T) {
	matcher := buildMatcher()

	tests := []struct {
		name  string
		event netlink.UEvent
		want  bool
	}{
		{
			name: "change with media",
			event: netlink.UEvent{
				Action: netlink.CHANGE,
				Env: map[string]string{
					"SUBSYSTEM":      "block",
					"ID_CDROM":       "1",
					"ID_CDROM_MEDIA": "1",
					"DEVNAME":        "/dev/sr0",
				},
			},
			want: true,
		},
		{
			name: "add with media",
			event: netlink.UEvent{
				Action: netlink.ADD,
				Env: map[string]string{
					"SUBSYSTEM":      "block",
					"ID_CDROM":       "1",
					"ID_CDROM_MEDIA": "1",
				},
			},
			want: true,
		},
		{
			name: "remove ignored",
			event: netlink.UEvent{
				Action: netlink.REMOVE,
				Env: map[string]string{
					"SUBSYSTEM":      "block",
					"ID_CDROM":       "1",
					"ID_CDROM_MEDIA": "1",
				},
			},
			want: false,
		},
		{
			name: "empty tray ignored",
			event: netlink.UEvent{
				Action: netlink.CHANGE,
				Env: map[string]string{
					"SUBSYSTEM": "block",
					"ID_CDROM":  "1",
				},
			},
			want: false,
		},
		{
			name: "non cdrom ignored",
			event: netlink.UEvent{
				Action: netlink.CHANGE,
				Env: map[string]string{
					"SUBSYSTEM": "block",
					"DEVNAME":   "/dev/sda",
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matcher.Evaluate(tt.event); got != tt.want {
				t.Fatalf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMediaTypeFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want media.Type
	}{
		{"cd", map[string]string{"ID_CDROM_MEDIA_CD": "1"}, media.CDROM},
		{"cd-r", map[string]string{"ID_CDROM_MEDIA_CD_R": "1"}, media.CDROM},
		{"dvd plus r", map[string]string{"ID_CDROM_MEDIA_DVD_PLUS_R": "1"}, media.DVD},
		{"hddvd", map[string]string{"ID_CDROM_MEDIA_HDDVD": "1"}, media.HDDVD},
		{"bd beats dvd", map[string]string{"ID_CDROM_MEDIA_DVD": "1", "ID_CDROM_MEDIA_BD": "1"}, media.BluRay},
		{"dvd beats cd", map[string]string{"ID_CDROM_MEDIA_CD": "1", "ID_CDROM_MEDIA_DVD": "1"}, media.DVD},
		{"zero value ignored", map[string]string{"ID_CDROM_MEDIA_BD": "0"}, media.Unknown},
		{"no properties", map[string]string{"ID_CDROM_MEDIA": "1"}, media.Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MediaTypeFromEnv(tt.env); got != tt.want {
				t.Fatalf("MediaTypeFromEnv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleEvent(t *testing.T) {
	type call struct {
		device string
		media  media.Type
	}

	tests := []struct {
		name       string
		env        map[string]string
		wantCalled bool
		want       call
	}{
		{
			name:       "configured device",
			env:        map[string]string{"DEVNAME": "/dev/sr0", "ID_CDROM_MEDIA_DVD": "1"},
			wantCalled: true,
			want:       call{"/dev/sr0", media.DVD},
		},
		{
			name:       "devpath fallback",
			env:        map[string]string{"DEVPATH": "/devices/pci0000:00/ata1/host0/block/sr0", "ID_CDROM_MEDIA_CD": "1"},
			wantCalled: true,
			want:       call{"/dev/sr0", media.CDROM},
		},
		{
			name: "other device",
			env:  map[string]string{"DEVNAME": "/dev/sr1", "ID_CDROM_MEDIA_CD": "1"},
		},
		{
			name: "no device name",
			env:  map[string]string{"ID_CDROM_MEDIA_CD": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []call
			m := New("/dev/sr0", logging.NewNop(), func(_ context.Context, device string, mediaType media.Type) error {
				got = append(got, call{device, mediaType})
				return nil
			})
			m.handleEvent(context.Background(), netlink.UEvent{Action: netlink.CHANGE, Env: tt.env})

			if !tt.wantCalled {
				if len(got) != 0 {
					t.Fatalf("handler unexpectedly called: %v", got)
				}
				return
			}
			if len(got) != 1 || got[0] != tt.want {
				t.Fatalf("handler calls = %v, want [%v]", got, tt.want)
			}
		})
	}
}

func TestHandleEventHandlerError(t *testing.T) {
	called := false
	m := New("/dev/sr0", logging.NewNop(), func(context.Context, string, media.Type) error {
		called = true
		return errors.New("boom")
	})
	m.handleEvent(context.Background(), netlink.UEvent{
		Action: netlink.ADD,
		Env:    map[string]string{"DEVNAME": "/dev/sr0"},
	})
	if !called {
		t.Fatal("expected handler call")
	}
}
