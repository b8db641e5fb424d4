// Package drivemonitor watches udev netlink events for disc insertion and
// reports the inserted media type.
package drivemonitor

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pilebones/go-udev/netlink"

	"discparams/internal/logging"
	"discparams/internal/media"
)

// Handler receives the device path and detected media type of an inserted disc.
type Handler func(ctx context.Context, device string, mediaType media.Type) error

// Monitor listens for udev netlink events on one device.
type Monitor struct {
	logger  *slog.Logger
	handler Handler
	device  string

	mu      sync.Mutex
	conn    *netlink.UEventConn
	quit    chan struct{}
	running bool
}

// New creates a monitor for device. It returns nil when device is empty; all
// methods are safe on a nil monitor.
func New(device string, logger *slog.Logger, handler Handler) *Monitor {
	device = strings.TrimSpace(device)
	if device == "" {
		return nil
	}
	return &Monitor{
		logger:  logging.NewComponentLogger(logger, "drive-monitor"),
		handler: handler,
		device:  device,
	}
}

// Device returns the watched device path.
func (m *Monitor) Device() string {
	if m == nil {
		return ""
	}
	return m.device
}

// Start begins listening for udev netlink events. A socket failure is logged
// and leaves the monitor stopped; check Running afterwards.
func (m *Monitor) Start(ctx context.Context) error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return nil
	}

	conn := new(netlink.UEventConn)
	if err := conn.Connect(netlink.UdevEvent); err != nil {
		logging.WarnWithContext(m.logger, "failed to connect to netlink socket", "netlink_connect_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "run on Linux with access to netlink sockets"),
			logging.String(logging.FieldImpact, "disc insertion is not detected"),
		)
		return nil
	}

	m.conn = conn
	m.quit = make(chan struct{})
	m.running = true

	quit := m.quit
	go m.monitorLoop(ctx, conn, quit)

	m.logger.Info("drive monitor started",
		logging.String(logging.FieldEventType, "drive_monitor_started"),
		logging.String(logging.FieldDevice, m.device),
	)
	return nil
}

// Stop shuts down the monitor.
func (m *Monitor) Stop() {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.running {
		return
	}
	if m.quit != nil {
		close(m.quit)
		m.quit = nil
	}
	if m.conn != nil {
		_ = m.conn.Close()
		m.conn = nil
	}
	m.running = false

	m.logger.Info("drive monitor stopped",
		logging.String(logging.FieldEventType, "drive_monitor_stopped"),
	)
}

// Running reports whether the monitor is active.
func (m *Monitor) Running() bool {
	if m == nil {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *Monitor) monitorLoop(ctx context.Context, conn *netlink.UEventConn, quit <-chan struct{}) {
	queue := make(chan netlink.UEvent)
	errs := make(chan error)
	monitorQuit := conn.Monitor(queue, errs, buildMatcher())

	for {
		select {
		case <-ctx.Done():
			close(monitorQuit)
			return
		case <-quit:
			close(monitorQuit)
			return
		case uevent := <-queue:
			m.handleEvent(ctx, uevent)
		case err := <-errs:
			logging.WarnWithContext(m.logger, "netlink monitor error", "netlink_monitor_error",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check kernel netlink subsystem"),
				logging.String(logging.FieldImpact, "disc detection may be affected"),
			)
		}
	}
}

// buildMatcher matches SUBSYSTEM=block, ID_CDROM=1, ID_CDROM_MEDIA=1 on
// add or change.
func buildMatcher() netlink.Matcher {
	action := "change|add"
	rules := &netlink.RuleDefinitions{}
	rules.AddRule(netlink.RuleDefinition{
		Action: &action,
		Env: map[string]string{
			"SUBSYSTEM":      "block",
			"ID_CDROM":       "1",
			"ID_CDROM_MEDIA": "1",
		},
	})
	return rules
}

func (m *Monitor) handleEvent(ctx context.Context, uevent netlink.UEvent) {
	devname := deviceName(uevent.Env)
	if devname == "" {
		m.logger.Debug("ignoring event without device name",
			logging.String("action", string(uevent.Action)),
			logging.String("kobj", uevent.KObj),
		)
		return
	}
	if devname != m.device {
		m.logger.Debug("ignoring event for non-configured device",
			logging.String(logging.FieldDevice, devname),
			logging.String("configured_device", m.device),
		)
		return
	}

	mediaType := MediaTypeFromEnv(uevent.Env)
	m.logger.Info("disc media detected",
		logging.String(logging.FieldEventType, "disc_detected"),
		logging.String(logging.FieldDevice, devname),
		logging.String("media", mediaType.String()),
		logging.String("action", string(uevent.Action)),
	)

	if m.handler == nil {
		return
	}
	if err := m.handler(ctx, devname, mediaType); err != nil {
		logging.WarnWithContext(m.logger, "disc handler failed", "disc_handler_failed",
			logging.Error(err),
			logging.String(logging.FieldDevice, devname),
			logging.String(logging.FieldImpact, "no parameters produced for this disc"),
		)
	}
}

// deviceName returns DEVNAME, or /dev/<last DEVPATH segment>.
func deviceName(env map[string]string) string {
	if devname := env["DEVNAME"]; devname != "" {
		return devname
	}
	devpath := env["DEVPATH"]
	if devpath == "" {
		return ""
	}
	parts := strings.Split(devpath, "/")
	return "/dev/" + parts[len(parts)-1]
}

// mediaKeys is checked in order; the first set key wins.
var mediaKeys = []struct {
	prefix string
	kind   media.Type
}{
	{"ID_CDROM_MEDIA_BD", media.BluRay},
	{"ID_CDROM_MEDIA_HDDVD", media.HDDVD},
	{"ID_CDROM_MEDIA_DVD", media.DVD},
	{"ID_CDROM_MEDIA_CD", media.CDROM},
}

// MediaTypeFromEnv maps udev ID_CDROM_MEDIA_* properties to a media type.
// Any property with the family prefix and value "1" counts, so
// ID_CDROM_MEDIA_DVD_PLUS_R selects DVD.
func MediaTypeFromEnv(env map[string]string) media.Type {
	for _, key := range mediaKeys {
		for name, value := range env {
			if value == "1" && strings.HasPrefix(name, key.prefix) {
				return key.kind
			}
		}
	}
	return media.Unknown
}
