package preflight

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"discparams/internal/drivemonitor"
	"discparams/internal/media"
)

// DiscProbe reports the current optical-disc detection snapshot.
type DiscProbe struct {
	Detected bool
	Device   string
	Label    string
	Media    media.Type
}

// ProbeDisc queries udev for the disc currently loaded in device.
func ProbeDisc(ctx context.Context, device string) DiscProbe {
	device = strings.TrimSpace(device)
	if device == "" {
		device = "/dev/sr0"
	}
	if _, err := exec.LookPath("udevadm"); err != nil {
		return DiscProbe{Device: device}
	}

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, "udevadm", "info", "--query=property", "--name="+device)
	output, err := cmd.Output()
	if err != nil {
		return DiscProbe{Device: device}
	}
	return probeFromProperties(device, parseProperties(string(output)))
}

func parseProperties(output string) map[string]string {
	props := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || key == "" {
			continue
		}
		props[key] = value
	}
	return props
}

func probeFromProperties(device string, props map[string]string) DiscProbe {
	if props["ID_CDROM_MEDIA"] != "1" {
		return DiscProbe{Device: device}
	}
	label := strings.TrimSpace(props["ID_FS_LABEL"])
	if label == "" {
		label = "Unknown"
	}
	return DiscProbe{
		Detected: true,
		Device:   device,
		Label:    label,
		Media:    drivemonitor.MediaTypeFromEnv(props),
	}
}

// DiscDetail renders a display-friendly summary for status output.
func (p DiscProbe) DiscDetail() string {
	if !p.Detected {
		return "No disc detected"
	}
	return fmt.Sprintf("%s disc '%s' on %s", p.Media, p.Label, p.Device)
}
