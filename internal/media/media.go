// Package media describes the physical media and host systems a dump targets.
package media

import (
	"strings"

	"golang.org/x/text/cases"
)

// Type identifies a physical media format.
type Type int

const (
	Unknown Type = iota
	CDROM
	DVD
	GDROM
	HDDVD
	BluRay
	NintendoGameCubeGameDisc
	NintendoWiiOpticalDisc
	FloppyDisk
	HardDisk
	DataCartridge
)

var typeNames = map[Type]string{
	Unknown:                  "unknown",
	CDROM:                    "cd",
	DVD:                      "dvd",
	GDROM:                    "gd",
	HDDVD:                    "hddvd",
	BluRay:                   "bd",
	NintendoGameCubeGameDisc: "gamecube",
	NintendoWiiOpticalDisc:   "wii",
	FloppyDisk:               "floppy",
	HardDisk:                 "harddisk",
	DataCartridge:            "tape",
}

var typeAliases = map[string]Type{
	"cdrom":     CDROM,
	"cd-rom":    CDROM,
	"dvd-rom":   DVD,
	"gdrom":     GDROM,
	"gd-rom":    GDROM,
	"hd-dvd":    HDDVD,
	"bluray":    BluRay,
	"blu-ray":   BluRay,
	"bdrom":     BluRay,
	"bd-rom":    BluRay,
	"gcd":       NintendoGameCubeGameDisc,
	"wod":       NintendoWiiOpticalDisc,
	"fd":        FloppyDisk,
	"hdd":       HardDisk,
	"disk":      HardDisk,
	"cartridge": DataCartridge,
}

// String returns the short name used in configuration and on the command line.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsOptical reports whether the media is read by an optical drive.
func (t Type) IsOptical() bool {
	switch t {
	case CDROM, DVD, GDROM, HDDVD, BluRay, NintendoGameCubeGameDisc, NintendoWiiOpticalDisc:
		return true
	default:
		return false
	}
}

// ParseType resolves a media name case-insensitively.
func ParseType(name string) (Type, bool) {
	key := fold(name)
	if key == "" {
		return Unknown, false
	}
	for t, candidate := range typeNames {
		if t != Unknown && candidate == key {
			return t, true
		}
	}
	if t, ok := typeAliases[key]; ok {
		return t, true
	}
	return Unknown, false
}

// Types lists every known media type in declaration order.
func Types() []Type {
	return []Type{
		CDROM, DVD, GDROM, HDDVD, BluRay,
		NintendoGameCubeGameDisc, NintendoWiiOpticalDisc,
		FloppyDisk, HardDisk, DataCartridge,
	}
}

// fold builds a Caser per call; Casers carry state and are not safe for
// concurrent use.
func fold(value string) string {
	return cases.Fold().String(strings.TrimSpace(value))
}
