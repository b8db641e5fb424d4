package media

// System identifies the platform a disc belongs to.
type System int

const (
	NoSystem System = iota
	IBMPCCompatible
	AppleMacintosh
	AudioCD
	DVDVideo
	BDVideo
	HDDVDVideo
	SonyPlayStation
	SonyPlayStation2
	SonyPlayStation3
	SonyPlayStation4
	SonyPlayStation5
	MicrosoftXbox
	MicrosoftXbox360
	MicrosoftXboxOne
	NintendoGameCube
	NintendoWii
	NintendoWiiU
	SegaDreamcast
	SegaMegaCD
	SegaSaturn
	NECPCEngineCD
	NECPCFX
	PanasonicThreeDO
	PhilipsCDi
	AtariJaguarCD
	SNKNeoGeoCD
)

// Family groups systems that share dumping defaults.
type Family int

const (
	FamilyOther Family = iota
	FamilyComputer
	FamilyPlayStation
	FamilyXbox
	FamilyNintendo
	FamilySega
	FamilyNEC
	FamilyVideo
)

type systemInfo struct {
	key    string
	name   string
	family Family
	media  []Type
	alias  []string
}

var systems = map[System]systemInfo{
	IBMPCCompatible:  {"pc", "IBM PC compatible", FamilyComputer, []Type{CDROM, DVD, BluRay, FloppyDisk, HardDisk, DataCartridge}, []string{"ibm-pc", "windows"}},
	AppleMacintosh:   {"mac", "Apple Macintosh", FamilyComputer, []Type{CDROM, DVD, FloppyDisk, HardDisk}, []string{"macintosh"}},
	AudioCD:          {"audio-cd", "Audio CD", FamilyOther, []Type{CDROM}, []string{"audio"}},
	DVDVideo:         {"dvd-video", "DVD-Video", FamilyVideo, []Type{DVD}, nil},
	BDVideo:          {"bd-video", "BD-Video", FamilyVideo, []Type{BluRay}, nil},
	HDDVDVideo:       {"hddvd-video", "HD DVD-Video", FamilyVideo, []Type{HDDVD}, nil},
	SonyPlayStation:  {"psx", "Sony PlayStation", FamilyPlayStation, []Type{CDROM}, []string{"ps1", "playstation"}},
	SonyPlayStation2: {"ps2", "Sony PlayStation 2", FamilyPlayStation, []Type{CDROM, DVD}, nil},
	SonyPlayStation3: {"ps3", "Sony PlayStation 3", FamilyPlayStation, []Type{BluRay}, nil},
	SonyPlayStation4: {"ps4", "Sony PlayStation 4", FamilyPlayStation, []Type{BluRay}, nil},
	SonyPlayStation5: {"ps5", "Sony PlayStation 5", FamilyPlayStation, []Type{BluRay}, nil},
	MicrosoftXbox:    {"xbox", "Microsoft Xbox", FamilyXbox, []Type{CDROM, DVD}, nil},
	MicrosoftXbox360: {"xbox360", "Microsoft Xbox 360", FamilyXbox, []Type{CDROM, DVD, HDDVD}, []string{"x360"}},
	MicrosoftXboxOne: {"xboxone", "Microsoft Xbox One", FamilyXbox, []Type{BluRay}, []string{"xb1"}},
	NintendoGameCube: {"gc", "Nintendo GameCube", FamilyNintendo, []Type{NintendoGameCubeGameDisc}, []string{"gamecube", "ngc"}},
	NintendoWii:      {"wii", "Nintendo Wii", FamilyNintendo, []Type{DVD, NintendoWiiOpticalDisc}, nil},
	NintendoWiiU:     {"wiiu", "Nintendo Wii U", FamilyNintendo, []Type{BluRay}, nil},
	SegaDreamcast:    {"dc", "Sega Dreamcast", FamilySega, []Type{CDROM, GDROM}, []string{"dreamcast"}},
	SegaMegaCD:       {"mcd", "Sega Mega-CD", FamilySega, []Type{CDROM}, []string{"segacd", "megacd"}},
	SegaSaturn:       {"saturn", "Sega Saturn", FamilySega, []Type{CDROM}, []string{"ss"}},
	NECPCEngineCD:    {"pce", "NEC PC Engine CD", FamilyNEC, []Type{CDROM}, []string{"pcecd", "turbografx-cd"}},
	NECPCFX:          {"pcfx", "NEC PC-FX", FamilyNEC, []Type{CDROM}, nil},
	PanasonicThreeDO: {"3do", "Panasonic 3DO", FamilyOther, []Type{CDROM}, nil},
	PhilipsCDi:       {"cdi", "Philips CD-i", FamilyOther, []Type{CDROM}, []string{"cd-i"}},
	AtariJaguarCD:    {"ajcd", "Atari Jaguar CD", FamilyOther, []Type{CDROM}, []string{"jaguarcd"}},
	SNKNeoGeoCD:      {"ngcd", "SNK Neo Geo CD", FamilyOther, []Type{CDROM}, []string{"neogeocd"}},
}

// Key returns the short identifier used in configuration and flags.
func (s System) Key() string {
	if info, ok := systems[s]; ok {
		return info.key
	}
	return ""
}

// String returns the display name.
func (s System) String() string {
	if info, ok := systems[s]; ok {
		return info.name
	}
	return "none"
}

// Family returns the defaults family for the system.
func (s System) Family() Family {
	return systems[s].family
}

// ValidMedia lists the media types the system ships on.
func (s System) ValidMedia() []Type {
	info, ok := systems[s]
	if !ok {
		return nil
	}
	out := make([]Type, len(info.media))
	copy(out, info.media)
	return out
}

// Supports reports whether the (system, media) pair is valid. NoSystem accepts
// every media type so ad hoc dumps need no platform.
func (s System) Supports(t Type) bool {
	if t == Unknown {
		return false
	}
	if s == NoSystem {
		return true
	}
	for _, candidate := range systems[s].media {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseSystem resolves a system key, display name, or alias case-insensitively.
func ParseSystem(name string) (System, bool) {
	key := fold(name)
	if key == "" || key == "none" {
		return NoSystem, key != ""
	}
	for system, info := range systems {
		if fold(info.key) == key || fold(info.name) == key {
			return system, true
		}
		for _, alias := range info.alias {
			if fold(alias) == key {
				return system, true
			}
		}
	}
	return NoSystem, false
}

// Systems lists every known system in declaration order.
func Systems() []System {
	out := make([]System, 0, len(systems))
	for s := IBMPCCompatible; s <= SNKNeoGeoCD; s++ {
		out = append(out, s)
	}
	return out
}
