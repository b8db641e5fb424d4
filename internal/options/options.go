// Package options holds the user dumping preferences that seed default
// parameters.
package options

import (
	"errors"
	"fmt"
)

// Options aggregates per-tool preferences.
type Options struct {
	DIC      DICOptions
	Redumper RedumperOptions
}

// DICOptions tunes DiscImageCreator defaults.
type DICOptions struct {
	QuietMode            bool
	ParanoidMode         bool
	UseCMIFlag           bool
	MultiSectorRead      bool
	MultiSectorReadValue int32
	RereadCount          int32
	DVDRereadCount       int32
	BDRereadCount        int32
}

// RedumperOptions tunes Redumper defaults.
type RedumperOptions struct {
	EnableVerbose    bool
	EnableDebug      bool
	EnableSkeleton   bool
	RefineSubchannel bool
	DriveType        string
	ReadMethod       string
	SectorOrder      string
	RereadCount      int32
	LeadinRetryCount int32
}

// Default returns the stock preferences.
func Default() Options {
	return Options{
		DIC: DICOptions{
			QuietMode:      false,
			ParanoidMode:   false,
			RereadCount:    20,
			DVDRereadCount: 10,
			BDRereadCount:  10,
		},
		Redumper: RedumperOptions{
			EnableVerbose:    true,
			RereadCount:      20,
			LeadinRetryCount: 4,
		},
	}
}

// Validate rejects negative counts.
func (o Options) Validate() error {
	var errs []error
	check := func(name string, value int32) {
		if value < 0 {
			errs = append(errs, fmt.Errorf("%s must be non-negative", name))
		}
	}
	check("dic.reread_count", o.DIC.RereadCount)
	check("dic.dvd_reread_count", o.DIC.DVDRereadCount)
	check("dic.bd_reread_count", o.DIC.BDRereadCount)
	check("dic.multi_sector_read_value", o.DIC.MultiSectorReadValue)
	check("redumper.reread_count", o.Redumper.RereadCount)
	check("redumper.leadin_retry_count", o.Redumper.LeadinRetryCount)
	return errors.Join(errs...)
}
