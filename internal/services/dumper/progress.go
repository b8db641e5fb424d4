package dumper

import (
	"regexp"
	"strconv"
	"strings"
)

// ProgressUpdate captures dump progress parsed from tool output.
type ProgressUpdate struct {
	Stage   string
	Percent float64
	Current int64
	Total   int64
	Message string
}

var (
	lbaCounterPattern = regexp.MustCompile(`(-?\d+)\s*/\s*(\d+)`)
	percentPattern    = regexp.MustCompile(`\[\s*(\d{1,3})%\]`)
	stageTrimPattern  = regexp.MustCompile(`(?i)[\s:]*(\(lba\)|lba)?[\s:]*$`)
)

// parseProgress recognises "current/total" LBA counters and "[ n%]" prefixes.
// Lines starting with "***" announce a new stage without a counter.
func parseProgress(line string) (ProgressUpdate, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return ProgressUpdate{}, false
	}
	if strings.HasPrefix(line, "***") {
		stage := strings.TrimSpace(strings.Trim(line, "*"))
		if stage == "" {
			return ProgressUpdate{}, false
		}
		return ProgressUpdate{Stage: stage, Percent: -1, Message: line}, true
	}

	update := ProgressUpdate{Percent: -1, Message: line}
	rest := line
	found := false
	if loc := percentPattern.FindStringSubmatchIndex(line); loc != nil {
		if pct, err := strconv.Atoi(line[loc[2]:loc[3]]); err == nil && pct <= 100 {
			update.Percent = float64(pct)
			found = true
		}
		rest = line[:loc[0]] + line[loc[1]:]
	}
	if loc := lbaCounterPattern.FindStringSubmatchIndex(rest); loc != nil {
		current, errCur := strconv.ParseInt(rest[loc[2]:loc[3]], 10, 64)
		total, errTot := strconv.ParseInt(rest[loc[4]:loc[5]], 10, 64)
		if errCur == nil && errTot == nil && total > 0 {
			update.Current = current
			update.Total = total
			if update.Percent < 0 {
				update.Percent = clampPercent(float64(current) / float64(total) * 100)
			}
			update.Stage = stageTrimPattern.ReplaceAllString(rest[:loc[0]], "")
			found = true
		}
	}
	if !found {
		return ProgressUpdate{}, false
	}
	update.Stage = strings.TrimSpace(update.Stage)
	return update, true
}

func clampPercent(value float64) float64 {
	switch {
	case value < 0:
		return 0
	case value > 100:
		return 100
	default:
		return value
	}
}
