// Package metadata extracts batch metadata (capture date, data period,
// leaderboard type) from export filenames, used to backfill canonical
// fields the source table itself lacks.
package metadata

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FileInfo is the metadata recoverable from a filename.
type FileInfo struct {
	FileDate    string // "2025-04-27" or "2025-04-27至2025-05-26"
	DataPeriod  string // "30天", "单日数据", ...
	RankType    string // leaderboard name found in the filename, or ""
	SnapshotTag string // same as FileDate, carried as the snapshot label
	SourceTable string // leading filename segment
}

// Leaderboard names recognized in filenames.
var rankTypes = []string{"销量榜", "热推榜", "潜力榜", "持续好货榜", "同期榜"}

var (
	dateRangeRe  = regexp.MustCompile(`(\d{8})-(\d{8})`)
	singleDateRe = regexp.MustCompile(`(\d{8})`)
	relativeRe   = regexp.MustCompile(`(\d+)([dmy])`)
)

const (
	unknownDate   = "未知时间"
	unknownPeriod = "未知周期"
)

// FromFilename parses capture date, period, and leaderboard type out of a
// filename. Recognized date forms, in priority order: YYYYMMDD-YYYYMMDD
// ranges, single YYYYMMDD dates, and relative periods like 30d/7d/1y.
func FromFilename(filename string) FileInfo {
	info := FileInfo{FileDate: unknownDate, DataPeriod: unknownPeriod}

	if m := dateRangeRe.FindStringSubmatch(filename); m != nil {
		start, end := m[1], m[2]
		info.FileDate = fmt.Sprintf("%s至%s", dashDate(start), dashDate(end))
		info.DataPeriod = rangePeriod(start, end)
	} else if m := singleDateRe.FindStringSubmatch(filename); m != nil {
		info.FileDate = dashDate(m[1])
		info.DataPeriod = "单日数据"
	} else if m := relativeRe.FindStringSubmatch(strings.ToLower(filename)); m != nil {
		units := map[string]string{"d": "天", "m": "月", "y": "年"}
		info.DataPeriod = m[1] + units[m[2]]
		info.FileDate = fmt.Sprintf("相对时间(%s)", info.DataPeriod)
	}

	for _, rt := range rankTypes {
		if strings.Contains(filename, rt) {
			info.RankType = rt
			break
		}
	}

	if i := strings.Index(filename, "-"); i > 0 {
		info.SourceTable = filename[:i]
	} else if i := strings.Index(filename, "."); i > 0 {
		info.SourceTable = filename[:i]
	} else {
		info.SourceTable = filename
	}

	info.SnapshotTag = info.FileDate
	return info
}

// Known reports whether the filename carried a usable date.
func (fi FileInfo) Known() bool { return fi.FileDate != unknownDate }

func dashDate(yyyymmdd string) string {
	return yyyymmdd[:4] + "-" + yyyymmdd[4:6] + "-" + yyyymmdd[6:8]
}

func rangePeriod(start, end string) string {
	s, err1 := time.Parse("20060102", start)
	e, err2 := time.Parse("20060102", end)
	if err1 != nil || err2 != nil {
		return "区间周期"
	}
	days := int(e.Sub(s).Hours()/24) + 1
	return fmt.Sprintf("%d天", days)
}
