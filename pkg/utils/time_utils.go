package utils

import (
	"fmt"
	"time"
)

// ChinaTimezone is the timezone label reported with every forecast.
const ChinaTimezone = "Asia/Shanghai"

// China Standard Time (CST, +08:00)
var cnLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Shanghai"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*3600)
}()

// NowUnixMillis is the timestamp used in response envelopes.
func NowUnixMillis() int64 { return time.Now().UnixMilli() }

// FromUnixSecondsCN converts an epoch value in seconds to China time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromUnixSecondsCN(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(cnLoc)
}

var chineseWeekdays = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// FormatChineseDate renders the short date label shown on forecast cards,
// e.g. "1月5日 周一".
func FormatChineseDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	t = t.In(cnLoc)
	return fmt.Sprintf("%d月%d日 %s", int(t.Month()), t.Day(), chineseWeekdays[int(t.Weekday())])
}
