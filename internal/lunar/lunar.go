// Package lunar wraps the lunar-go calendar library behind the small
// conversion surface the rest of the system needs: lunar→solar occurrence
// dates and per-day almanac metadata for calendar rendering.
package lunar

import (
	"container/list"
	"fmt"
	"time"

	"github.com/6tail/lunar-go/HolidayUtil"
	"github.com/6tail/lunar-go/calendar"
)

var weekNames = []string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

// YearOf returns the lunar year that contains the given solar date.
func YearOf(t time.Time) int {
	return calendar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day()).GetLunar().GetYear()
}

// ToSolar converts a lunar date to its solar equivalent, as a UTC midnight
// time.Time. A leap flag is honored only when that lunar year actually has
// the leap month; otherwise the regular month is used. Days beyond the
// month's length (lunar months have 29 or 30 days) are an error.
func ToSolar(year, month, day int, leap bool) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("lunar month %d out of range", month)
	}
	ly := calendar.NewLunarYear(year)

	m := month
	if leap && ly.GetLeapMonth() == month {
		m = -month
	}

	lm := ly.GetMonth(m)
	if lm == nil {
		return time.Time{}, fmt.Errorf("lunar year %d has no month %d", year, m)
	}
	if day < 1 || day > lm.GetDayCount() {
		return time.Time{}, fmt.Errorf("lunar %d-%d has no day %d", year, month, day)
	}

	s := calendar.NewLunarFromYmd(year, m, day).GetSolar()
	return time.Date(s.GetYear(), time.Month(s.GetMonth()), s.GetDay(), 0, 0, 0, 0, time.UTC), nil
}

// Holiday describes a legal public holiday entry for a date.
type Holiday struct {
	Name   string `json:"name"`
	IsWork bool   `json:"is_work"` // adjusted working day within a holiday span
}

// DayInfo is the almanac metadata for one solar date, mirroring what the
// dashboard and calendar views render.
type DayInfo struct {
	Solar     string   `json:"solar"`      // 2026年2月10日
	SolarWeek string   `json:"solar_week"` // 星期二
	Lunar     string   `json:"lunar"`      // 腊月廿三
	LunarFull string   `json:"lunar_full"` // 乙巳年 腊月廿三
	GanZhi    string   `json:"ganzhi"`
	ShengXiao string   `json:"shengxiao"`
	JieQi     string   `json:"jieqi"` // solar term falling on this day, if any
	Festivals []string `json:"festivals"`
	Yi        []string `json:"yi"`
	Ji        []string `json:"ji"`
	Holiday   *Holiday `json:"holiday"`
}

// Info returns the almanac metadata for the given solar date.
func Info(t time.Time) DayInfo {
	solar := calendar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day())
	lunar := solar.GetLunar()

	festivals := append(toStrings(solar.GetFestivals()), toStrings(lunar.GetFestivals())...)

	info := DayInfo{
		Solar:     fmt.Sprintf("%d年%d月%d日", solar.GetYear(), solar.GetMonth(), solar.GetDay()),
		SolarWeek: weekNames[solar.GetWeek()],
		Lunar:     lunar.GetMonthInChinese() + "月" + lunar.GetDayInChinese(),
		LunarFull: lunar.GetYearInGanZhi() + "年 " + lunar.GetMonthInChinese() + "月" + lunar.GetDayInChinese(),
		GanZhi:    lunar.GetYearInGanZhi() + "年 " + lunar.GetMonthInGanZhi() + "月 " + lunar.GetDayInGanZhi() + "日",
		ShengXiao: lunar.GetYearShengXiao(),
		JieQi:     lunar.GetJieQi(),
		Festivals: festivals,
		Yi:        toStrings(lunar.GetDayYi()),
		Ji:        toStrings(lunar.GetDayJi()),
	}

	if h := HolidayUtil.GetHoliday(solar.ToYmd()); h != nil {
		info.Holiday = &Holiday{Name: h.GetName(), IsWork: h.IsWork()}
	}

	return info
}

func toStrings(l *list.List) []string {
	out := make([]string, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		if s, ok := e.Value.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
