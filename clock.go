package rubytime

import "fmt"

const (
	oneHour   = int64(Hour)
	oneMinute = int64(Minute)
	oneSecond = int64(Second)
)

// makeTime packs an hour/minute/second/nanosecond time-of-day into a
// nanosecond-of-day value. Bounds are the ordinary 24-hour clock; the
// leap-second (second == 60) and midnight-rollover (hour == 24) quirks
// strptime.go accepts are normalized away by resolve.go before makeTime is
// ever called, so this stays a strict validator.
func makeTime(hour, min, sec, nsec int) (int64, error) {
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 || nsec < 0 || nsec > 999999999 {
		return 0, fmt.Errorf("invalid time")
	}

	h, m, s, n := int64(hour), int64(min), int64(sec), int64(nsec)
	return h*oneHour + m*oneMinute + s*oneSecond + n, nil
}

func fromTime(v int64) (hour, min, sec, nsec int) {
	nsec = int(v) % int(oneSecond)
	sec = int(v) / int(oneSecond)

	hour = (sec / (60 * 60)) % 24
	sec -= hour * (60 * 60)

	min = sec / 60
	sec -= min * 60
	return
}

func simpleTimeStr(hour, min, sec, nsec int, offset *int64) string {
	out := fmt.Sprintf("%02d:%02d:%02d", hour, min, sec)
	if nsec != 0 {
		out += fmt.Sprintf(".%09d", nsec)
	}

	if offset == nil {
		return out
	}
	return out + offsetString(*offset, ":")
}

func timeNanoseconds(t int64) int {
	return int(t % oneSecond)
}

func compareTimes(t, t2 int64) int {
	switch {
	case t < t2:
		return -1
	case t > t2:
		return 1
	default:
		return 0
	}
}
