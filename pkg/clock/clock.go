package clock

import "time"

// Clock 当前时间来源，提醒引擎和活动时间戳都通过它取时间，便于测试注入
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// System 返回墙上时钟
func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed 固定时间，测试用
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
