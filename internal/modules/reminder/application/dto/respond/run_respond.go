package respond

import "time"

// RunRespond 定时扫描接口的返回
type RunRespond struct {
	Success   bool      `json:"success"`
	Scanned   int       `json:"scanned"`
	Processed int       `json:"processed"`
	Failed    int       `json:"failed"`
	Timestamp time.Time `json:"timestamp"`
}
