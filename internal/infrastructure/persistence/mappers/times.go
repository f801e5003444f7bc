package mappers

import "time"

func milliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func milliPtrToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

func timePtrToMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
