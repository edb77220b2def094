package service

import "time"

// nowUTC reads fn, falling back to time.Now.
func nowUTC(fn func() time.Time) time.Time {
	if fn != nil {
		return fn().UTC()
	}
	return time.Now().UTC()
}
