package scanner

import "time"

const (
	defaultPollInterval  = 30 * time.Second
	defaultProgressEvery = 1000
)
