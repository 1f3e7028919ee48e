//go:build !linux

package ipc

import "time"

const futexPollInterval = 200 * time.Millisecond

func futexWake(word *int32, n int32) {}

func futexWaitTimeout(word *int32, expect int32) {
	time.Sleep(futexPollInterval)
}
