package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
)

// ErrAlreadyRunning indicates another timer process already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// InstanceGuard keeps a loopback listener open for the process lifetime so a
// second tray timer refuses to start.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the loopback port derived from appName.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := LockAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", address, ErrAlreadyRunning)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// LockAddress returns the loopback address used as the lock for appName.
// Names differing only in case or surrounding space share a lock.
func LockAddress(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(name))
	span := uint32(maxLockPort - minLockPort + 1)
	return fmt.Sprintf("127.0.0.1:%d", minLockPort+int(hash.Sum32()%span))
}
