package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockAddressIsStable(t *testing.T) {
	assert.Equal(t, LockAddress("FinPom"), LockAddress(" finpom "))
	assert.NotEqual(t, LockAddress("FinPom"), LockAddress("FinPom-test"))
}

func TestSecondInstanceIsRejected(t *testing.T) {
	name := "finpom-single-instance-test"
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("lock port unavailable: %v", err)
	}

	_, err = AcquireSingleInstance(name)
	assert.True(t, errors.Is(err, ErrAlreadyRunning))

	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(name)
	require.NoError(t, err)
	require.NoError(t, again.Release())
}
