package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run(`run check`, func(t *testing.T) {
		called := false
		success, err := WithDelay(context.Background(), "trip_1", time.Second, func() error {
			called = true
			require.True(t, IsLocked("trip_1"))
			return nil
		})
		require.True(t, success)
		require.Nil(t, err)
		require.True(t, called)
		require.False(t, IsLocked("trip_1"))
	})

	t.Run(`error check`, func(t *testing.T) {
		success, err := WithDelay(context.Background(), "trip_2", time.Second, func() error {
			return errors.New("save failed")
		})
		require.True(t, success)
		require.NotNil(t, err)
		require.False(t, IsLocked("trip_2"))
	})

	t.Run(`timeout check`, func(t *testing.T) {
		lockMap.Store("trip_3", true)
		defer lockMap.Delete("trip_3")
		called := false
		success, err := WithDelay(context.Background(), "trip_3", 50*time.Millisecond, func() error {
			called = true
			return nil
		})
		require.False(t, success)
		require.Nil(t, err)
		require.False(t, called)
	})

	t.Run(`context done check`, func(t *testing.T) {
		lockMap.Store("trip_4", true)
		defer lockMap.Delete("trip_4")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		success, err := WithDelay(ctx, "trip_4", time.Second, func() error { return nil })
		require.False(t, success)
		require.Nil(t, err)
	})

	t.Run(`serial check`, func(t *testing.T) {
		counter := 0
		wg := sync.WaitGroup{}
		for n := 0; n < 10; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				success, _ := WithDelay(context.Background(), "trip_5", 5*time.Second, func() error {
					value := counter
					time.Sleep(time.Millisecond)
					counter = value + 1
					return nil
				})
				assert.True(t, success)
			}()
		}
		wg.Wait()
		require.Equal(t, 10, counter)
	})
}
