package store

import (
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
	"time"
)

func TestClock_next(t *testing.T) {
	t.Parallel()

	t.Run("follows the wall clock forward", func(t *testing.T) {
		c := &clock{now: steppingClock(time.UnixMilli(10), time.Millisecond)}
		require.Equal(t, int64(10), c.next())
		require.Equal(t, int64(11), c.next())
	})

	t.Run("never goes backwards", func(t *testing.T) {
		times := []int64{100, 50, 100, 101}
		i := 0
		c := &clock{now: func() time.Time {
			ts := times[i]
			i++
			return time.UnixMilli(ts)
		}}

		var got []int64
		for range times {
			got = append(got, c.next())
		}
		require.Equal(t, []int64{100, 100, 100, 101}, got)
	})

	t.Run("concurrent callers", func(t *testing.T) {
		c := &clock{now: time.Now}
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				prev := int64(0)
				for j := 0; j < 100; j++ {
					ts := c.next()
					require.GreaterOrEqual(t, ts, prev)
					prev = ts
				}
			}()
		}
		wg.Wait()
	})
}
