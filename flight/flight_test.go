package flight

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/readthrough"
	"github.com/unkn0wn-root/readthrough/driver"
)

func TestConcurrentMissesShareOneLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	d := driver.NewMemory()

	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	var calls atomic.Int64
	inner, err := readthrough.New[int, string](d, readthrough.Options[int, string]{
		Key: func(id int) string { return "u:" + strconv.Itoa(id) },
		Loader: func(context.Context, int) (string, error) {
			calls.Add(1)
			entered <- struct{}{}
			<-release
			return "ada", nil
		},
	})
	require.NoError(err)
	r := Wrap(inner)

	// first caller enters the loader and blocks there
	results := make(chan string, 4)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, err := r.Get(ctx, 1)
		if err != nil {
			t.Errorf("Get: %v", err)
		}
		results <- v
	}()
	<-entered

	// the rest join the in-flight call
	var joined sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		joined.Add(1)
		go func() {
			defer wg.Done()
			joined.Done()
			v, err := r.Get(ctx, 1)
			if err != nil {
				t.Errorf("Get: %v", err)
			}
			results <- v
		}()
	}
	joined.Wait()
	close(release)
	wg.Wait()
	close(results)

	for v := range results {
		require.Equal("ada", v)
	}
	// late joiners either shared the flight or hit the written-back entry
	require.Equal(int64(1), calls.Load())
	require.Equal([]string{"u:1"}, d.Keys())
}

func TestErrorsAreReturnedAndNotCached(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	boom := errors.New("boom")

	var calls int
	inner, err := readthrough.New[int, int](driver.NewMemory(), readthrough.Options[int, int]{
		Key:    strconv.Itoa,
		Loader: func(context.Context, int) (int, error) { calls++; return 0, boom },
	})
	require.NoError(err)
	r := Wrap(inner)

	_, err = r.Get(ctx, 1)
	require.ErrorIs(err, boom)
	_, err = r.Get(ctx, 1)
	require.ErrorIs(err, boom)
	require.Equal(2, calls)
}

func TestPassThrough(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	inner, err := readthrough.New[int, int](driver.NewMemory(), readthrough.Options[int, int]{
		Namespace: "n",
		Key:       strconv.Itoa,
		Loader:    func(context.Context, int) (int, error) { return -1, nil },
	})
	require.NoError(err)
	r := Wrap(inner)

	require.True(r.Enabled())
	require.Equal("n:3", r.Key(3))
	require.NoError(r.Set(ctx, 3, 33))
	v, err := r.Get(ctx, 3)
	require.NoError(err)
	require.Equal(33, v)
}
