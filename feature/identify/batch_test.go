package identify

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubIdentifier struct {
	calls atomic.Int32
	fail  string
	delay time.Duration
}

func (s *stubIdentifier) Identify(ctx context.Context, path string) (*Result, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if path == s.fail {
		return nil, errors.New("catalog unavailable")
	}
	res := NewResult()
	res.Add("label of " + path)
	return res, nil
}

func TestRunBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	paths := make([]string, 200)
	for i := range paths {
		paths[i] = fmt.Sprintf("path/%03d.tex", i)
	}

	got, err := RunBatch(context.Background(), &stubIdentifier{}, paths, BatchOptions{Workers: 8})
	require.NoError(t, err)
	require.Len(t, got, len(paths))
	for i, r := range got {
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, []string{"label of " + paths[i]}, r.Labels)
	}
}

func TestRunBatchFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.WarnLevel)
	paths := make([]string, 100)
	for i := range paths {
		paths[i] = fmt.Sprintf("path/%03d.tex", i)
	}
	stub := &stubIdentifier{fail: paths[3], delay: time.Millisecond}

	got, err := RunBatch(context.Background(), stub, paths, BatchOptions{Workers: 2, Logger: zap.New(core)})
	require.NoError(t, err)
	require.Len(t, got, len(paths))
	assert.Equal(t, len(paths), int(stub.calls.Load()))

	assert.Equal(t, Identified{Path: paths[3], Labels: []string{}}, got[3])
	assert.Equal(t, []string{"label of " + paths[4]}, got[4].Labels)

	warns := logs.FilterMessage("Could not identify path").All()
	require.Len(t, warns, 1)
	assert.Equal(t, paths[3], warns[0].ContextMap()["path"])
	assert.Equal(t, "catalog unavailable", warns[0].ContextMap()["error"])
}

func TestRunBatchCatalogClosed(t *testing.T) {
	identifier, db := newTestIdentifier(t, nil)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	core, logs := observer.New(zap.WarnLevel)
	got, err := RunBatch(context.Background(), identifier, []string{
		"chara/equipment/e0358/texture/v01_c0101e0358_top_d.tex",
		"chara/monster/m0405/obj/body/b0001/texture/v01_m0405b0001_d.tex",
		"ui/icon/051000/051234.tex",
	}, BatchOptions{Workers: 2, Logger: zap.New(core)})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"chara/equipment/e0358/texture/v01_c0101e0358_top_d.tex":          {"Hempen Shirt"},
		"chara/monster/m0405/obj/body/b0001/texture/v01_m0405b0001_d.tex": {},
		"ui/icon/051000/051234.tex":                                       {"Icon: 51234"},
	}, Affects(got))
	assert.Equal(t, 1, logs.FilterField(zap.String("path", "chara/monster/m0405/obj/body/b0001/texture/v01_m0405b0001_d.tex")).Len())
}

func TestRunBatchCanceledMidway(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	paths := make([]string, 50)
	for i := range paths {
		paths[i] = fmt.Sprintf("path/%03d.tex", i)
	}
	stub := &stubIdentifier{delay: 20 * time.Millisecond}
	time.AfterFunc(5*time.Millisecond, cancel)

	got, err := RunBatch(ctx, stub, paths, BatchOptions{Workers: 2})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
	assert.Less(t, int(stub.calls.Load()), len(paths))
}

func TestRunBatchCanceled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBatch(ctx, &stubIdentifier{}, []string{"a.tex", "b.tex"}, BatchOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunBatchProgress(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zap.InfoLevel)
	paths := []string{"a.tex", "b.tex", "c.tex", "d.tex"}

	_, err := RunBatch(context.Background(), &stubIdentifier{delay: 5 * time.Millisecond}, paths, BatchOptions{
		Workers:          1,
		ProgressInterval: time.Nanosecond,
		Logger:           zap.New(core),
	})
	require.NoError(t, err)

	assert.NotZero(t, logs.FilterMessage("Identifying paths").Len())
	assert.Equal(t, 1, logs.FilterMessage("Batch completed").Len())
}

func TestRunBatchWithIdentifier(t *testing.T) {
	identifier, _ := newTestIdentifier(t, nil)

	got, err := RunBatch(context.Background(), identifier, []string{
		"chara/equipment/e0358/texture/v01_c0101e0358_top_d.tex",
		"foo/bar.xyz",
		"ui/icon/051000/051234.tex",
	}, BatchOptions{Workers: 4})
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"chara/equipment/e0358/texture/v01_c0101e0358_top_d.tex": {"Hempen Shirt"},
		"foo/bar.xyz":               {},
		"ui/icon/051000/051234.tex": {"Icon: 51234"},
	}, Affects(got))
}
