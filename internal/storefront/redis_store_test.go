package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	if f.failGet != nil {
		return "", f.failGet
	}
	v, ok := f.values[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	if f.failSet != nil {
		return f.failSet
	}
	switch v := value.(type) {
	case []byte:
		f.values[key] = string(v)
	case string:
		f.values[key] = v
	default:
		return errors.New("unsupported value")
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.values, k)
	}
	return nil
}

func (f *fakeKV) SessionKey(sessionID string) string {
	return "sf:session:" + sessionID
}

func TestRedisStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewRedisStore(kv, 2*time.Hour, nil)
	ctx := context.Background()

	_, found, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Save(ctx, "s1", sampleState()))
	assert.Contains(t, kv.values, "sf:session:s1")
	assert.Equal(t, 2*time.Hour, kv.ttls["sf:session:s1"])

	got, found, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "rice", got.Query)
	require.Len(t, got.Basket.Items, 1)
	assert.Equal(t, "4", got.Basket.Items[0].Price.String())

	require.NoError(t, store.Delete(ctx, "s1"))
	assert.NotContains(t, kv.values, "sf:session:s1")
}

func TestRedisStoreCorruptRecordIsTreatedAsMissing(t *testing.T) {
	kv := newFakeKV()
	kv.values["sf:session:s1"] = "{not json"
	store := NewRedisStore(kv, time.Hour, nil)

	_, found, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStorePropagatesErrors(t *testing.T) {
	boom := errors.New("i/o timeout")
	kv := newFakeKV()
	kv.failGet = boom
	kv.failSet = boom
	store := NewRedisStore(kv, time.Hour, nil)
	ctx := context.Background()

	_, _, err := store.Load(ctx, "s1")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, store.Save(ctx, "s1", NewState()), boom)
}
