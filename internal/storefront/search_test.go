package storefront

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchLog struct {
	mu    sync.Mutex
	texts []string
	done  chan struct{}
}

func newSearchLog() *searchLog {
	return &searchLog{done: make(chan struct{}, 8)}
}

func (l *searchLog) record(text string) {
	l.mu.Lock()
	l.texts = append(l.texts, text)
	l.mu.Unlock()
	l.done <- struct{}{}
}

func (l *searchLog) got() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.texts...)
}

func TestDebouncer_OnlyLastTextRuns(t *testing.T) {
	log := newSearchLog()
	d := NewDebouncer(20*time.Millisecond, log.record)

	for _, text := range []string{"i", "ip", "iph", "iphone"} {
		d.Trigger(text)
	}

	select {
	case <-log.done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never ran")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"iphone"}, log.got())
}

func TestDebouncer_FlushAndStop(t *testing.T) {
	log := newSearchLog()
	d := NewDebouncer(time.Hour, log.record)

	d.Trigger("ball")
	d.Flush()
	assert.Equal(t, []string{"ball"}, log.got())

	d.Flush()
	assert.Len(t, log.got(), 1, "flush without pending text is a no-op")

	d.Trigger("phone")
	d.Stop()
	d.Flush()
	assert.Len(t, log.got(), 1)
}

func TestDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	assert.Equal(t, DefaultSearchDelay, d.delay)
}

func TestCatalog_SearchNeverFails(t *testing.T) {
	api := newFakeAPI()
	c := NewCatalog(api, nil)
	ctx := context.Background()

	got := c.Search(ctx, "iphone")
	require.Len(t, got, 1)

	assert.Empty(t, c.Search(ctx, "none"))

	api.fail = errBoom
	got = c.Search(ctx, "iphone")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalog_ProductsFailureNotifies(t *testing.T) {
	api := newFakeAPI()
	api.fail = errBoom
	rec := &recorder{}

	got, err := NewCatalog(api, rec).Products(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, got)
	assert.Equal(t, []string{MsgBackendDown}, rec.messages())
}
