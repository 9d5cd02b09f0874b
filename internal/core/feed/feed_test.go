package feed

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
	"adboard/internal/core/port/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func record(id, name string) domain.AdRecord {
	return domain.AdRecord{
		AdvertiserName: name,
		Format:         domain.FormatImage,
		FirstSeenDate:  domain.ParseSeenDate("1/1/2025"),
		LastSeenDate:   domain.ParseSeenDate("1/2/2025"),
		APIData:        domain.APIData{CreativeID: id},
	}
}

func page(hasMore bool, records ...domain.AdRecord) *port.AdPage {
	return &port.AdPage{Items: records, HasMore: hasMore}
}

func TestFeedAccumulatesPages(t *testing.T) {
	src := mocks.NewMockAdSource(t)
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 1, Limit: 2}).
		Return(page(true, record("1", "Zeta"), record("2", "Alpha")), nil).Once()
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 2, Limit: 2}).
		Return(page(false, record("3", "Alpha")), nil).Once()

	f := New(src, WithPageSize(2))
	defer f.Close()

	require.NoError(t, f.LoadMore(context.Background()))
	require.NoError(t, f.LoadMore(context.Background()))
	// nothing left: no third request
	require.NoError(t, f.LoadMore(context.Background()))

	v := f.View()
	assert.Len(t, v.Items, 3)
	assert.Equal(t, []string{"Alpha", "Zeta"}, v.Companies)
	assert.False(t, v.HasMore)
	assert.NoError(t, v.Err)
}

func TestFeedFilterChangeResets(t *testing.T) {
	video := domain.Filter{Format: "Video"}
	src := mocks.NewMockAdSource(t)
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 1, Limit: 2}).
		Return(page(true, record("1", "A")), nil).Once()
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 1, Limit: 2, Filter: video}).
		Return(page(false, record("9", "B")), nil).Once()

	f := New(src, WithPageSize(2))
	defer f.Close()

	require.NoError(t, f.LoadMore(context.Background()))
	before := f.View().Version

	after := f.SetFilter(video)
	assert.Greater(t, after, before)
	assert.Empty(t, f.View().Items)
	assert.True(t, f.View().HasMore)

	require.NoError(t, f.LoadMore(context.Background()))
	v := f.View()
	require.Len(t, v.Items, 1)
	assert.Equal(t, "9", v.Items[0].CreativeID())
}

func TestFeedDiscardsStalePage(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	src := mocks.NewMockAdSource(t)
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 1, Limit: 2}).
		RunAndReturn(func(ctx context.Context, q port.ListQuery) (*port.AdPage, error) {
			close(started)
			<-release
			return page(true, record("old", "Old")), nil
		}).Once()

	f := New(src, WithPageSize(2))
	defer f.Close()

	done := make(chan error)
	go func() { done <- f.LoadMore(context.Background()) }()

	<-started
	f.SetFilter(domain.Filter{Company: "New"})
	close(release)
	require.NoError(t, <-done)

	v := f.View()
	assert.Empty(t, v.Items, "page fetched under the old filter must be dropped")
	assert.False(t, v.Loading)
}

func TestFeedFailureKeepsLoadedPagesAndRetries(t *testing.T) {
	boom := errors.New("upstream down")
	src := mocks.NewMockAdSource(t)
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 1, Limit: 1}).
		Return(page(true, record("1", "A")), nil).Once()
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 2, Limit: 1}).
		Return(nil, boom).Once()
	src.EXPECT().
		ListAds(mock.Anything, port.ListQuery{Page: 2, Limit: 1}).
		Return(page(false, record("2", "B")), nil).Once()

	f := New(src, WithPageSize(1))
	defer f.Close()

	require.NoError(t, f.LoadMore(context.Background()))
	assert.ErrorIs(t, f.LoadMore(context.Background()), boom)

	v := f.View()
	assert.ErrorIs(t, v.Err, boom)
	assert.Len(t, v.Items, 1)

	require.NoError(t, f.Retry(context.Background()))
	v = f.View()
	assert.NoError(t, v.Err)
	assert.Len(t, v.Items, 2)

	// nothing failed, nothing to retry
	require.NoError(t, f.Retry(context.Background()))
}

func TestFeedSearchIsDebounced(t *testing.T) {
	src := mocks.NewMockAdSource(t)
	f := New(src, WithSearchDelay(20*time.Millisecond))
	defer f.Close()

	start := f.View().Version
	for _, text := range []string{"h", "hu", "hun", "hungama"} {
		f.SetSearch(text)
	}
	require.Eventually(t, func() bool { return f.View().Version > start }, time.Second, 5*time.Millisecond)

	assert.Equal(t, "hungama", f.Filter().Search)
	assert.Equal(t, start+1, f.View().Version, "a burst of edits must reset once")
}

func TestDebouncerRunsLastOnly(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var last atomic.Int64
	var runs atomic.Int64
	for i := int64(1); i <= 5; i++ {
		d.Trigger(func() {
			runs.Add(1)
			last.Store(i)
		})
	}
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(5), last.Load())
	assert.False(t, d.Pending())
}

func TestDebouncerStopCancels(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var runs atomic.Int64
	d.Trigger(func() { runs.Add(1) })
	assert.True(t, d.Pending())
	d.Stop()
	time.Sleep(40 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
