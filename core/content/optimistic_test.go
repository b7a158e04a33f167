package content

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
)

// recordingAPI collects calls and answers them with a canned error.
type recordingAPI struct {
	mu    sync.Mutex
	err   error
	posts []string
	gets  []string
}

func (r *recordingAPI) record(to *[]string, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	*to = append(*to, path)
	return r.err
}

func (r *recordingAPI) Get(ctx context.Context, path string, out interface{}, opts ...core.CallOption) error {
	return r.record(&r.gets, path)
}

func (r *recordingAPI) Post(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return r.record(&r.posts, path)
}

func (r *recordingAPI) Put(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return r.err
}

func (r *recordingAPI) Patch(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return r.err
}

func (r *recordingAPI) Delete(ctx context.Context, path string, out interface{}, opts ...core.CallOption) error {
	return r.err
}

func (r *recordingAPI) postCalls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.posts...)
}

// recordingLogger counts warnings.
type recordingLogger struct {
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) log(to *[]string, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*to = append(*to, msg)
}

func (l *recordingLogger) Debug(msg string, args ...interface{}) {}
func (l *recordingLogger) Info(msg string, args ...interface{})  {}
func (l *recordingLogger) Warn(msg string, args ...interface{})  { l.log(&l.warns, msg) }
func (l *recordingLogger) Error(msg string, args ...interface{}) {}
func (l *recordingLogger) Fatal(msg string, args ...interface{}) {}

func (l *recordingLogger) warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.warns...)
}

func Test_Toggler_ToggleLike(t *testing.T) {
	api := &recordingAPI{}
	toggler := NewToggler(api, &recordingLogger{})

	r := Reaction{IsLiked: false, LikesCount: 5}

	toggler.ToggleLike("42", &r)
	assert.True(t, r.IsLiked)
	assert.Equal(t, 6, r.LikesCount)

	toggler.ToggleLike("42", &r)
	assert.False(t, r.IsLiked)
	assert.Equal(t, 5, r.LikesCount)

	toggler.Flush()
	assert.Equal(t, []string{"/posts/42/like", "/posts/42/like"}, api.postCalls())
}

func Test_Toggler_ToggleBookmark(t *testing.T) {
	api := &recordingAPI{}
	toggler := NewToggler(api, &recordingLogger{})

	r := Reaction{}

	toggler.ToggleBookmark("42", &r)
	assert.True(t, r.IsBookmarked)
	assert.Equal(t, 0, r.LikesCount)

	toggler.ToggleBookmark("42", &r)
	assert.False(t, r.IsBookmarked)

	toggler.Flush()
	assert.Equal(t, []string{"/posts/42/bookmark", "/posts/42/bookmark"}, api.postCalls())
}

func Test_Toggler_failureKeepsOptimisticState(t *testing.T) {
	api := &recordingAPI{err: &core.HTTPError{Status: http.StatusInternalServerError}}
	logger := &recordingLogger{}
	toggler := NewToggler(api, logger)

	r := Reaction{IsLiked: false, LikesCount: 5}
	toggler.ToggleLike("42", &r)
	toggler.Flush()

	// no rollback: the flipped state stands until the next re-fetch
	assert.True(t, r.IsLiked)
	assert.Equal(t, 6, r.LikesCount)

	warns := logger.warnings()
	assert.Len(t, warns, 1)
	assert.True(t, strings.Contains(warns[0], "like"))
}

func Test_Toggler_networkFailureKeepsOptimisticState(t *testing.T) {
	api := &recordingAPI{err: &core.NetworkError{}}
	logger := &recordingLogger{}
	toggler := NewToggler(api, logger)

	r := Reaction{IsBookmarked: true}
	toggler.ToggleBookmark("42", &r)
	toggler.Flush()

	assert.False(t, r.IsBookmarked)
	assert.Len(t, logger.warnings(), 1)
}
