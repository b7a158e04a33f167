package echoweb

import (
	"context"
	"io/ioutil"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shareulbi/webcore/core"
	"github.com/shareulbi/webcore/core/content"
	logsvc "github.com/shareulbi/webcore/services/logger"
)

// noopAPI accepts every call; the toggle tests only care about local state.
type noopAPI struct{}

func (noopAPI) Get(ctx context.Context, path string, out interface{}, opts ...core.CallOption) error {
	return nil
}

func (noopAPI) Post(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return nil
}

func (noopAPI) Put(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return nil
}

func (noopAPI) Patch(ctx context.Context, path string, body, out interface{}, opts ...core.CallOption) error {
	return nil
}

func (noopAPI) Delete(ctx context.Context, path string, out interface{}, opts ...core.CallOption) error {
	return nil
}

func newToggleSession() *AppSession {
	logger := logsvc.NewConsoleLogger(log.New(ioutil.Discard, "", 0))
	return &AppSession{
		Toggler: content.NewToggler(noopAPI{}, logger),
		viewing: make(map[string]*content.PostDetail),
	}
}

func Test_AppSession_concurrentTogglesStayConsistent(t *testing.T) {
	as := newToggleSession()
	as.SetView(content.PostDetail{
		ID:       "42",
		Type:     content.TypeELearning,
		Reaction: content.Reaction{LikesCount: 5},
	})

	// an even number of flips must land exactly where it started
	const flips = 100
	var wg sync.WaitGroup
	wg.Add(flips)
	for i := 0; i < flips; i++ {
		go func() {
			defer wg.Done()
			as.FlipView("42", "like")
		}()
	}
	wg.Wait()
	as.Toggler.Flush()

	r, ok := as.ViewReaction("42")
	if !ok {
		t.Fatal("ViewReaction() lost the displayed post")
	}
	assert.False(t, r.IsLiked)
	assert.Equal(t, 5, r.LikesCount)
}

func Test_AppSession_flipReturnsPostType(t *testing.T) {
	as := newToggleSession()
	as.SetView(content.PostDetail{ID: "7", Type: content.TypeWorks})

	typ, ok := as.FlipView("7", "bookmark")
	as.Toggler.Flush()

	assert.True(t, ok)
	assert.Equal(t, content.TypeWorks, typ)
	r, _ := as.ViewReaction("7")
	assert.True(t, r.IsBookmarked)
}

func Test_AppSession_flipUnknownPost(t *testing.T) {
	as := newToggleSession()

	_, ok := as.FlipView("missing", "like")
	assert.False(t, ok)
}
