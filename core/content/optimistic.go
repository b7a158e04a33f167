package content

import (
	"context"
	"sync"

	"github.com/shareulbi/webcore/core"
)

// Toggler implements the fire-and-forget optimistic update strategy for the
// like and bookmark actions: the local Reaction flips synchronously, the API
// call runs in the background, and a failed call is logged and otherwise
// ignored. The flipped state stands until the next full re-fetch of the
// post. There is deliberately no in-flight guard: toggling again while a
// prior call is pending just flips again and fires another call.
type Toggler struct {
	api core.APIClient
	log core.Logger
	wg  sync.WaitGroup
}

func NewToggler(api core.APIClient, log core.Logger) *Toggler {
	return &Toggler{api: api, log: log}
}

// ToggleLike flips the liked flag and moves the counter by one in the same
// step, using the pre-flip flag to pick the direction, then fires
// POST /posts/{id}/like in the background.
func (t *Toggler) ToggleLike(id string, r *Reaction) {
	if r.IsLiked {
		r.LikesCount--
	} else {
		r.LikesCount++
	}
	r.IsLiked = !r.IsLiked

	t.fire(id, "like")
}

// ToggleBookmark flips the bookmarked flag, then fires
// POST /posts/{id}/bookmark in the background.
func (t *Toggler) ToggleBookmark(id string, r *Reaction) {
	r.IsBookmarked = !r.IsBookmarked

	t.fire(id, "bookmark")
}

func (t *Toggler) fire(id, action string) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.api.Post(context.Background(), "/posts/"+id+"/"+action, nil, nil); err != nil {
			t.log.Warn("post "+action+" toggle failed; keeping optimistic state", err, map[string]interface{}{"post": id})
		}
	}()
}

// Flush blocks until every background toggle call has finished. Tests and
// shutdown paths use it; views never do.
func (t *Toggler) Flush() {
	t.wg.Wait()
}
