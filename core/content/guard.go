package content

import "sync"

// Guard invalidates in-flight work when a view instance is superseded. Every
// (re)entry into a view calls Renew; a completion handler applies its result
// only while its Gen is still current. In-flight calls are never cancelled;
// they complete and their results are dropped.
type Guard struct {
	mu  sync.Mutex
	gen uint64
}

// Gen is one generation of a Guard.
type Gen struct {
	guard *Guard
	n     uint64
}

// Renew starts a new generation, invalidating all previously issued Gens.
func (g *Guard) Renew() Gen {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return Gen{guard: g, n: g.gen}
}

// Current reports whether this generation is still the guard's latest.
func (gn Gen) Current() bool {
	if gn.guard == nil {
		return false
	}
	gn.guard.mu.Lock()
	defer gn.guard.mu.Unlock()
	return gn.guard.gen == gn.n
}
