package usecase

import "sync"

// keyedMutex serializes mutating operations per session id. Operations on
// different sessions stay fully independent.
type keyedMutex struct {
	locks sync.Map
}

func (km *keyedMutex) lock(key string) func() {
	v, _ := km.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
