// Package service implements the marketplace operations. Each operation
// loads what it needs from the store, applies its authorization
// predicate and only then mutates, so a failed gate leaves the store
// untouched.
package service

import (
	"time"

	"github.com/origintrace/marketplace/internal/aigw"
	"github.com/origintrace/marketplace/internal/store"
)

type Service struct {
	Store   *store.Store
	Gateway *aigw.Client

	// Now is swappable so tests can pin timestamps.
	Now func() time.Time
}

func New(st *store.Store, gw *aigw.Client) *Service {
	return &Service{
		Store:   st,
		Gateway: gw,
		Now:     time.Now,
	}
}
