package service

import "time"

// Test hooks so the external test package can override the reconciler's
// clock, id generator, and seed-fallback flag.

func (r *Reconciler) SetNow(f func() time.Time) { r.now = f }

func (r *Reconciler) SetNewID(f func() string) { r.newID = f }

func (r *Reconciler) SetSeedFallback(v bool) { r.cfg.SeedFallback = v }
