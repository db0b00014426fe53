package cache

import (
	"time"

	bcache "github.com/bool64/cache"
)

// Options ของ cache หนึ่งตัว
type Options struct {
	Name         string
	TTL          time.Duration
	MaxStaleness time.Duration // > 0: เสิร์ฟของเก่าไปก่อนแล้ว refresh เบื้องหลัง
	MaxItems     uint64        // soft cap — ของอาจโดนเขี่ยก่อนหมดอายุ
	SyncUpdate   bool          // true: หมดอายุแล้วต้องรอค่าใหม่
}

// New bounded in-memory cache with TTL, stale-while-revalidate and
// single-flight rebuilds (bool64/cache Failover does all of that).
func New[V any](o Options) *bcache.FailoverOf[V] {
	return bcache.NewFailoverOf[V](func(cfg *bcache.FailoverConfigOf[V]) {
		cfg.Name = o.Name
		cfg.MaxStaleness = o.MaxStaleness
		cfg.SyncUpdate = o.SyncUpdate
		cfg.BackendConfig = bcache.Config{
			Name:           o.Name,
			TimeToLive:     o.TTL,
			CountSoftLimit: o.MaxItems,
		}
	})
}
