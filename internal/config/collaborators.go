package config

import (
	"aqarhub/internal/cache"
	"aqarhub/internal/storage"
)

// Shared collaborators set up in main. Nil when the backing service is
// not configured; callers must treat both as optional.
var (
	Cache *cache.Invalidator
	Media *storage.MediaStore
)
