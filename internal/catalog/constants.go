package catalog

import "time"

// Cache defaults used when configuration leaves them unset
const (
	DefaultSize = 512
	DefaultTTL  = 5 * time.Minute
)
