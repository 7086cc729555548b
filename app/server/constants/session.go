package constants

import "time"

const (
	SessionCookieName = "gallery_session"

	SessionTTL           = 24 * time.Hour
	SessionSweepInterval = 24 * time.Hour // how often the in-process store drops expired entries
)
