package constants

const (
	CacheKeySession = "gallery:session:%s" // %s -> session id
)
