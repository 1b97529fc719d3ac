package cache

const (
	KeyProducts = "products:"
)
