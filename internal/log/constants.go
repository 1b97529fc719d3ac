package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyConfig        = "config"
	KeyRequestID     = "requestId"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeySessionID     = "sessionId"
	KeyProductID     = "productId"
	KeyCategoryID    = "categoryId"
	KeyCategorySlug  = "categorySlug"
	KeyCartItem      = "cartItem"
	KeyCartItems     = "cartItems"
	KeyQuantity      = "quantity"
	KeyEmail         = "email"
	KeyUserID        = "userId"
	KeyCacheKey      = "cacheKey"
	KeyDbURL         = "dbUrl"
	KeyJsonCache     = "jsonCache"
	KeyProduct       = "product"
	KeyProducts      = "products"
	KeyCategories    = "categories"
	KeySearch        = "search"
)
