package contextkeys

// Custom type so context keys cannot collide with other packages.
type contextKey string

// DBContextKey is the key under which a *gorm.DB (pool or transaction)
// is stored in the request context.
const DBContextKey = contextKey("db")
