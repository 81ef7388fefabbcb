package constant

type ContextKey string

const (
	UserIDKey ContextKey = "user_id"
	RoleKey   ContextKey = "role"
)

const (
	RoleAdmin            = "admin"
	RoleWarehouseManager = "warehouse_manager"
	RoleFloorStaff       = "floor_staff"
)
