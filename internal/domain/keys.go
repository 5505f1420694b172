package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)

// UserIDFromContext reads the authenticated caller's id, accepting both the
// gin context string key (c.Set) and the typed key (context.WithValue).
func UserIDFromContext(ctx interface{ Value(any) any }) string {
	if v, ok := ctx.Value(string(KeyUserID)).(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Value(KeyUserID).(string); ok {
		return v
	}
	return ""
}

// RoleFromContext reads the authenticated caller's role the same way.
func RoleFromContext(ctx interface{ Value(any) any }) string {
	if v, ok := ctx.Value(string(KeyUserRole)).(string); ok && v != "" {
		return v
	}
	if v, ok := ctx.Value(KeyUserRole).(string); ok {
		return v
	}
	return ""
}
