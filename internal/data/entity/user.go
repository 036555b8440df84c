package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

// User is the profile row owned by the identity collaborator. The engine only
// reads it for role checks and display-name joins.
type User struct {
	Base
	FullName string   `db:"full_name"`
	Email    string   `db:"email"`
	Role     UserRole `db:"role"`
}
