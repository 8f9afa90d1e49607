package types

// Catalog table names.
const (
	TableUsers  = "users"
	TableEmails = "emails"
)

// StandardTableNames lists the catalog tables in dependency order: parents
// before children.
var StandardTableNames = []string{
	TableUsers,
	TableEmails,
}
