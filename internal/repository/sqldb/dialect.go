package sqldb

// dialect captures the few statements that differ between SQLite and
// Postgres. Placeholders are always written as ? and rebound by sqlx.
type dialect struct {
	name   string
	serial string
	bigint string
	// substr is a case-sensitive "column contains ?" predicate. LIKE is
	// avoided: SQLite folds ASCII case and both treat % and _ as wildcards.
	substr string
}

var (
	sqliteDialect = dialect{
		name:   DriverSQLite,
		serial: "INTEGER PRIMARY KEY AUTOINCREMENT",
		bigint: "INTEGER",
		substr: "instr(%s, ?) > 0",
	}
	postgresDialect = dialect{
		name:   DriverPostgres,
		serial: "BIGSERIAL PRIMARY KEY",
		bigint: "BIGINT",
		substr: "strpos(%s, ?) > 0",
	}
)

func dialectFor(driverName string) dialect {
	switch driverName {
	case DriverPostgres, "pgx":
		return postgresDialect
	default:
		return sqliteDialect
	}
}
