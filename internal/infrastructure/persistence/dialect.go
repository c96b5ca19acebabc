package persistence

// dialect diferencias de DDL entre SQLite y PostgreSQL. Las consultas usan "?" y sqlx.Rebind.
type dialect struct {
	name          string
	idColumn      string
	refType       string
	timestampType string
	// moneyType columna de importes. En SQLite NUMERIC tiene afinidad REAL y pierde
	// precisión, así que los decimales se guardan como TEXT.
	moneyType string
}

var (
	sqliteDialect = dialect{
		name:          "sqlite",
		idColumn:      "INTEGER PRIMARY KEY AUTOINCREMENT",
		refType:       "INTEGER",
		timestampType: "DATETIME",
		moneyType:     "TEXT",
	}
	postgresDialect = dialect{
		name:          "postgres",
		idColumn:      "BIGSERIAL PRIMARY KEY",
		refType:       "BIGINT",
		timestampType: "TIMESTAMPTZ",
		moneyType:     "NUMERIC",
	}
)
