package db

// SchemaSQL is the complete schema for fresh installs.
//
// This is the single source of truth for the database schema. Tests use it
// via GetSchemaSQL() so repository code and schema can never drift apart:
// a repository referencing a missing column fails immediately with
// "no such column".
const SchemaSQL = `
-- Coffee shops (the pickup locations)
CREATE TABLE IF NOT EXISTS coffee_shops (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	code TEXT NOT NULL UNIQUE,
	name TEXT NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	active INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Orders
CREATE TABLE IF NOT EXISTS orders (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	order_number TEXT NOT NULL UNIQUE,
	customer_id INTEGER NOT NULL,
	shop_code TEXT NOT NULL REFERENCES coffee_shops(code),
	drink TEXT NOT NULL,
	size TEXT NOT NULL,
	milk_type TEXT NOT NULL DEFAULT '',
	syrup_type TEXT NOT NULL DEFAULT '',
	total_price INTEGER NOT NULL,
	status TEXT NOT NULL DEFAULT 'PENDING'
		CHECK (status IN ('PENDING', 'IN_PREPARATION', 'READY', 'COMPLETED', 'CANCELLED')),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_shop ON orders(shop_code, status);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id, status);

-- Audit log of order lifecycle events
CREATE TABLE IF NOT EXISTS order_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	action TEXT NOT NULL,
	old_status TEXT,
	new_status TEXT,
	actor TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_order_log_entity ON order_log(entity_type, entity_id);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
