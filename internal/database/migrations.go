package database

import "database/sql"

// schema is run on every open. Items get AUTOINCREMENT keys so ids are
// never reused, even after a delete. The settings seed rows make a freshly
// provisioned database carry the documented defaults.
const schema = `
CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    price REAL NOT NULL,
    purchase_date TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER
);

CREATE INDEX IF NOT EXISTS idx_items_purchase_date ON items(purchase_date);

CREATE TABLE IF NOT EXISTS settings (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

INSERT OR IGNORE INTO settings (key, value) VALUES ('language', 'en');
INSERT OR IGNORE INTO settings (key, value) VALUES ('currency', '$');
`

func migrate(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
