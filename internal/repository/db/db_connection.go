package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := seedDishes(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

const schemaDishes = `
CREATE TABLE IF NOT EXISTS dishes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE NOT NULL,
    description TEXT NOT NULL,
    delivery_info TEXT NOT NULL,
    cost REAL NOT NULL,
    votes INTEGER NOT NULL DEFAULT 0
);
`

const schemaOrders = `
CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id),
    dish_id INTEGER NOT NULL REFERENCES dishes(id),
    quantity INTEGER NOT NULL,
    total_cost REAL NOT NULL,
    delivery_address TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const schemaActivityEvents = `
CREATE TABLE IF NOT EXISTS activity_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaDishes,
		schemaOrders,
		schemaActivityEvents,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// starterDishes bootstraps a fresh deployment; dish creation has no route.
var starterDishes = []struct {
	name, description, deliveryInfo string
	cost                            float64
}{
	{"Margherita Pizza", "Tomato, mozzarella and basil on a thin crust.", "Delivered hot within 45 minutes.", 9.50},
	{"Pad Thai", "Rice noodles with peanuts, egg and tamarind sauce.", "Delivered within 60 minutes.", 11.00},
	{"Lentil Soup", "Slow-cooked red lentils with cumin and lemon.", "Delivered within 30 minutes.", 6.25},
	{"Beef Burger", "Char-grilled patty, cheddar, pickles, brioche bun.", "Delivered hot within 40 minutes.", 12.75},
}

// seedDishes inserts the starter menu when the dishes table is empty.
func seedDishes(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM dishes`).Scan(&count); err != nil {
		return fmt.Errorf("count dishes: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, d := range starterDishes {
		if _, err := tx.Exec(
			`INSERT INTO dishes (name, description, delivery_info, cost, votes) VALUES (?, ?, ?, ?, 0)`,
			d.name, d.description, d.deliveryInfo, d.cost,
		); err != nil {
			return fmt.Errorf("seed dish %q: %w", d.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}
	return nil
}
