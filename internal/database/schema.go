package database

import (
	"context"
	"log"
)

// Les tables sont créées au démarrage si absentes, comme le faisait l'ancien
// backend. Pas de système de migration : le schéma est stable et additive-only.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS services (
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		short_description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		duration TEXT,
		image TEXT NOT NULL,
		category TEXT NOT NULL,
		featured BOOLEAN DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		image TEXT NOT NULL,
		category TEXT NOT NULL,
		in_stock BOOLEAN DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_email TEXT NOT NULL,
		customer_phone TEXT NOT NULL,
		total_amount NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		poll_url TEXT,
		paynow_reference TEXT,
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		id VARCHAR PRIMARY KEY,
		order_id VARCHAR NOT NULL REFERENCES orders(id),
		product_id VARCHAR NOT NULL,
		product_name TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1,
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id VARCHAR PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT,
		content TEXT NOT NULL,
		rating INTEGER NOT NULL DEFAULT 5
	)`,
	`CREATE TABLE IF NOT EXISTS events (
		id VARCHAR PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		venue TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		category TEXT NOT NULL,
		ticket_price NUMERIC(10,2) NOT NULL DEFAULT 0,
		capacity INTEGER NOT NULL DEFAULT 0,
		images TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ DEFAULT NOW()
	)`,
	// Le webhook Paynow retrouve la commande par son poll URL
	`CREATE INDEX IF NOT EXISTS idx_orders_poll_url ON orders(poll_url)`,
}

// InitTables crée le schéma si nécessaire.
func InitTables(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := Pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	log.Println("✅ Schéma PostgreSQL vérifié")
	return nil
}
