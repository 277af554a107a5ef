package database

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/luxefurnish/furnishbackend/store"
)

// OpenBackend picks the storage backend from the environment:
//
//	STORE_BACKEND=bolt  (default) — embedded bbolt file at STORE_PATH
//	STORE_BACKEND=file            — JSON files under STORE_PATH
//	STORE_BACKEND=mongo           — MONGODB_URI + DATABASE_NAME
//	STORE_BACKEND=memory          — throwaway, for local experiments
func OpenBackend(ctx context.Context) (store.Backend, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	kind := os.Getenv("STORE_BACKEND")
	switch kind {
	case "", "bolt":
		path := os.Getenv("STORE_PATH")
		if path == "" {
			path = "furnish.db"
		}
		return store.NewBoltBackend(path)
	case "file":
		dir := os.Getenv("STORE_PATH")
		if dir == "" {
			dir = "data"
		}
		return store.NewFileBackend(dir)
	case "mongo":
		uri := os.Getenv("MONGODB_URI")
		dbName := os.Getenv("DATABASE_NAME")
		if uri == "" || dbName == "" {
			return nil, fmt.Errorf("mongo backend requires MONGODB_URI and DATABASE_NAME")
		}
		return store.NewMongoBackend(ctx, uri, dbName)
	case "memory":
		return store.NewMemoryBackend(), nil
	}
	return nil, fmt.Errorf("unknown STORE_BACKEND %q", kind)
}

// Open wires the backend into a ready entity store (seeded catalog included).
func Open(ctx context.Context) (*store.Store, error) {
	backend, err := OpenBackend(ctx)
	if err != nil {
		return nil, err
	}
	return store.Open(ctx, backend)
}
