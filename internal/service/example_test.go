package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jpl-au/docdex/internal/document"
	"github.com/jpl-au/docdex/internal/store"
)

// tempIndex creates a temporary docdex index for examples.
func tempIndex() (*document.Service, func()) {
	dir, err := os.MkdirTemp("", "docdex-example-*")
	if err != nil {
		panic(err)
	}
	if err := os.Chdir(dir); err != nil {
		panic(err)
	}
	if err := document.Init(false, "", false, ""); err != nil {
		panic(err)
	}
	svc, err := document.New("")
	if err != nil {
		panic(err)
	}
	cleanup := func() {
		svc.Close()
		os.RemoveAll(dir)
	}
	return svc, cleanup
}

func Example_basicUsage() {
	svc, cleanup := tempIndex()
	defer cleanup()
	ctx := context.Background()

	// Index a document
	id, err := svc.Insert(ctx, store.Document{Content: "Hello, World!"})
	if err != nil {
		panic(err)
	}
	fmt.Println(id)

	// Read it back
	doc, err := svc.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	fmt.Println(doc.Content)
	// Output:
	// 1
	// Hello, World!
}

func Example_search() {
	svc, cleanup := tempIndex()
	defer cleanup()
	ctx := context.Background()

	// Index documents
	_ = svc.InsertMany(ctx, []store.Document{
		{ID: 1, Content: "Go is a statically typed language"},
		{ID: 2, Content: "Rust is a systems programming language"},
		{ID: 3, Content: "Python is dynamically typed"},
	})

	// Documents containing both terms
	matches, _ := svc.SearchAnd(ctx, []string{"statically", "typed"}, svc.SearchOptions())
	for _, m := range matches {
		fmt.Println(m.ID)
	}
	// Output:
	// 1
}

func Example_searchPhrase() {
	svc, cleanup := tempIndex()
	defer cleanup()
	ctx := context.Background()

	_ = svc.InsertMany(ctx, []store.Document{
		{ID: 1, Content: "the quick brown fox"},
		{ID: 2, Content: "the brown quick fox"},
	})

	// Phrases match adjacent words in order
	matches, _ := svc.SearchPhrase(ctx, "quick brown", svc.SearchOptions())
	for _, m := range matches {
		fmt.Println(m.ID)
	}
	// Output:
	// 1
}

func Example_highlight() {
	svc, cleanup := tempIndex()
	defer cleanup()
	ctx := context.Background()

	_, _ = svc.Insert(ctx, store.Document{Content: "a lazy afternoon"})

	opts := svc.SearchOptions().WithHighlight()
	matches, _ := svc.SearchPhrase(ctx, "lazy", opts)
	for _, m := range matches {
		fmt.Println(m.Highlighted)
	}
	// Output:
	// a <b>lazy</b> afternoon
}

func Example_count() {
	svc, cleanup := tempIndex()
	defer cleanup()
	ctx := context.Background()

	_ = svc.InsertMany(ctx, []store.Document{
		{Content: "A"}, {Content: "B"}, {Content: "C"},
	})

	count, _ := svc.Count(ctx)
	fmt.Println("Indexed:", count)
	// Output:
	// Indexed: 3
}

func Example_transaction() {
	svc, cleanup := tempIndex()
	defer cleanup()
	ctx := context.Background()

	// Use transaction for atomic operations on custom tables
	err := svc.Tx(ctx, func(tx *sql.Tx) error {
		// This runs in a transaction - all or nothing
		// Real usage would be for extension tables, e.g.:
		// _, err := tx.Exec("INSERT INTO notes (body) VALUES (?)", "draft")
		return nil
	})
	if err != nil {
		panic(err)
	}
	fmt.Println("Transaction completed")
	// Output:
	// Transaction completed
}
