// cmd/newleaf/main.go
//
// Entry point for the newleaf API server. All lifecycle wiring lives in
// internal/app/bootstrap; WAFFLE's app.Run drives config loading,
// database connection, schema setup, the HTTP server, and graceful
// shutdown through the hooks defined there.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/app"

	"github.com/newleaforg/newleaf/internal/app/bootstrap"
)

func main() {
	if err := app.Run(context.Background(), bootstrap.Hooks); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
