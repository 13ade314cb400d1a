package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// @title						Kotoba API
// @version					1.0
// @description				Japanese learning journal: translations, daily summaries and summary emails.
// @BasePath					/api
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
