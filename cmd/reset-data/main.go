package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"bitbucket.org/mmdatafocus/alerts_backend/config"
	"bitbucket.org/mmdatafocus/alerts_backend/store"
)

func main() {
	confirm := flag.String("confirm", "", "Type RESET to proceed")
	timeout := flag.Duration("timeout", 30*time.Second, "Overall operation timeout")
	flag.Parse()

	if strings.TrimSpace(*confirm) != "RESET" {
		fmt.Fprintln(os.Stderr, "set --confirm=RESET to proceed")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	config.ConnectRedisWithRetry(ctx)
	rdb := config.GetRedisDB()
	if rdb == nil {
		fmt.Fprintln(os.Stderr, "redis not initialized")
		os.Exit(1)
	}

	s := store.NewRedisStore(rdb, config.GetRedisLock())
	if err := s.ResetAll(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "reset failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("cleared %d namespaces\n", len(store.Namespaces))
}
