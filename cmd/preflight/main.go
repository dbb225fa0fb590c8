// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/hamed0406/healthchecker/internal/config"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	if len(os.Args) < 2 {
		fail("usage: preflight <endpoints.yaml>")
	}
	path := os.Args[1]

	eps, err := config.LoadEndpoints(path)
	if err != nil {
		for _, e := range multierr.Errors(err) {
			fmt.Fprintln(os.Stderr, "✖", e)
		}
		os.Exit(1)
	}
	ok(fmt.Sprintf("%d endpoints in %s", len(eps), path))

	domains := map[string]int{}
	for _, ep := range eps {
		d := ep.Domain()
		domains[d]++
		ok(fmt.Sprintf("%s %s -> domain %s", ep.Method, ep.Label(), d))
		if ep.Body != "" && ep.Method == "GET" {
			warn(ep.Label() + " sends a body with GET")
		}
	}
	ok(fmt.Sprintf("%d domains tracked", len(domains)))

	cfg := config.FromEnv()
	if cfg.StatusAddr == "" {
		warn("STATUS_ADDR empty; status API and /metrics disabled.")
	} else {
		ok("STATUS_ADDR=" + cfg.StatusAddr)
	}
	if cfg.HistoryWindow == 0 {
		warn("HISTORY_WINDOW unset; history grows for the life of the process.")
	}
	ok("CHECK_INTERVAL=" + cfg.Interval.String())
	ok("LOG_DIR=" + strings.TrimSpace(cfg.LogDir))

	ok("preflight passed")
}
