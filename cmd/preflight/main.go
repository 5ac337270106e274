// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	key := strings.TrimSpace(os.Getenv("PUROLATOR_KEY"))
	pass := strings.TrimSpace(os.Getenv("PUROLATOR_PASSWORD"))
	uatKey := strings.TrimSpace(os.Getenv("PUROLATOR_UAT_KEY"))
	uatPass := strings.TrimSpace(os.Getenv("PUROLATOR_UAT_PASSWORD"))
	teams := strings.TrimSpace(os.Getenv("TEAMS_WEBHOOK_URL"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	apiAddr := strings.TrimSpace(os.Getenv("API_ADDR"))

	if key == "" || pass == "" {
		fail("PUROLATOR_KEY / PUROLATOR_PASSWORD empty (production probes will be skipped).")
	}
	ok("production credentials present")

	if uatKey == "" || uatPass == "" {
		warn("PUROLATOR_UAT_KEY / PUROLATOR_UAT_PASSWORD empty — certification targets will be skipped.")
	} else {
		ok("certification credentials present")
	}

	if teams == "" {
		warn("TEAMS_WEBHOOK_URL empty — no chat alerts, only customer webhooks.")
	} else if !strings.HasPrefix(teams, "https://") {
		warn("TEAMS_WEBHOOK_URL does not look like an https URL.")
	} else {
		ok("TEAMS_WEBHOOK_URL present")
	}

	if db == "" {
		warn("DATABASE_URL empty — worker falls back to in-memory storage, history is lost on restart.")
	} else {
		ok("DATABASE_URL present")
	}

	if apiAddr == "" {
		warn("API_ADDR empty; the status API defaults to 127.0.0.1:8080.")
	} else {
		ok("API_ADDR=" + apiAddr)
	}

	ok("preflight passed")
}
