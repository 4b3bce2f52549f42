// Command stafftoken prints a bearer token for the staff routes, signed with
// STAFF_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"activitybooking/config"
	"activitybooking/internal/adapters/auth"
)

func main() {
	staffID := flag.String("staff", "", "staff member id placed in the token subject")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	logger := config.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	if cfg.StaffJWTSecret == "" {
		logger.Error("STAFF_JWT_SECRET is not set")
		os.Exit(1)
	}
	if *staffID == "" {
		flag.Usage()
		os.Exit(2)
	}

	token, err := auth.NewJWT(cfg.StaffJWTSecret).Issue(*staffID, *ttl)
	if err != nil {
		logger.Error("issue token", "err", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
