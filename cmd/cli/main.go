package main

import (
	"fmt"
	"os"

	"github.com/akeren/email-collector/config"
	"github.com/akeren/email-collector/internal/log"
)

func main() {
	logger := log.NewLoggerFromEnv()

	config.InitializeEnvFile(logger) // Load envs early for CLI consistency

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	var err error

	switch args[0] {
	case "migrate":
		err = runMigrate(logger, args[1:], os.Stdout)

	case "export":
		err = runExport(logger, args[1:], os.Stdout)

	case "issue-admin-token":
		err = runIssueAdminToken(args[1:], os.Stdout)

	case "help", "-h", "--help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("Command failed", "command", args[0], "error", err.Error())
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: cli <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate [status]   Apply SQL migrations for DB_DRIVER, or print the schema version")
	fmt.Println("  export             Dump all email submissions (-format json|yaml, -out file)")
	fmt.Println("  issue-admin-token  Print an admin bearer token signed with ADMIN_TOKEN_SECRET (-ttl 24h)")
}
