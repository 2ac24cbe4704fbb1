package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akeren/email-collector/pkg/adminauth"
)

func runIssueAdminToken(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("issue-admin-token", flag.ContinueOnError)
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	secret := strings.TrimSpace(os.Getenv("ADMIN_TOKEN_SECRET"))
	if secret == "" {
		return errors.New("ADMIN_TOKEN_SECRET is not set")
	}

	token, err := adminauth.IssueToken([]byte(secret), *ttl, time.Now())
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	_, err = fmt.Fprintln(stdout, token)
	return err
}
