// Command promote-admin grants the admin role to existing users.
//
//	promote-admin alice@example.com admins.csv ...
//
// Arguments ending in .csv are read as files whose first column holds an
// email; a header row is skipped. Users must have logged in at least once.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mcpitc/mcpitc-backend/internal/config"
	mongorepo "github.com/mcpitc/mcpitc-backend/internal/repositories/mongodb"
	"github.com/mcpitc/mcpitc-backend/internal/services"
	"github.com/mcpitc/mcpitc-backend/pkg/mongodb"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg)

	if len(os.Args) < 2 {
		logger.Fatal("at least one email or CSV file is required")
	}
	emails, err := collectEmails(os.Args[1:])
	if err != nil {
		logger.Fatalf("Failed to read emails: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.MongoDB.ConnectionURI())
	if err != nil {
		logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	users := services.NewUserService(mongorepo.NewUserRepository(client.Database(cfg.MongoDB.Database)))
	promoted, err := promote(ctx, users, emails, logger)
	if err != nil {
		logger.Fatalf("Failed to promote users: %v", err)
	}
	logger.Infof("Promoted %d of %d users", promoted, len(emails))
}

// collectEmails expands CSV file arguments and de-duplicates the result.
func collectEmails(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var emails []string
	add := func(email string) {
		email = strings.TrimSpace(email)
		if email != "" && !seen[email] {
			seen[email] = true
			emails = append(emails, email)
		}
	}

	for _, arg := range args {
		if !strings.HasSuffix(strings.ToLower(arg), ".csv") {
			add(arg)
			continue
		}
		file, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to open CSV file: %w", err)
		}
		fromFile, err := readEmails(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", arg, err)
		}
		for _, email := range fromFile {
			add(email)
		}
	}
	return emails, nil
}

// readEmails returns the first column of every CSV record that looks like an email.
func readEmails(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var emails []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV file: %w", err)
		}
		if len(record) == 0 || !strings.Contains(record[0], "@") {
			// header or blank line
			continue
		}
		emails = append(emails, strings.TrimSpace(record[0]))
	}
	return emails, nil
}

// promote grants the admin role to each email and returns how many users matched.
func promote(ctx context.Context, users services.UserService, emails []string, logger *logrus.Logger) (int, error) {
	promoted := 0
	for _, email := range emails {
		res, err := users.PromoteToAdmin(ctx, email)
		if err != nil {
			return promoted, fmt.Errorf("promote %s: %w", email, err)
		}
		if res.MatchedCount == 0 {
			logger.WithField("email", email).Warn("no such user, skipping")
			continue
		}
		promoted++
		logger.WithField("email", email).Info("promoted to admin")
	}
	return promoted, nil
}
