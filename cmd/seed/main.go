// seed inserts development sample data for local testing. Run via go run ./cmd/seed.
// Idempotent: skips inserts if the demo account (farmer@example.com) already exists.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	accountdomain "palay-protector/internal/account/domain"
	accountrepo "palay-protector/internal/account/repository"
	accountservice "palay-protector/internal/account/service"
	"palay-protector/internal/config"
	"palay-protector/internal/db"
	historydomain "palay-protector/internal/history/domain"
	historyrepo "palay-protector/internal/history/repository"
	"palay-protector/internal/security"
)

const (
	demoUsername = "farmer"
	demoEmail    = "farmer@example.com"
	demoPhone    = "09171234567"
	demoPassword = "password123"
)

// sampleScans are written oldest first; each entry is one scan with its predictions.
var sampleScans = []struct {
	daysAgo     int
	predictions []historydomain.Record
}{
	{daysAgo: 14, predictions: []historydomain.Record{{Label: "Brown Spot", Confidence: 78.4}}},
	{daysAgo: 9, predictions: []historydomain.Record{{Label: historydomain.HealthyLabel, Confidence: 100}}},
	{daysAgo: 3, predictions: []historydomain.Record{
		{Label: "Rice Blast", Confidence: 87.0},
		{Label: "Bacterial Leaf Blight", Confidence: 41.2},
	}},
	{daysAgo: 1, predictions: []historydomain.Record{{Label: "Tungro", Confidence: 64.9}}},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set; create a .env or export DATABASE_URL")
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer conn.Close()

	ctx := context.Background()
	credentials := accountservice.NewCredentialService(accountrepo.NewPostgresRepository(conn), security.NewHasher(cfg.BcryptCost))

	if _, err := credentials.FindByEmail(ctx, demoEmail); err == nil {
		log.Printf("Seed already applied (%s exists). Skipping.", demoEmail)
		return
	} else if !errors.Is(err, accountdomain.ErrNotFound) {
		log.Fatalf("seed check: %v", err)
	}

	account, err := credentials.CreateAccount(ctx, demoUsername, demoEmail, demoPhone, demoPassword)
	if err != nil {
		log.Fatalf("create demo account: %v", err)
	}

	history := historyrepo.NewPostgresRepository(conn)
	now := time.Now().UTC()
	written := 0
	for _, scan := range sampleScans {
		at := now.AddDate(0, 0, -scan.daysAgo)
		for _, p := range scan.predictions {
			rec := &historydomain.Record{
				ID:         uuid.New().String(),
				AccountID:  account.ID,
				CreatedAt:  at,
				Label:      p.Label,
				Confidence: p.Confidence,
			}
			if err := history.Append(ctx, rec); err != nil {
				log.Fatalf("append history: %v", err)
			}
			written++
		}
	}

	log.Println("Seed completed successfully.")
	log.Printf("  Login: %s / %s", demoUsername, demoPassword)
	log.Printf("  Email: %s", demoEmail)
	log.Printf("  History records: %d", written)
}
