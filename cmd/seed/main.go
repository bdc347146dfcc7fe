package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleamart/internal/config"
	"fleamart/internal/db"
	"fleamart/internal/model"
	"fleamart/internal/repository"
)

// SeedUserData is one user entry in the seed document.
type SeedUserData struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Tier     string `json:"tier"`
	Items    []struct {
		Name        string `json:"name"`
		Price       string `json:"price"`
		Description string `json:"description"`
	} `json:"items"`
}

// defaultSeed is used when SEED_URL is not configured.
var defaultSeed = []SeedUserData{
	{
		Username: "alice",
		Password: "alice-password",
		Tier:     "PREMIUM",
	},
	{
		Username: "bob",
		Password: "bob-password",
		Tier:     "FREE",
		Items: []struct {
			Name        string `json:"name"`
			Price       string `json:"price"`
			Description string `json:"description"`
		}{
			{Name: "PC", Price: "50000", Description: "a used gaming pc"},
			{Name: "Keyboard", Price: "4500", Description: "mechanical, blue switches"},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seed := defaultSeed
	if cfg.SeedURL != "" {
		log.Printf("Fetching seed data from: %s", cfg.SeedURL)
		seed, err = fetchSeedData(cfg.SeedURL)
		if err != nil {
			log.Fatalf("Failed to fetch seed data: %v", err)
		}
	}
	log.Printf("Seeding %d users", len(seed))

	userRepo := repository.NewUserRepository(gormDB)
	itemRepo := repository.NewItemRepository(gormDB)
	ctx := context.Background()

	users, items, err := seedUsers(ctx, userRepo, itemRepo, seed)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", users)
	log.Printf("  - Items created: %d", items)
}

// fetchSeedData fetches the seed document from a URL.
func fetchSeedData(url string) ([]SeedUserData, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch seed data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed URL returned status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var seed []SeedUserData
	if err := json.Unmarshal(body, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return seed, nil
}

// seedUsers creates the given users and their listings, skipping usernames
// that already exist.
func seedUsers(ctx context.Context, userRepo repository.UserRepository, itemRepo repository.ItemRepository, seed []SeedUserData) (users int, items int, err error) {
	for _, entry := range seed {
		existing, err := userRepo.FindByUsername(ctx, entry.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return users, items, fmt.Errorf("error checking user %s: %w", entry.Username, err)
		}
		if existing != nil {
			log.Printf("Skipping existing user: %s", entry.Username)
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(entry.Password), 10)
		if err != nil {
			return users, items, fmt.Errorf("error hashing password for %s: %w", entry.Username, err)
		}

		tier := model.UserTierFree
		if entry.Tier == string(model.UserTierPremium) {
			tier = model.UserTierPremium
		}

		user := &model.User{
			Username:     entry.Username,
			PasswordHash: string(hashed),
			Tier:         tier,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return users, items, fmt.Errorf("error creating user %s: %w", entry.Username, err)
		}
		users++

		for _, listing := range entry.Items {
			price, err := decimal.NewFromString(listing.Price)
			if err != nil {
				log.Printf("Skipping item %q with invalid price: %s", listing.Name, listing.Price)
				continue
			}
			item := &model.Item{
				Name:        listing.Name,
				Price:       price,
				Description: listing.Description,
				Status:      model.ItemStatusOnSale,
				UserID:      user.ID,
			}
			if err := itemRepo.Create(ctx, item); err != nil {
				return users, items, fmt.Errorf("error creating item %q: %w", listing.Name, err)
			}
			items++
		}
	}

	return users, items, nil
}
