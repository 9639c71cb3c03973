package main

import (
	"context"
	"log"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/model"
	"blogapi/internal/repository"
)

// seedUser is a fixture entry; the password is hashed before insert.
type seedUser struct {
	Email    string
	Username string
	Password string
	About    string
}

type seedPost struct {
	Title   string
	Content string
	Image   string
}

var seedUsers = []seedUser{
	{Email: "admin@example.com", Username: "admin", Password: "admin123", About: "Resident administrator."},
	{Email: "alice@example.com", Username: "alice", Password: "alice123", About: "Writes about distributed systems."},
	{Email: "bob@example.com", Username: "bob", Password: "bob12345", About: "Occasional guest author."},
}

var seedPosts = []seedPost{
	{Title: "Hello, world", Content: "The obligatory first post.", Image: ""},
	{Title: "On writing less", Content: "Shorter posts get read. Long posts get skimmed.", Image: ""},
	{Title: "Notes on caching", Content: "Every cache is a bet that the past predicts the future.", Image: ""},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Start from a clean slate, then recreate the schema.
	for _, table := range []interface{}{&model.Post{}, &model.User{}} {
		if err := gormDB.Migrator().DropTable(table); err != nil {
			log.Printf("Warning: Failed to drop table (may not exist): %v", err)
		}
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database reset and migrated")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	ctx := context.Background()

	users := make([]*model.User, 0, len(seedUsers))
	for _, su := range seedUsers {
		hashed, err := auth.HashPassword(su.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Username, err)
		}
		user := &model.User{
			Email:        su.Email,
			Username:     su.Username,
			PasswordHash: hashed,
			About:        su.About,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Username, err)
		}
		users = append(users, user)
	}
	log.Printf("%d users have been created", len(users))

	// All fixture posts belong to the first seeded user.
	owner := users[0]
	created := 0
	for _, sp := range seedPosts {
		post := &model.Post{
			Title:   sp.Title,
			Content: sp.Content,
			Image:   sp.Image,
			OwnerID: owner.ID,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("Failed to create post %q: %v", sp.Title, err)
		}
		created++
	}
	log.Printf("%d posts have been created for %s", created, owner.Username)

	log.Println("Seed completed successfully!")
}
