// Command main runs the database seeder for Inkwell.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 80, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords for fast local reseeds")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(database.DB, seed.Options{SkipBcrypt: *skipBcrypt})

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	if err := s.Seed(*numUsers, *numPosts); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
