// Command main runs the database seeder for the Hugin API.
package main

import (
	"flag"
	"log"

	"github.com/f-r00t/hugin-api/internal/config"
	"github.com/f-r00t/hugin-api/internal/database"
	"github.com/f-r00t/hugin-api/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	numEncrypted := flag.Int("encrypted", 50, "Number of encrypted group posts to create")
	replyRatio := flag.Float64("reply-ratio", 0.4, "Fraction of posts that reply to an earlier post")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Hugin API seeder")
	log.Printf("Target: %d posts, %d encrypted, reply ratio %.2f, clean=%v\n",
		*numPosts, *numEncrypted, *replyRatio, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(database.DB)
	if err := s.Run(seed.Options{
		Posts:          *numPosts,
		EncryptedPosts: *numEncrypted,
		ReplyRatio:     *replyRatio,
		Clean:          *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. The post index is populated with demo data.")
}
