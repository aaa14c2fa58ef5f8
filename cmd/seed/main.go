// Command main runs the database seeder for JobPort.
package main

import (
	"flag"
	"log"

	"jobport/internal/config"
	"jobport/internal/database"
	"jobport/internal/seed"
)

func main() {
	numEmployers := flag.Int("employers", 10, "Number of employer accounts to create")
	numSeekers := flag.Int("seekers", 40, "Number of job seeker accounts to create")
	jobsPerEmployer := flag.Int("jobs", 5, "Number of jobs per employer")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Println("===============")
	log.Printf("Target: %d employers, %d seekers, %d jobs each, clean=%v\n",
		*numEmployers, *numSeekers, *jobsPerEmployer, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Seed(seed.Options{
		NumEmployers:    *numEmployers,
		NumSeekers:      *numSeekers,
		JobsPerEmployer: *jobsPerEmployer,
		ShouldClean:     *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All done! Every seeded account has the password: %s", seed.SeedPassword)
}
