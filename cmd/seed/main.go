package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"strings"

	"course-portal-be/internal/model"
	"course-portal-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// Seeds the api_keys table from a CSV file of "student_id,name,key" lines.
// Re-running is safe; existing pairs are updated in place.
func main() {
	file := flag.String("file", "api_keys.csv", "path to the api key CSV file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		color.Red("Error: Failed to open %s: %v", *file, err)
		os.Exit(1)
	}
	defer f.Close()

	var seeded, skipped int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			color.Yellow("Skipping malformed line: %s", line)
			skipped++
			continue
		}

		key := model.ApiKey{
			StudentId: strings.TrimSpace(parts[0]),
			Name:      strings.TrimSpace(parts[1]),
			ApiKey:    strings.TrimSpace(parts[2]),
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"api_key"}),
		}).Create(&key).Error
		if err != nil {
			color.Red("Failed to seed %s / %s: %v", key.StudentId, key.Name, err)
			skipped++
			continue
		}
		seeded++
	}
	if err := scanner.Err(); err != nil {
		color.Red("Error reading %s: %v", *file, err)
		os.Exit(1)
	}

	color.Green("✅ Seeded %d api keys (%d skipped)", seeded, skipped)
}
