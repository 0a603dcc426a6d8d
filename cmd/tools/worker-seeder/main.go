// cmd/tools/worker-seeder/main.go

// worker-seeder inserts a fixed roster of verified test workers so the
// matching endpoints can be exercised against a fresh database. Workers
// already present (matched by phone) are skipped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pratham1800/HouseHelp/internal/common/config"
	"github.com/pratham1800/HouseHelp/internal/common/database"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
)

type seedWorker struct {
	Name               string
	Phone              string
	WorkType           string
	WorkSubcategories  []string
	YearsExperience    int
	LanguagesSpoken    []string
	PreferredAreas     []string
	WorkingHours       string
	Gender             string
	ResidentialAddress string
}

var seedWorkers = []seedWorker{
	{
		Name:               "Sunita Devi",
		Phone:              "+91 98765 11111",
		WorkType:           "cooking",
		WorkSubcategories:  []string{"vegetarian"},
		YearsExperience:    8,
		LanguagesSpoken:    []string{"Hindi", "English"},
		PreferredAreas:     []string{"Koramangala", "HSR Layout", "BTM Layout"},
		WorkingHours:       "morning",
		Gender:             "female",
		ResidentialAddress: "Koramangala, Bangalore",
	},
	{
		Name:               "Ramu Kumar",
		Phone:              "+91 98765 22222",
		WorkType:           "cooking",
		WorkSubcategories:  []string{"vegetarian", "eggitarian", "non_vegetarian"},
		YearsExperience:    5,
		LanguagesSpoken:    []string{"Hindi", "Kannada"},
		PreferredAreas:     []string{"Whitefield", "Marathahalli", "ITPL"},
		WorkingHours:       "full_day",
		Gender:             "male",
		ResidentialAddress: "Whitefield, Bangalore",
	},
	{
		Name:               "Venkatesh Rao",
		Phone:              "+91 98765 33333",
		WorkType:           "driving",
		YearsExperience:    10,
		LanguagesSpoken:    []string{"Hindi", "Kannada", "English"},
		PreferredAreas:     []string{"Indiranagar", "Koramangala", "MG Road"},
		WorkingHours:       "full_day",
		Gender:             "male",
		ResidentialAddress: "Indiranagar, Bangalore",
	},
	{
		Name:               "Mohammad Salim",
		Phone:              "+91 98765 44444",
		WorkType:           "driving",
		YearsExperience:    7,
		LanguagesSpoken:    []string{"Hindi", "Urdu", "English"},
		PreferredAreas:     []string{"JP Nagar", "Jayanagar", "Banashankari"},
		WorkingHours:       "evening",
		Gender:             "male",
		ResidentialAddress: "JP Nagar, Bangalore",
	},
	{
		Name:               "Lakshmi Bai",
		Phone:              "+91 98765 55555",
		WorkType:           "gardening",
		YearsExperience:    12,
		LanguagesSpoken:    []string{"Hindi", "Kannada"},
		PreferredAreas:     []string{"HSR Layout", "Sarjapur", "Bellandur"},
		WorkingHours:       "morning",
		Gender:             "female",
		ResidentialAddress: "HSR Layout, Bangalore",
	},
	{
		Name:               "Prakash Nair",
		Phone:              "+91 98765 66666",
		WorkType:           "gardening",
		YearsExperience:    6,
		LanguagesSpoken:    []string{"Hindi", "Malayalam", "English"},
		PreferredAreas:     []string{"Koramangala", "Indiranagar", "Whitefield"},
		WorkingHours:       "full_day",
		Gender:             "male",
		ResidentialAddress: "Koramangala, Bangalore",
	},
	{
		Name:               "Meena Kumari",
		Phone:              "+91 98765 77777",
		WorkType:           "domestic_help",
		WorkSubcategories:  []string{"brooming", "dusting", "dishwashing"},
		YearsExperience:    9,
		LanguagesSpoken:    []string{"Hindi", "Telugu"},
		PreferredAreas:     []string{"Marathahalli", "Whitefield", "ITPL"},
		WorkingHours:       "morning",
		Gender:             "female",
		ResidentialAddress: "Marathahalli, Bangalore",
	},
	{
		Name:               "Savitri Devi",
		Phone:              "+91 98765 88888",
		WorkType:           "domestic_help",
		WorkSubcategories:  []string{"brooming", "dusting", "laundry", "dishwashing", "bathroom", "full-house"},
		YearsExperience:    4,
		LanguagesSpoken:    []string{"Hindi", "Kannada"},
		PreferredAreas:     []string{"Electronic City", "HSR Layout", "BTM Layout"},
		WorkingHours:       "full_day",
		Gender:             "female",
		ResidentialAddress: "Electronic City, Bangalore",
	},
	{
		Name:               "Rajesh Singh",
		Phone:              "+91 98765 99999",
		WorkType:           "driving",
		YearsExperience:    15,
		LanguagesSpoken:    []string{"Hindi", "English", "Punjabi"},
		PreferredAreas:     []string{"MG Road", "Brigade Road", "Koramangala"},
		WorkingHours:       "full_day",
		Gender:             "male",
		ResidentialAddress: "MG Road, Bangalore",
	},
	{
		Name:               "Kamala Bai",
		Phone:              "+91 98765 00000",
		WorkType:           "domestic_help",
		WorkSubcategories:  []string{"brooming", "laundry", "bathroom"},
		YearsExperience:    6,
		LanguagesSpoken:    []string{"Hindi", "Kannada"},
		PreferredAreas:     []string{"Whitefield", "Marathahalli", "ITPL"},
		WorkingHours:       "morning",
		Gender:             "female",
		ResidentialAddress: "Whitefield, Bangalore",
	},
}

func main() {
	dryRun := flag.Bool("dry-run", false, "print the roster without writing to the database")
	flag.Parse()

	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	if *dryRun {
		for _, w := range seedWorkers {
			fmt.Printf("%-16s %-13s %s\n", w.Name, w.WorkType, w.ResidentialAddress)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres connection failed", zap.Error(err))
	}
	defer pg.Close()

	ctx := context.Background()
	inserted, skipped := 0, 0

	for _, w := range seedWorkers {
		var exists bool
		err := pg.DB.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM workers WHERE phone = $1)`, w.Phone).Scan(&exists)
		if err != nil {
			zapLog.Fatal("existence check failed", zap.String("name", w.Name), zap.Error(err))
		}
		if exists {
			zapLog.Info("Worker already seeded, skipping", zap.String("name", w.Name))
			skipped++
			continue
		}

		_, err = pg.DB.ExecContext(ctx, `
			INSERT INTO workers (
				id, name, phone, work_type, work_subcategories, years_experience,
				languages_spoken, preferred_areas, residential_address,
				working_hours, gender, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'verified')`,
			uuid.NewString(), w.Name, w.Phone, w.WorkType,
			pq.Array(w.WorkSubcategories), w.YearsExperience,
			pq.Array(w.LanguagesSpoken), pq.Array(w.PreferredAreas),
			w.ResidentialAddress, w.WorkingHours, w.Gender,
		)
		if err != nil {
			zapLog.Error("insert failed", zap.String("name", w.Name), zap.Error(err))
			os.Exit(1)
		}
		zapLog.Info("Worker seeded", zap.String("name", w.Name), zap.String("workType", w.WorkType))
		inserted++
	}

	zapLog.Info("Seeding complete", zap.Int("inserted", inserted), zap.Int("skipped", skipped))
}
