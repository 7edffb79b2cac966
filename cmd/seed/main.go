package main

import (
	"encoding/csv"
	"log"
	"os"
	"path/filepath"

	"edutrack-advisor-be/pkg/dataset"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// Seeds the dataset directory with sample student records so the lookup
// engine has something to answer from on a fresh install.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	baseDir := os.Getenv("DATASET_BASE_DIR")
	if baseDir == "" {
		baseDir = "./data"
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		color.Red("Failed to create dataset directory %s: %v", baseDir, err)
		os.Exit(1)
	}

	seeds := map[dataset.ID][][]string{
		dataset.Academic: {
			{"student_id", "name", "gpa", "semester", "major"},
			{"S001", "Aisha Rahman", "8.7", "4", "Computer Science"},
			{"S002", "Budi Santoso", "6.4", "4", "Information Systems"},
			{"S003", "Citra Dewi", "9.2", "6", "Computer Science"},
			{"S004", "Dimas Putra", "7.8", "2", "Data Science"},
			{"S005", "Eka Lestari", "5.9", "6", "Information Systems"},
		},
		dataset.Performance: {
			{"student_id", "name", "attendance_pct", "assignments_completed", "trend"},
			{"S001", "Aisha Rahman", "96", "24", "improving"},
			{"S002", "Budi Santoso", "71", "15", "declining"},
			{"S003", "Citra Dewi", "99", "26", "stable"},
			{"S004", "Dimas Putra", "88", "20", "improving"},
			{"S005", "Eka Lestari", "64", "12", "declining"},
		},
		dataset.Welfare: {
			{"student_id", "name", "counseling_sessions", "wellbeing_score", "flagged"},
			{"S001", "Aisha Rahman", "0", "8", "no"},
			{"S002", "Budi Santoso", "2", "5", "yes"},
			{"S003", "Citra Dewi", "1", "7", "no"},
			{"S004", "Dimas Putra", "0", "9", "no"},
			{"S005", "Eka Lestari", "3", "4", "yes"},
		},
		dataset.Career: {
			{"student_id", "name", "internships", "target_industry", "cv_reviewed"},
			{"S001", "Aisha Rahman", "1", "software", "yes"},
			{"S002", "Budi Santoso", "0", "banking", "no"},
			{"S003", "Citra Dewi", "2", "research", "yes"},
			{"S004", "Dimas Putra", "1", "analytics", "no"},
			{"S005", "Eka Lestari", "0", "consulting", "no"},
		},
	}

	for id, rows := range seeds {
		path := filepath.Join(baseDir, string(id)+".csv")
		if _, err := os.Stat(path); err == nil {
			color.Yellow("Skipping %s (already exists)", path)
			continue
		}

		if err := writeCSV(path, rows); err != nil {
			color.Red("Failed to write %s: %v", path, err)
			os.Exit(1)
		}
		color.Green("Seeded %s (%d records)", path, len(rows)-1)
	}

	color.Cyan("Dataset seeding complete.")
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
