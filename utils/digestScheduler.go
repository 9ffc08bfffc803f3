package utils

import (
	"log"
	"time"

	"codequest/database"
	"codequest/models"
	courseModels "codequest/models/course"

	"github.com/robfig/cron/v3"
)

// InitializeDigestScheduler sets up the weekly progress digest
func InitializeDigestScheduler() {
	log.Println("[DIGEST-SCHEDULER] Initializing progress digest scheduler...")

	c := cron.New()

	// Run Mondays at 8 AM
	c.AddFunc("0 8 * * 1", func() {
		log.Println("[DIGEST-SCHEDULER] Running weekly digest...")
		SendWeeklyDigests()
	})

	c.Start()
	log.Println("[DIGEST-SCHEDULER] Progress digest scheduler started - runs Mondays at 8 AM")
}

// SendWeeklyDigests mails every user that completed at least one module in
// the past week
func SendWeeklyDigests() {
	db := database.Database.Db
	oneWeekAgo := time.Now().AddDate(0, 0, -7)

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		log.Printf("[DIGEST-SCHEDULER] Error fetching users: %v", err)
		return
	}

	sent := 0
	for _, user := range users {
		var completions int64
		if err := db.Model(&courseModels.CompletedModule{}).
			Where("user_id = ? AND completed_at >= ?", user.ID, oneWeekAgo).
			Count(&completions).Error; err != nil {
			log.Printf("[DIGEST-SCHEDULER] Error counting completions for user %d: %v", user.ID, err)
			continue
		}
		if completions == 0 {
			continue
		}

		SendDigestEmail(user.Email, user.Name, int(completions), user.XP)
		sent++
	}

	log.Printf("[DIGEST-SCHEDULER] Weekly digest sent to %d user(s)", sent)
}
