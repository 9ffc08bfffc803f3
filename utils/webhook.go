package utils

import (
	"log"

	"codequest/config"

	"github.com/go-resty/resty/v2"
)

// NotifyLevelUp posts a level-up event to the configured webhook, if any.
// Failures are logged and swallowed; progression never depends on this call.
func NotifyLevelUp(name string, level int, totalXP int) {
	url := config.AppConfig.LevelUpWebhookURL
	if url == "" {
		return
	}

	go func() {
		client := resty.New()
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"event":    "level_up",
				"user":     name,
				"level":    level,
				"total_xp": totalXP,
			}).
			Post(url)
		if err != nil {
			log.Printf("[WEBHOOK] Failed to send level-up event: %v", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("[WEBHOOK] Level-up event rejected: %s", resp.Status())
		}
	}()
}
