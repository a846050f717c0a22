package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/godbound-api/internal/entities/godbound"
)

const (
	subjectKeyPrefix = "subject:"
	ownerIndexPrefix = "subject:owner:"
)

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning subject sheets...")

	iter := client.Scan(ctx, 0, subjectKeyPrefix+"*", 0).Iterator()

	var corruptedKeys []string
	var checkedCount, reindexed int

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, ownerIndexPrefix) {
			continue
		}
		checkedCount++

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var subject godbound.Subject
		if err := json.Unmarshal([]byte(data), &subject); err != nil {
			fmt.Printf("✗ Corrupted JSON in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		if problem := inspect(&subject, key); problem != "" {
			fmt.Printf("✗ %s: %s\n", key, problem)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		// Sheets written before the owner index existed are missing from it
		added, err := client.SAdd(ctx, ownerIndexPrefix+subject.OwnerID, subject.ID).Result()
		if err != nil {
			fmt.Printf("Failed to index %s: %v\n", key, err)
			continue
		}
		reindexed += int(added)
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	fmt.Printf("\nChecked %d sheets, re-indexed %d, found %d corrupted entries\n",
		checkedCount, reindexed, len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		fmt.Println("No corrupted data found!")
		return
	}

	fmt.Println("\nCorrupted keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these corrupted entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no changes made")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

// inspect reports the first thing wrong with a stored sheet
func inspect(s *godbound.Subject, key string) string {
	switch {
	case s.ID == "" || subjectKeyPrefix+s.ID != key:
		return fmt.Sprintf("id %q does not match key", s.ID)
	case s.OwnerID == "":
		return "no owner"
	case s.Effort.Scene < 0 || s.Effort.Day < 0 || s.Effort.AtWill < 0:
		return "negative committed effort"
	case s.Effort.Available() < 0:
		return fmt.Sprintf("effort over-committed (%d of %d)", s.Effort.Committed(), s.Effort.Total)
	case s.HP.Value < 0 || (s.HP.Max > 0 && s.HP.Value > s.HP.Max):
		return fmt.Sprintf("hp %d outside 0..%d", s.HP.Value, s.HP.Max)
	case s.HitDice.Value < 0 || (s.HitDice.Max > 0 && s.HitDice.Value > s.HitDice.Max):
		return fmt.Sprintf("hit dice %d outside 0..%d", s.HitDice.Value, s.HitDice.Max)
	}
	return ""
}
