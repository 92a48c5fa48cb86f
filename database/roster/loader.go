// Package roster loads the initial provider and client rosters from CSV at
// startup. It sits outside the reservation core: it only calls Register and
// supplies each provider's one-time initial slot set.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	clientRepo "wellbook/database/repository/client"
	providerRepo "wellbook/database/repository/provider"
	"wellbook/models"
	"wellbook/utils"
)

const (
	slotsPerProvider = 3
	firstSlotHour    = 9 // 09:00 local, the day after load
)

// LoadProviders reads a provider roster CSV (header: id,name,categories, with
// categories separated by ';') and registers each row. Every provider gets a
// generated initial slot set: hourly slots starting 09:00 tomorrow, slot id
// derived as providerID*100+i so ids are globally unique.
func LoadProviders(path string, registry providerRepo.Registry, clock utils.Clock) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open provider roster: %w", err)
	}
	defer f.Close()

	rows, err := readRecords(f)
	if err != nil {
		return 0, fmt.Errorf("read provider roster %s: %w", path, err)
	}

	count := 0
	for _, row := range rows {
		if len(row) < 3 {
			return count, fmt.Errorf("provider roster %s: row %d has %d columns, want 3", path, count+1, len(row))
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return count, fmt.Errorf("provider roster %s: bad id %q: %w", path, row[0], err)
		}

		provider := models.Provider{
			ID:         id,
			Name:       strings.TrimSpace(row[1]),
			Categories: splitCategories(row[2]),
			Slots:      defaultSlots(id, clock.Now()),
		}
		if err := registry.Register(provider); err != nil {
			return count, fmt.Errorf("register provider %d: %w", id, err)
		}
		count++
	}
	return count, nil
}

// LoadClients reads a client roster CSV (header: id,name).
func LoadClients(path string, repo clientRepo.Repository) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open client roster: %w", err)
	}
	defer f.Close()

	rows, err := readRecords(f)
	if err != nil {
		return 0, fmt.Errorf("read client roster %s: %w", path, err)
	}

	count := 0
	for _, row := range rows {
		if len(row) < 2 {
			return count, fmt.Errorf("client roster %s: row %d has %d columns, want 2", path, count+1, len(row))
		}
		id, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return count, fmt.Errorf("client roster %s: bad id %q: %w", path, row[0], err)
		}
		if err := repo.Register(models.Client{ID: id, Name: strings.TrimSpace(row[1])}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// DefaultClients is the built-in client roster used when no client CSV exists.
func DefaultClients() []models.Client {
	return []models.Client{
		{ID: 101, Name: "Alice"},
		{ID: 102, Name: "Bob"},
	}
}

// readRecords consumes the header row and returns the data rows.
func readRecords(f *os.File) ([][]string, error) {
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

func splitCategories(field string) []string {
	var cats []string
	for _, c := range strings.Split(field, ";") {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}
	return cats
}

func defaultSlots(providerID int, now time.Time) []models.Slot {
	base := time.Date(now.Year(), now.Month(), now.Day(), firstSlotHour, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	slots := make([]models.Slot, 0, slotsPerProvider)
	for i := 0; i < slotsPerProvider; i++ {
		slots = append(slots, models.Slot{
			ID:        providerID*100 + i,
			StartTime: base.Add(time.Duration(i) * time.Hour),
			Status:    models.SlotAvailable,
		})
	}
	return slots
}
