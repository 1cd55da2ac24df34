package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/inspection-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/inspection-scheduler/internal/db"
	"github.com/BruksfildServices01/inspection-scheduler/internal/models"
	"github.com/BruksfildServices01/inspection-scheduler/internal/seed"
)

// Seeds demo users and a spread of inspections from 12 days back to
// 7 days ahead. Safe to re-run, existing rows are wiped first.
func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&models.Inspection{}).Error; err != nil {
		log.Fatalf("failed to clear inspections: %v", err)
	}

	consultants := seedUsers(db)

	total := 0
	now := time.Now()

	for offset := -12; offset <= 7; offset++ {
		day := now.AddDate(0, 0, offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		perDay := 2 + rng.Intn(4)
		for _, start := range seed.PickDaySlots(rng, day, perDay) {
			carMake, model := seed.RandomVehicle(rng)

			ins := models.Inspection{
				VehicleMake:     carMake,
				VehicleModel:    model,
				LicensePlate:    seed.RandomPlate(rng),
				ClientName:      seed.RandomClientName(rng),
				PhoneNumber:     seed.RandomPhone(rng),
				CreatedByUserID: consultants[rng.Intn(len(consultants))].ID,
			}
			ins.SetStartTime(start)

			if err := db.Create(&ins).Error; err != nil {
				log.Fatalf("failed to insert inspection: %v", err)
			}
			total++
		}
	}

	log.Printf("Seeded %d users and %d inspections", len(consultants)+1, total)
}

func seedUsers(db *gorm.DB) []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte("test"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var consultants []models.User

	for i := 1; i <= 4; i++ {
		user := models.User{
			Username:     fmt.Sprintf("konsultant%d", i),
			Name:         fmt.Sprintf("Konsultant %d", i),
			PasswordHash: string(hash),
			Role:         models.RoleConsultant,
		}
		upsertUser(db, &user)
		consultants = append(consultants, user)
	}

	inspector := models.User{
		Username:     "inspektor1",
		Name:         "Inspektor 1",
		PasswordHash: string(hash),
		Role:         models.RoleInspector,
	}
	upsertUser(db, &inspector)

	return consultants
}

func upsertUser(db *gorm.DB, user *models.User) {
	var existing models.User
	err := db.Where("username = ?", user.Username).First(&existing).Error

	switch {
	case err == nil:
		existing.Name = user.Name
		existing.PasswordHash = user.PasswordHash
		existing.Role = user.Role
		if err := db.Save(&existing).Error; err != nil {
			log.Fatalf("failed to update user %s: %v", user.Username, err)
		}
		*user = existing
	case err == gorm.ErrRecordNotFound:
		if err := db.Create(user).Error; err != nil {
			log.Fatalf("failed to create user %s: %v", user.Username, err)
		}
	default:
		log.Fatalf("failed to look up user %s: %v", user.Username, err)
	}
}
