package seed

import (
	"fmt"
	"math/rand"
	"time"

	domain "github.com/BruksfildServices01/inspection-scheduler/internal/domain/inspection"
)

// ======================================================
// DEMO DATA POOLS
// ======================================================

var firstNames = []string{
	"Jan", "Piotr", "Krzysztof", "Andrzej", "Tomasz",
	"Anna", "Maria", "Katarzyna", "Agnieszka", "Barbara",
	"Marek", "Michal", "Pawel", "Ewa", "Magdalena",
}

var lastNames = []string{
	"Nowak", "Kowalski", "Wisniewski", "Wojcik", "Kowalczyk",
	"Kaminski", "Lewandowski", "Zielinski", "Szymanski", "Wozniak",
	"Dabrowski", "Kozlowski", "Jankowski", "Mazur", "Krawczyk",
}

var vehicles = []struct {
	Make   string
	Models []string
}{
	{"Toyota", []string{"Corolla", "Yaris", "Avensis", "RAV4"}},
	{"Volkswagen", []string{"Golf", "Passat", "Polo", "Tiguan"}},
	{"Skoda", []string{"Octavia", "Fabia", "Superb", "Kodiaq"}},
	{"Ford", []string{"Focus", "Fiesta", "Mondeo", "Kuga"}},
	{"Opel", []string{"Astra", "Corsa", "Insignia"}},
	{"Renault", []string{"Clio", "Megane", "Captur"}},
	{"Fiat", []string{"Panda", "Tipo", "500"}},
	{"Hyundai", []string{"i30", "Tucson", "Kona"}},
	{"Kia", []string{"Ceed", "Sportage", "Rio"}},
	{"BMW", []string{"Seria 3", "Seria 5", "X3"}},
}

var plateRegions = []string{
	"WA", "KR", "PO", "GD", "WR", "LU", "SK", "BI", "OP", "RZ",
}

const plateLetters = "ABCDEFGHJKLMNPRSTUVWXYZ"

// ======================================================
// GENERATORS
// ======================================================

func RandomClientName(rng *rand.Rand) string {
	return firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
}

func RandomVehicle(rng *rand.Rand) (carMake, model string) {
	v := vehicles[rng.Intn(len(vehicles))]
	return v.Make, v.Models[rng.Intn(len(v.Models))]
}

func RandomPlate(rng *rand.Rand) string {
	region := plateRegions[rng.Intn(len(plateRegions))]
	letter := plateLetters[rng.Intn(len(plateLetters))]
	return fmt.Sprintf("%s %c%04d", region, letter, rng.Intn(10000))
}

func RandomPhone(rng *rand.Rand) string {
	return fmt.Sprintf("+48 %03d %03d %03d",
		500+rng.Intn(400), rng.Intn(1000), rng.Intn(1000))
}

// ======================================================
// SLOT PICKING
// ======================================================

// DaySlotStarts lists every quarter-hour start between 07:00 and 15:30
// on the given day. 15:30 is the last start that still ends inside
// working hours.
func DaySlotStarts(day time.Time) []time.Time {
	base := time.Date(day.Year(), day.Month(), day.Day(),
		domain.WorkStartHour, 0, 0, 0, day.Location())
	last := time.Date(day.Year(), day.Month(), day.Day(),
		15, 30, 0, 0, day.Location())

	var starts []time.Time
	for t := base; !t.After(last); t = t.Add(15 * time.Minute) {
		starts = append(starts, t)
	}
	return starts
}

// PickDaySlots selects up to count slot starts for the day so that no
// two picked slots violate the 15 minute buffer between inspections.
func PickDaySlots(rng *rand.Rand, day time.Time, count int) []time.Time {
	candidates := DaySlotStarts(day)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	var picked []time.Time
	for _, start := range candidates {
		if len(picked) >= count {
			break
		}

		bufStart, bufEnd := domain.BufferedWindow(start, domain.EndOf(start))

		ok := true
		for _, other := range picked {
			oStart, oEnd := domain.BufferedWindow(other, domain.EndOf(other))
			if oStart.Before(bufEnd) && oEnd.After(bufStart) {
				ok = false
				break
			}
		}

		if ok {
			picked = append(picked, start)
		}
	}

	return picked
}
