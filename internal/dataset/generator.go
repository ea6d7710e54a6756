// Package dataset builds the deterministic synthetic user list served by
// /users. Every field of record i is a pure function of i and the lookup
// tables in tables.go; nothing random, no clock, no I/O.
package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/apibench/internal/common"
)

// UserCount is the number of records in the dataset. Ids run 1..UserCount.
const UserCount = 10000

// Generate returns all UserCount records in ascending id order.
func Generate() []User {
	users := make([]User, 0, UserCount)
	for i := 1; i <= UserCount; i++ {
		users = append(users, buildUser(i))
	}
	return users
}

// NewUser returns the record with id i.
func NewUser(i int) (User, error) {
	if i < 1 || i > UserCount {
		return User{}, fmt.Errorf("user %d: %w", i, common.ErrIndexOutOfRange)
	}
	return buildUser(i), nil
}

func buildUser(i int) User {
	firstName := pick(firstNames[:], i, firstNameStep)
	lastName := pick(lastNames[:], i, lastNameStep)

	age := 25 + i%50
	yearsAtCompany := 1 + i%15

	return User{
		ID:          i,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       strings.ToLower(firstName) + "." + strings.ToLower(lastName) + strconv.Itoa(i) + "@example.com",
		PhoneNumber: fmt.Sprintf("+1-%03d-%03d-%04d", 200+i%800, 100+i%900, 1000+i%9000),
		DateOfBirth: formatSimple(shift(-age, 0, i%365)),
		Address: Address{
			Street:  strconv.Itoa(100+i%9900) + " " + pick(streets[:], i, streetStep),
			City:    pick(cities[:], i, cityStep),
			State:   pick(states[:], i, stateStep),
			ZipCode: fmt.Sprintf("%05d", 10000+i%89999),
			Country: "USA",
		},
		Company: Company{
			Name:       pick(companies[:], i, companyStep),
			Department: pick(departments[:], i, departmentStep),
			Position:   pick(positions[:], i, positionStep),
			Salary:     float64(40000 + i%160000),
			StartDate:  formatSimple(shift(yearsAtCompany, 0, i%365)),
		},
		Preferences: preferences(i),
		Metadata:    metadata(i),
		Tags:        Tags(i),
		IsActive:    i%10 != 0,
		CreatedAt:   formatSimple(shift(0, 0, i%1825)),
		UpdatedAt:   formatSimple(shift(0, 0, 1825+i%365)),
	}
}

func preferences(i int) UserPreferences {
	p := UserPreferences{
		Theme:                "Light",
		NotificationsEnabled: i%3 != 0,
		Newsletter:           i%4 != 0,
		TwoFactorEnabled:     i%5 == 0,
	}
	if i%2 == 0 {
		p.Theme = "Dark"
	}
	switch i % 3 {
	case 0:
		p.Language = "en"
	case 1:
		p.Language = "es"
	default:
		p.Language = "fr"
	}
	return p
}

func metadata(i int) Metadata {
	status := "Active"
	if i%10 == 0 {
		status = "Inactive"
	}
	return Metadata{
		LastLogin:         formatPrecise(shift(0, 0, i%730)),
		AccountStatus:     status,
		VerificationLevel: strconv.Itoa(i%3 + 1),
		ReferralCode:      fmt.Sprintf("REF%06d", i),
		CustomerSince:     formatPrecise(shift(0, -(i % 60), 0)),
	}
}

// Tags returns the tag list for record i: tags[(i+j) % len(tags)] for
// j in [0, 3+i%6), keeping the first occurrence of each tag in order.
func Tags(i int) []string {
	count := 3 + i%6
	out := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for j := 0; j < count; j++ {
		tag := tags[(i+j)%len(tags)]
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
