package dataset

// User is one synthetic record. Field order is the serialized order.
type User struct {
	ID          int             `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	DateOfBirth string          `json:"dateOfBirth"`
	Address     Address         `json:"address"`
	Company     Company         `json:"company"`
	Preferences UserPreferences `json:"preferences"`
	Metadata    Metadata        `json:"metadata"`
	Tags        []string        `json:"tags"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Company struct {
	Name       string  `json:"name"`
	Department string  `json:"department"`
	Position   string  `json:"position"`
	Salary     float64 `json:"salary"`
	StartDate  string  `json:"startDate"`
}

type UserPreferences struct {
	Theme                string `json:"theme"`
	Language             string `json:"language"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Newsletter           bool   `json:"newsletter"`
	TwoFactorEnabled     bool   `json:"twoFactorEnabled"`
}

// Metadata is the fixed-key string map attached to every user. It is a
// struct rather than a map so the keys serialize in a stable, documented
// order.
type Metadata struct {
	LastLogin         string `json:"LastLogin"`
	AccountStatus     string `json:"AccountStatus"`
	VerificationLevel string `json:"VerificationLevel"`
	ReferralCode      string `json:"ReferralCode"`
	CustomerSince     string `json:"CustomerSince"`
}
