package dataset

// Lookup tables. Contents and order are part of the output contract: every
// port of this service indexes into the same lists.
var (
	firstNames = [...]string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
		"William", "Barbara", "David", "Elizabeth", "Richard", "Susan", "Joseph", "Jessica",
		"Thomas", "Sarah", "Christopher", "Karen",
	}
	lastNames = [...]string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
		"Thomas", "Taylor", "Moore", "Jackson", "Martin",
	}
	cities = [...]string{
		"New York", "Los Angeles", "Chicago", "Houston", "Phoenix", "Philadelphia",
		"San Antonio", "San Diego", "Dallas", "San Jose", "Austin", "Jacksonville",
		"Fort Worth", "Columbus", "Indianapolis", "Charlotte", "San Francisco", "Seattle",
		"Denver", "Washington",
	}
	streets = [...]string{
		"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane", "Pine Road", "Elm Street",
		"Washington Boulevard", "Park Avenue", "Lake Drive", "Hill Street", "River Road",
		"Forest Lane", "Spring Street", "Valley Road", "Mountain View", "Sunset Boulevard",
		"Broadway", "First Avenue", "Second Street", "Third Avenue",
	}
	companies = [...]string{
		"TechCorp", "GlobalSystems", "DataWorks", "CloudNine", "InnovateLabs", "FutureSync",
		"AlphaTech", "BetaSoft", "GammaIndustries", "DeltaSolutions", "EpsilonGroup",
		"ZetaDigital", "EtaTechnologies", "ThetaVentures", "IotaEnterprises",
	}
	departments = [...]string{
		"Engineering", "Sales", "Marketing", "Human Resources", "Finance", "Operations",
		"Customer Support", "Product Management", "Research and Development",
		"Quality Assurance", "Legal", "IT Support", "Business Development", "Accounting",
		"Administration",
	}
	positions = [...]string{
		"Software Engineer", "Senior Developer", "Product Manager", "Sales Representative",
		"Marketing Specialist", "HR Manager", "Financial Analyst", "Operations Manager",
		"Support Specialist", "QA Engineer", "Team Lead", "Director", "Vice President",
		"Consultant", "Coordinator",
	}
	states = [...]string{
		"CA", "NY", "TX", "FL", "PA", "IL", "OH", "GA", "NC", "MI", "NJ", "VA", "WA", "AZ",
		"MA", "TN", "IN", "MO", "MD", "WI",
	}
	tags = [...]string{
		"VIP", "Premium", "Enterprise", "Verified", "Active", "Beta", "EarlyAdopter",
		"Ambassador", "Partner", "Influencer", "Champion", "Leader", "Expert", "Mentor",
		"Contributor",
	}
)

// Per-field multipliers used to pick a table slot for record i.
const (
	firstNameStep  = 7
	lastNameStep   = 11
	cityStep       = 13
	streetStep     = 17
	stateStep      = 19
	companyStep    = 23
	departmentStep = 29
	positionStep   = 31
)

// pick returns table[(i*step) % len(table)].
func pick(table []string, i, step int) string {
	return table[(i*step)%len(table)]
}
