package models

import "time"

// DefaultImageURL is the placeholder campaign image used when no image is
// supplied or the image upload fails.
const DefaultImageURL = "https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800&h=400&fit=crop"

// Categories is the fixed taxonomy the UI offers. "All Categories" is a
// UI label only; the domain uses CategoryFilter instead of the string.
var Categories = []string{
	"Water & Sanitation",
	"Emergency Relief",
	"Education",
	"Environment",
	"Healthcare",
	"Community Development",
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// SeedCampaigns returns the built-in demo collection adopted when the
// remote service is unreachable or returns no campaigns. A fresh copy is
// returned on every call so callers can mutate their collection freely.
func SeedCampaigns() []Campaign {
	return []Campaign{
		{
			ID:               "1",
			Title:            "Help Build Clean Water Wells in Rural Communities",
			Description:      "Access to clean water is a basic human right, yet millions of people around the world still lack this essential resource. Our mission is to build sustainable water wells in rural communities across sub-Saharan Africa. Each well serves approximately 300 people and provides clean, safe drinking water for generations to come. Your donation will directly fund the drilling equipment, materials, and local training programs needed to maintain these vital water sources.",
			ShortDescription: "Building sustainable water wells in rural communities to provide clean drinking water for generations.",
			ImageURL:         "https://images.unsplash.com/photo-1594736797933-d0f06ba5719d?w=800&h=400&fit=crop",
			Goal:             25000,
			CurrentAmount:    18750,
			Category:         "Water & Sanitation",
			Deadline:         day(2025, time.February, 15),
			CreatedAt:        day(2024, time.December, 1),
			CreatedBy:        "WaterForAll Foundation",
			Featured:         true,
			Donors: []Donor{
				{ID: "1", Name: AnonymousName, Amount: 500, DonatedAt: day(2025, time.January, 20), Anonymous: true},
				{ID: "2", Name: "Sarah Johnson", Amount: 250, Message: "Happy to support this cause!", DonatedAt: day(2025, time.January, 19)},
				{ID: "3", Name: "Mike Chen", Amount: 1000, Message: "Clean water for all!", DonatedAt: day(2025, time.January, 18)},
				{ID: "4", Name: "Emma Davis", Amount: 100, DonatedAt: day(2025, time.January, 17)},
				{ID: "5", Name: AnonymousName, Amount: 750, DonatedAt: day(2025, time.January, 16), Anonymous: true},
			},
		},
		{
			ID:               "2",
			Title:            "Emergency Food Relief for Displaced Families",
			Description:      "Natural disasters and conflicts have displaced thousands of families, leaving them without access to basic necessities like food and shelter. Our emergency food relief program provides immediate assistance to those in need, delivering nutritious meals, clean water, and essential supplies directly to affected communities. Every dollar donated helps feed a family for a day and provides hope during their most challenging times.",
			ShortDescription: "Providing emergency food relief and essential supplies to displaced families in crisis.",
			ImageURL:         "https://images.unsplash.com/photo-1593113646773-028c64a8f1b8?w=800&h=400&fit=crop",
			Goal:             15000,
			CurrentAmount:    8900,
			Category:         "Emergency Relief",
			Deadline:         day(2025, time.January, 31),
			CreatedAt:        day(2024, time.December, 15),
			CreatedBy:        "Global Relief Network",
			Featured:         true,
			Donors: []Donor{
				{ID: "6", Name: "David Wilson", Amount: 300, Message: "Every family deserves food security", DonatedAt: day(2025, time.January, 25)},
				{ID: "7", Name: "Lisa Anderson", Amount: 150, DonatedAt: day(2025, time.January, 24)},
				{ID: "8", Name: AnonymousName, Amount: 500, DonatedAt: day(2025, time.January, 23), Anonymous: true},
			},
		},
		{
			ID:               "3",
			Title:            "Education Support for Underprivileged Children",
			Description:      "Education is the key to breaking the cycle of poverty. Our program provides school supplies, uniforms, and tuition assistance to children from low-income families. We believe every child deserves the opportunity to learn, grow, and build a better future. Your contribution will directly support students in their educational journey and help create lasting change in their communities.",
			ShortDescription: "Supporting education for underprivileged children with supplies, uniforms, and tuition assistance.",
			ImageURL:         "https://images.unsplash.com/photo-1497486751825-1233686d5d80?w=800&h=400&fit=crop",
			Goal:             20000,
			CurrentAmount:    12300,
			Category:         "Education",
			Deadline:         day(2025, time.March, 1),
			CreatedAt:        day(2024, time.November, 20),
			CreatedBy:        "Education For All",
			Donors: []Donor{
				{ID: "9", Name: "Jennifer Lee", Amount: 200, Message: "Education changes lives!", DonatedAt: day(2025, time.January, 22)},
				{ID: "10", Name: "Robert Taylor", Amount: 400, DonatedAt: day(2025, time.January, 21)},
			},
		},
		{
			ID:               "4",
			Title:            "Wildlife Conservation in Amazon Rainforest",
			Description:      "The Amazon rainforest is home to countless species of wildlife, many of which are endangered due to deforestation and climate change. Our conservation program works to protect critical habitats, support anti-poaching efforts, and conduct research to better understand and preserve these ecosystems. Your donation helps fund ranger patrols, research expeditions, and community education programs.",
			ShortDescription: "Protecting endangered wildlife and preserving critical Amazon rainforest habitats.",
			ImageURL:         "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&h=400&fit=crop",
			Goal:             30000,
			CurrentAmount:    15600,
			Category:         "Environment",
			Deadline:         day(2025, time.April, 15),
			CreatedAt:        day(2024, time.October, 1),
			CreatedBy:        "Amazon Conservation Alliance",
			Donors: []Donor{
				{ID: "11", Name: "Maria Rodriguez", Amount: 350, Message: "Save the rainforest!", DonatedAt: day(2025, time.January, 26)},
				{ID: "12", Name: AnonymousName, Amount: 1000, DonatedAt: day(2025, time.January, 25), Anonymous: true},
			},
		},
	}
}
