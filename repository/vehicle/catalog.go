package vehicle

import "github.com/sharma2rachit/zenith-rental/model"

// seedFleet is the demo fleet. A real deployment would load this from an
// inventory system; the storefront ships with a fixed catalog.
func seedFleet() []model.Vehicle {
	return []model.Vehicle{
		{
			ID: 1, Name: "Toyota Camry", Category: "Mid-size", DailyPrice: 45,
			Rating: 4.8, Reviews: 124,
			Specs:    model.VehicleSpecs{Passengers: 5, Transmission: "Automatic", Fuel: "Hybrid", Doors: 4, Luggage: 3},
			Features: []string{"GPS Navigation", "Bluetooth", "Air Conditioning", "Cruise Control"},
			Badge:    "Popular", Description: "Comfortable and fuel-efficient sedan perfect for business trips and city driving.",
			Location: "New York", Available: true,
		},
		{
			ID: 2, Name: "Nissan Versa", Category: "Economy", DailyPrice: 28,
			Rating: 4.6, Reviews: 89,
			Specs:    model.VehicleSpecs{Passengers: 5, Transmission: "Automatic", Fuel: "Gasoline", Doors: 4, Luggage: 2},
			Features: []string{"Air Conditioning", "Bluetooth", "USB Ports", "Power Windows"},
			Badge:    "Best Value", Description: "Affordable and reliable car ideal for short trips and budget-conscious travelers.",
			Location: "Los Angeles", Available: true,
		},
		{
			ID: 3, Name: "Chevrolet Tahoe", Category: "Full-size SUV", DailyPrice: 75,
			Rating: 4.7, Reviews: 156,
			Specs:    model.VehicleSpecs{Passengers: 8, Transmission: "Automatic", Fuel: "Gasoline", Doors: 4, Luggage: 5},
			Features: []string{"4WD", "Premium Sound", "Captain's Chairs", "Rear Entertainment"},
			Badge:    "Family Friendly", Description: "Spacious SUV perfect for family vacations and group travel with premium comfort.",
			Location: "Miami", Available: true,
		},
		{
			ID: 4, Name: "Honda Civic", Category: "Compact", DailyPrice: 32,
			Rating: 4.5, Reviews: 203,
			Specs:    model.VehicleSpecs{Passengers: 5, Transmission: "Manual", Fuel: "Gasoline", Doors: 4, Luggage: 2},
			Features: []string{"Bluetooth", "Air Conditioning", "USB Ports", "Backup Camera"},
			Badge:    "Manual", Description: "Sporty compact car with excellent fuel economy and responsive handling.",
			Location: "Chicago", Available: true,
		},
		{
			ID: 5, Name: "Ford Mustang", Category: "Sports", DailyPrice: 95,
			Rating: 4.9, Reviews: 87,
			Specs:    model.VehicleSpecs{Passengers: 4, Transmission: "Automatic", Fuel: "Premium", Doors: 2, Luggage: 1},
			Features: []string{"Premium Sound", "Sport Mode", "Leather Seats", "Performance Tires"},
			Badge:    "Premium", Description: "Iconic American muscle car delivering thrilling performance and head-turning style.",
			Location: "Las Vegas", Available: true,
		},
		{
			ID: 6, Name: "Toyota RAV4", Category: "Compact SUV", DailyPrice: 58,
			Rating: 4.7, Reviews: 178,
			Specs:    model.VehicleSpecs{Passengers: 5, Transmission: "Automatic", Fuel: "Hybrid", Doors: 4, Luggage: 3},
			Features: []string{"AWD", "Safety Sense", "Apple CarPlay", "Heated Seats"},
			Badge:    "All-Weather", Description: "Versatile compact SUV with excellent fuel economy and all-weather capability.",
			Location: "Seattle", Available: false,
		},
	}
}
