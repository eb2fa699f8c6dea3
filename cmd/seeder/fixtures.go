package main

type roomFixture struct {
	roomType string
	price    float64
	capacity int
}

type hotelFixture struct {
	name          string
	address       string
	city          string
	country       string
	description   string
	pricePerNight float64
	images        []string
	rooms         []roomFixture
}

var hotelFixtures = []hotelFixture{
	{
		name:          "Riverside Grand",
		address:       "12 Quay Street",
		city:          "Da Nang",
		country:       "Vietnam",
		description:   "River-view rooms a short walk from the Dragon Bridge.",
		pricePerNight: 120,
		images: []string{
			"https://img.staybook.local/riverside-grand/main.jpg",
			"https://img.staybook.local/riverside-grand/lobby.jpg",
		},
		rooms: []roomFixture{
			{roomType: "Standard Double", price: 100, capacity: 2},
			{roomType: "Family Suite", price: 180, capacity: 4},
		},
	},
	{
		name:          "Old Quarter Boutique",
		address:       "58 Hang Bac",
		city:          "Hanoi",
		country:       "Vietnam",
		description:   "Small boutique hotel in the heart of the Old Quarter.",
		pricePerNight: 85,
		images: []string{
			"https://img.staybook.local/old-quarter/main.jpg",
		},
		rooms: []roomFixture{
			{roomType: "Classic Queen", price: 85, capacity: 2},
			{roomType: "Balcony King", price: 110, capacity: 2},
			{roomType: "Triple", price: 130, capacity: 3},
		},
	},
	{
		name:          "Saigon Skyline",
		address:       "200 Le Loi",
		city:          "Ho Chi Minh City",
		country:       "Vietnam",
		description:   "High-rise hotel with rooftop pool and skyline views.",
		pricePerNight: 150,
		images: []string{
			"https://img.staybook.local/saigon-skyline/main.jpg",
			"https://img.staybook.local/saigon-skyline/pool.jpg",
			"https://img.staybook.local/saigon-skyline/room.jpg",
		},
		rooms: []roomFixture{
			{roomType: "Deluxe King", price: 150, capacity: 2},
			{roomType: "Executive Suite", price: 260, capacity: 3},
		},
	},
	{
		name:          "Beachfront Pearl",
		address:       "5 Tran Phu",
		city:          "Nha Trang",
		country:       "Vietnam",
		description:   "Steps from the beach, breakfast included.",
		pricePerNight: 95,
		images: []string{
			"https://img.staybook.local/beachfront-pearl/main.jpg",
		},
		rooms: []roomFixture{
			{roomType: "Sea View Double", price: 95, capacity: 2},
			{roomType: "Garden Bungalow", price: 140, capacity: 4},
		},
	},
}
