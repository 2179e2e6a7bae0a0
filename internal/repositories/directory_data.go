package repositories

import "roamio/internal/models/domain_models"

// destinationDirectory is the curated suggestion list. Order matters: the
// matcher returns hits in directory order, so popular destinations sit first
// within each country block.
var destinationDirectory = []domain_models.Location{
	{City: "Paris", Country: "France"},
	{City: "Nice", Country: "France"},
	{City: "Lyon", Country: "France"},
	{City: "Marseille", Country: "France"},
	{City: "Bordeaux", Country: "France"},
	{City: "Rome", Country: "Italy"},
	{City: "Venice", Country: "Italy"},
	{City: "Florence", Country: "Italy"},
	{City: "Milan", Country: "Italy"},
	{City: "Naples", Country: "Italy"},
	{City: "London", Country: "United Kingdom"},
	{City: "Edinburgh", Country: "United Kingdom"},
	{City: "Manchester", Country: "United Kingdom"},
	{City: "Barcelona", Country: "Spain"},
	{City: "Madrid", Country: "Spain"},
	{City: "Seville", Country: "Spain"},
	{City: "Valencia", Country: "Spain"},
	{City: "Lisbon", Country: "Portugal"},
	{City: "Porto", Country: "Portugal"},
	{City: "Amsterdam", Country: "Netherlands"},
	{City: "Rotterdam", Country: "Netherlands"},
	{City: "Berlin", Country: "Germany"},
	{City: "Munich", Country: "Germany"},
	{City: "Hamburg", Country: "Germany"},
	{City: "Vienna", Country: "Austria"},
	{City: "Salzburg", Country: "Austria"},
	{City: "Prague", Country: "Czech Republic"},
	{City: "Budapest", Country: "Hungary"},
	{City: "Athens", Country: "Greece"},
	{City: "Santorini", Country: "Greece"},
	{City: "Istanbul", Country: "Turkey"},
	{City: "Dubrovnik", Country: "Croatia"},
	{City: "Zurich", Country: "Switzerland"},
	{City: "Geneva", Country: "Switzerland"},
	{City: "Copenhagen", Country: "Denmark"},
	{City: "Stockholm", Country: "Sweden"},
	{City: "Oslo", Country: "Norway"},
	{City: "Reykjavik", Country: "Iceland"},
	{City: "Dublin", Country: "Ireland"},
	{City: "New York", Country: "United States"},
	{City: "Los Angeles", Country: "United States"},
	{City: "San Francisco", Country: "United States"},
	{City: "Chicago", Country: "United States"},
	{City: "Miami", Country: "United States"},
	{City: "Toronto", Country: "Canada"},
	{City: "Vancouver", Country: "Canada"},
	{City: "Montreal", Country: "Canada"},
	{City: "Mexico City", Country: "Mexico"},
	{City: "Cancun", Country: "Mexico"},
	{City: "Rio de Janeiro", Country: "Brazil"},
	{City: "Buenos Aires", Country: "Argentina"},
	{City: "Lima", Country: "Peru"},
	{City: "Tokyo", Country: "Japan"},
	{City: "Kyoto", Country: "Japan"},
	{City: "Osaka", Country: "Japan"},
	{City: "Seoul", Country: "South Korea"},
	{City: "Beijing", Country: "China"},
	{City: "Shanghai", Country: "China"},
	{City: "Hong Kong", Country: "China"},
	{City: "Bangkok", Country: "Thailand"},
	{City: "Chiang Mai", Country: "Thailand"},
	{City: "Phuket", Country: "Thailand"},
	{City: "Hanoi", Country: "Vietnam"},
	{City: "Ho Chi Minh City", Country: "Vietnam"},
	{City: "Da Nang", Country: "Vietnam"},
	{City: "Singapore", Country: "Singapore"},
	{City: "Kuala Lumpur", Country: "Malaysia"},
	{City: "Bali", Country: "Indonesia"},
	{City: "Jakarta", Country: "Indonesia"},
	{City: "Mumbai", Country: "India"},
	{City: "New Delhi", Country: "India"},
	{City: "Jaipur", Country: "India"},
	{City: "Dubai", Country: "United Arab Emirates"},
	{City: "Abu Dhabi", Country: "United Arab Emirates"},
	{City: "Tel Aviv", Country: "Israel"},
	{City: "Cairo", Country: "Egypt"},
	{City: "Marrakech", Country: "Morocco"},
	{City: "Cape Town", Country: "South Africa"},
	{City: "Nairobi", Country: "Kenya"},
	{City: "Sydney", Country: "Australia"},
	{City: "Melbourne", Country: "Australia"},
	{City: "Brisbane", Country: "Australia"},
	{City: "Auckland", Country: "New Zealand"},
	{City: "Queenstown", Country: "New Zealand"},
}
