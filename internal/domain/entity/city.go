package entity

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// City is a selectable city scope.
type City struct {
	Name      string  `json:"name"`
	State     string  `json:"state"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the city centre as an orb point (lon, lat).
func (c City) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// NearestCity returns the city closest to (lat, lon) by great-circle distance, with the distance in meters.
// ok is false when cities is empty.
func NearestCity(cities []City, lat, lon float64) (nearest City, distanceMeters float64, ok bool) {
	origin := orb.Point{lon, lat}
	best := math.MaxFloat64
	for _, city := range cities {
		d := geo.Distance(origin, city.Point())
		if d < best {
			best = d
			nearest = city
			ok = true
		}
	}

	if !ok {
		return City{}, 0, false
	}

	return nearest, best, true
}

// DefaultCities seeds the cities table.
var DefaultCities = []City{
	{Name: "Mumbai", State: "Maharashtra", Latitude: 19.0760, Longitude: 72.8777},
	{Name: "Delhi", State: "Delhi", Latitude: 28.6139, Longitude: 77.2090},
	{Name: "Bangalore", State: "Karnataka", Latitude: 12.9716, Longitude: 77.5946},
	{Name: "Hyderabad", State: "Telangana", Latitude: 17.3850, Longitude: 78.4867},
	{Name: "Chennai", State: "Tamil Nadu", Latitude: 13.0827, Longitude: 80.2707},
	{Name: "Kolkata", State: "West Bengal", Latitude: 22.5726, Longitude: 88.3639},
	{Name: "Pune", State: "Maharashtra", Latitude: 18.5204, Longitude: 73.8567},
	{Name: "Ahmedabad", State: "Gujarat", Latitude: 23.0225, Longitude: 72.5714},
	{Name: "Jaipur", State: "Rajasthan", Latitude: 26.9124, Longitude: 75.7873},
	{Name: "Surat", State: "Gujarat", Latitude: 21.1702, Longitude: 72.8311},
	{Name: "Lucknow", State: "Uttar Pradesh", Latitude: 26.8467, Longitude: 80.9462},
	{Name: "Kanpur", State: "Uttar Pradesh", Latitude: 26.4499, Longitude: 80.3319},
	{Name: "Nagpur", State: "Maharashtra", Latitude: 21.1458, Longitude: 79.0882},
	{Name: "Indore", State: "Madhya Pradesh", Latitude: 22.7196, Longitude: 75.8577},
	{Name: "Bhopal", State: "Madhya Pradesh", Latitude: 23.2599, Longitude: 77.4126},
	{Name: "Visakhapatnam", State: "Andhra Pradesh", Latitude: 17.6868, Longitude: 83.2185},
	{Name: "Vadodara", State: "Gujarat", Latitude: 22.3072, Longitude: 73.1812},
	{Name: "Ludhiana", State: "Punjab", Latitude: 30.9010, Longitude: 75.8573},
	{Name: "Agra", State: "Uttar Pradesh", Latitude: 27.1767, Longitude: 78.0081},
	{Name: "Nashik", State: "Maharashtra", Latitude: 19.9975, Longitude: 73.7898},
	{Name: "Faridabad", State: "Haryana", Latitude: 28.4089, Longitude: 77.3178},
	{Name: "Ghaziabad", State: "Uttar Pradesh", Latitude: 28.6692, Longitude: 77.4538},
	{Name: "Coimbatore", State: "Tamil Nadu", Latitude: 11.0168, Longitude: 76.9558},
	{Name: "Madurai", State: "Tamil Nadu", Latitude: 9.9252, Longitude: 78.1198},
	{Name: "Kochi", State: "Kerala", Latitude: 9.9312, Longitude: 76.2673},
	{Name: "Jodhpur", State: "Rajasthan", Latitude: 26.2389, Longitude: 73.0243},
	{Name: "Guwahati", State: "Assam", Latitude: 26.1445, Longitude: 91.7362},
	{Name: "Chandigarh", State: "Chandigarh", Latitude: 30.7333, Longitude: 76.7794},
	{Name: "Thiruvananthapuram", State: "Kerala", Latitude: 8.5241, Longitude: 76.9366},
	{Name: "Mysore", State: "Karnataka", Latitude: 12.2958, Longitude: 76.6394},
	{Name: "Gurgaon", State: "Haryana", Latitude: 28.4595, Longitude: 77.0266},
	{Name: "Jalandhar", State: "Punjab", Latitude: 31.3260, Longitude: 75.5762},
	{Name: "Bhubaneswar", State: "Odisha", Latitude: 20.2961, Longitude: 85.8245},
	{Name: "Salem", State: "Tamil Nadu", Latitude: 11.6643, Longitude: 78.1460},
}
