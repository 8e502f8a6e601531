package data

import _ "embed"

//go:embed airline_data.json
var AirlineData []byte

//go:embed hotel_data.json
var HotelData []byte
