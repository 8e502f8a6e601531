package refdata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dharmasatrya/travelsim/internal/refdata/data"
)

// UnknownName is returned for codes missing from a lookup table.
const UnknownName = "Unknown"

var ErrInvalidData = errors.New("invalid reference data")

// Brand is a carrier or hotel chain: a display name with its short code.
type Brand struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// FlightData holds the tables the flight simulator draws from.
type FlightData struct {
	Airports      map[string]string
	Airlines      []Brand
	AircraftTypes []string
	FlightClasses []string
}

// HotelData holds the tables the hotel simulator draws from.
type HotelData struct {
	Cities      map[string]string
	HotelChains []Brand
	RoomTypes   []string
	Amenities   []string
}

type flightFile struct {
	Airports      map[string]string `yaml:"airports"`
	Airlines      [][]string        `yaml:"airlines"`
	AircraftTypes []string          `yaml:"aircraft_types"`
	FlightClasses []string          `yaml:"flight_classes"`
}

type hotelFile struct {
	Cities      map[string]string `yaml:"cities"`
	HotelChains [][]string        `yaml:"hotel_chains"`
	RoomTypes   []string          `yaml:"room_types"`
	Amenities   []string          `yaml:"amenities"`
}

// AirportCity resolves an airport code to its city name.
func (d *FlightData) AirportCity(code string) string {
	return lookup(d.Airports, code)
}

// CityName resolves a city code to its display name.
func (d *HotelData) CityName(code string) string {
	return lookup(d.Cities, code)
}

func lookup(m map[string]string, code string) string {
	if name, ok := m[strings.ToUpper(code)]; ok {
		return name
	}
	return UnknownName
}

// DefaultFlightData returns the tables bundled with the binary.
func DefaultFlightData() (*FlightData, error) {
	return ParseFlightData(data.AirlineData)
}

// DefaultHotelData returns the tables bundled with the binary.
func DefaultHotelData() (*HotelData, error) {
	return ParseHotelData(data.HotelData)
}

// LoadFlightData reads flight tables from a JSON or YAML file.
// An empty path falls back to the bundled tables.
func LoadFlightData(path string) (*FlightData, error) {
	if path == "" {
		return DefaultFlightData()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read flight data: %w", err)
	}
	return ParseFlightData(b)
}

// LoadHotelData reads hotel tables from a JSON or YAML file.
// An empty path falls back to the bundled tables.
func LoadHotelData(path string) (*HotelData, error) {
	if path == "" {
		return DefaultHotelData()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read hotel data: %w", err)
	}
	return ParseHotelData(b)
}

func ParseFlightData(b []byte) (*FlightData, error) {
	var f flightFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	airlines, err := toBrands("airlines", f.Airlines)
	if err != nil {
		return nil, err
	}

	switch {
	case len(f.Airports) == 0:
		return nil, fmt.Errorf("%w: airports is empty", ErrInvalidData)
	case len(f.AircraftTypes) == 0:
		return nil, fmt.Errorf("%w: aircraft_types is empty", ErrInvalidData)
	case len(f.FlightClasses) == 0:
		return nil, fmt.Errorf("%w: flight_classes is empty", ErrInvalidData)
	}

	return &FlightData{
		Airports:      upperKeys(f.Airports),
		Airlines:      airlines,
		AircraftTypes: f.AircraftTypes,
		FlightClasses: f.FlightClasses,
	}, nil
}

func ParseHotelData(b []byte) (*HotelData, error) {
	var f hotelFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidData, err)
	}

	chains, err := toBrands("hotel_chains", f.HotelChains)
	if err != nil {
		return nil, err
	}

	switch {
	case len(f.Cities) == 0:
		return nil, fmt.Errorf("%w: cities is empty", ErrInvalidData)
	case len(f.RoomTypes) == 0:
		return nil, fmt.Errorf("%w: room_types is empty", ErrInvalidData)
	case len(f.Amenities) == 0:
		return nil, fmt.Errorf("%w: amenities is empty", ErrInvalidData)
	}

	return &HotelData{
		Cities:      upperKeys(f.Cities),
		HotelChains: chains,
		RoomTypes:   f.RoomTypes,
		Amenities:   f.Amenities,
	}, nil
}

// toBrands converts [name, code] pairs.
func toBrands(field string, pairs [][]string) ([]Brand, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", ErrInvalidData, field)
	}
	brands := make([]Brand, 0, len(pairs))
	for i, p := range pairs {
		if len(p) != 2 || p[0] == "" || p[1] == "" {
			return nil, fmt.Errorf("%w: %s[%d] must be a [name, code] pair", ErrInvalidData, field, i)
		}
		brands = append(brands, Brand{Name: p[0], Code: p[1]})
	}
	return brands, nil
}

func upperKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[strings.ToUpper(k)] = v
	}
	return out
}
