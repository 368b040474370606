package datastructure

import "encoding/json"

type Coordinate struct {
	lat float64
	lon float64
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lon() float64 {
	return c.lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		lat: lat,
		lon: lon,
	}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

type coordinateJSON struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinateJSON{Lat: c.lat, Lon: c.lon})
}

func (c *Coordinate) UnmarshalJSON(buf []byte) error {
	var cj coordinateJSON
	if err := json.Unmarshal(buf, &cj); err != nil {
		return err
	}
	c.lat = cj.Lat
	c.lon = cj.Lon
	return nil
}
