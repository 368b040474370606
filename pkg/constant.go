package pkg

const (
	EARTH_RADIUS_KM   = 6371.0
	TARGET_SPACING_KM = 100.0

	// latitudes this close to a pole produce degenerate longitude rings
	POLE_EPSILON_DEG = 0.001
	MIN_COS_LATITUDE = 1e-6

	DEFAULT_DATASET_URL = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json"

	FETCH_MAX_ATTEMPTS = 3
)
