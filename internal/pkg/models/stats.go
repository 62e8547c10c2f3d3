package models

// SystemStats is the platform-wide aggregate view
type SystemStats struct {
	TotalUsers          int     `json:"totalUsers"`
	TotalPickups        int     `json:"totalPickups"`
	CompletedPickups    int     `json:"completedPickups"`
	PendingPickups      int     `json:"pendingPickups"`
	TotalWeightRecycled float64 `json:"totalWeightRecycled"`
	TotalDonations      int     `json:"totalDonations"`
	PendingDonations    int     `json:"pendingDonations"`
	AcceptedDonations   int     `json:"acceptedDonations"`
}

// UserStats is the per-user aggregate view. CO2Saved is a fixed linear
// multiple of the recycled weight, an estimate rather than measured data.
type UserStats struct {
	TotalPickups        int     `json:"totalPickups"`
	CompletedPickups    int     `json:"completedPickups"`
	TotalWeightRecycled float64 `json:"totalWeightRecycled"`
	CO2Saved            float64 `json:"co2Saved"`
	TotalDonations      int     `json:"totalDonations"`
	AcceptedDonations   int     `json:"acceptedDonations"`
}

// CollectorStats is the per-collector aggregate view
type CollectorStats struct {
	RoutesCompleted  int     `json:"routesCompleted"`
	ActiveRoutes     int     `json:"activeRoutes"`
	TotalRoutes      int     `json:"totalRoutes"`
	PickupsCompleted int     `json:"pickupsCompleted"`
	DistanceTraveled float64 `json:"distanceTraveled"`
}
