package main

//**********************************************************
// requests
//**********************************************************

// Route between two explicit coordinates or between the centroids of
// two selected buildings. Buildings win when both are given.
type RouteRequest struct {
	Start     []float64 `json:"start"`
	End       []float64 `json:"end"`
	Buildings []string  `json:"buildings"`
}

type SelectionRequest struct {
	Selected []string `json:"selected"`
}
