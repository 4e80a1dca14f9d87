package api

// Common response structures. Every payload is a flat record created,
// serialized, and discarded within a single request.

// MessageResponse defines the greeting returned by the root endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// BMIResponse defines the successful response for the BMI endpoint.
type BMIResponse struct {
	BMI float64 `json:"bmi"`
}

// CaloriesResponse defines the successful response for the calories endpoint.
type CaloriesResponse struct {
	CaloriesBurned float64 `json:"calories_burned"`
}

// HydrationResponse defines the successful response for the hydration endpoint.
type HydrationResponse struct {
	Status string `json:"status"`
	Advice string `json:"advice"`
}

// SleepScoreResponse defines the successful response for the sleep-score endpoint.
type SleepScoreResponse struct {
	Score  int    `json:"score"`
	Status string `json:"status"`
}

// WeatherResponse defines the successful response for the weather endpoint.
type WeatherResponse struct {
	City        string  `json:"city"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
}

// CompletionResponse defines the successful response for the ask-openai endpoint.
type CompletionResponse struct {
	Response string `json:"response"`
}
