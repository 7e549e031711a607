package models

// Exercise is a single movement inside a workout template.
type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      string `json:"reps"`
	Rest      string `json:"rest"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
}

// Workout is a training template browsable from the workouts view.
type Workout struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Level     string     `json:"level"`
	Duration  string     `json:"duration"`
	Category  string     `json:"category"`
	Exercises []Exercise `json:"exercises"`
}
