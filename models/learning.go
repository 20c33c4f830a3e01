package models

// LearningPath is one suggested route through a list's resources.
type LearningPath struct {
	Name               string   `json:"path_name" yaml:"path_name"`
	Difficulty         string   `json:"difficulty" yaml:"difficulty"`
	EstimatedHours     float64  `json:"estimated_hours" yaml:"estimated_hours"`
	ResourcesCount     int      `json:"resources_count" yaml:"resources_count"`
	Prerequisites      []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
	LearningObjectives []string `json:"learning_objectives,omitempty" yaml:"learning_objectives,omitempty"`
}

// TimeCommitment estimates the effort a list represents assuming a
// fixed weekly study budget.
type TimeCommitment struct {
	TotalHours     float64 `json:"total_hours" yaml:"total_hours"`
	WeeklyHours    float64 `json:"weekly_hours" yaml:"weekly_hours"`
	EstimatedWeeks float64 `json:"estimated_weeks" yaml:"estimated_weeks"`
	Duration       string  `json:"duration" yaml:"duration"`
}

// LearningGuidance is the synthesized study plan attached to an agent
// result.
type LearningGuidance struct {
	Paths          []LearningPath  `json:"learning_paths" yaml:"learning_paths"`
	Guidance       string          `json:"guidance" yaml:"guidance"`
	TimeCommitment *TimeCommitment `json:"time_commitment,omitempty" yaml:"time_commitment,omitempty"`
}
