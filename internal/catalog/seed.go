package catalog

func strPtr(s string) *string {
	return &s
}

var seedTypes = []TrainingType{
	{ID: 1, Name: "Cardio"},
	{ID: 2, Name: "Leg"},
	{ID: 3, Name: "Arm"},
	{ID: 4, Name: "Chest"},
	{ID: 5, Name: "Back"},
	{ID: 6, Name: "Abdomen"},
}

var seedDifficulties = []Difficulty{
	{ID: 1, Name: "Easy"},
	{ID: 2, Name: "Medium"},
	{ID: 3, Name: "Hard"},
}

// type ids refer to seedTypes
var seedExercises = []struct {
	ID     int
	Name   string
	TypeID int
	Unit   *string
}{
	// cardio
	{ID: 1, Name: "Walk", TypeID: 1, Unit: strPtr("metre")},
	{ID: 2, Name: "Walk", TypeID: 1, Unit: strPtr("second")},
	{ID: 3, Name: "Run", TypeID: 1, Unit: strPtr("metre")},
	{ID: 4, Name: "Run", TypeID: 1, Unit: strPtr("second")},
	{ID: 5, Name: "Jumping jacks", TypeID: 1},
	// leg
	{ID: 20, Name: "Squat", TypeID: 2},
	{ID: 21, Name: "Lunge", TypeID: 2},
	{ID: 22, Name: "Deadlift", TypeID: 2},
	// arm
	{ID: 30, Name: "Bicep curl", TypeID: 3},
	{ID: 31, Name: "Hammer curl", TypeID: 3},
	{ID: 40, Name: "Tricep dips", TypeID: 3},
	{ID: 41, Name: "Close grip push up", TypeID: 3},
	{ID: 42, Name: "Push-down", TypeID: 3},
	{ID: 50, Name: "Lateral raise", TypeID: 3},
	{ID: 51, Name: "Front raise", TypeID: 3},
	{ID: 52, Name: "Arnold press", TypeID: 3},
	// chest
	{ID: 60, Name: "Push up", TypeID: 4},
	{ID: 61, Name: "Bench press", TypeID: 4},
	{ID: 62, Name: "Fly", TypeID: 4},
	// back
	{ID: 70, Name: "Pull-down", TypeID: 5},
	{ID: 71, Name: "Pull-up", TypeID: 5},
	{ID: 72, Name: "Bent-over row", TypeID: 5},
	// abdomen
	{ID: 80, Name: "Crunch", TypeID: 6},
	{ID: 81, Name: "Bicycle crunch", TypeID: 6},
	{ID: 82, Name: "Plank", TypeID: 6},
}
