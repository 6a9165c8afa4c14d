package domain

const (
	// OptionsCount is the number of answer choices in every question
	OptionsCount = 4
	// FillerOption pads the choices when the pool has too few distractors
	FillerOption = "FakeWord"
)

// Question is a single multiple-choice quiz item
type Question struct {
	WordID  int64
	Prompt  string
	Answer  string
	Options []string
}
