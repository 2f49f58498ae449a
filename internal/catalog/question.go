package catalog

import "fmt"

// Question is a single quiz question with its expected answer.
type Question struct {
	ID            int    `json:"id" yaml:"id"`
	Text          string `json:"question" yaml:"question"`
	CorrectAnswer string `json:"correct_answer" yaml:"correct_answer"`
}

// OutOfBoundsError is returned when the catalog is queried beyond its range.
type OutOfBoundsError struct {
	Index int
	Len   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("question index %d out of range [0, %d)", e.Index, e.Len)
}
