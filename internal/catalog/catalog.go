package catalog

// Catalog is an immutable, ordered list of questions. Question IDs are
// contiguous and match their position.
type Catalog struct {
	questions []Question
}

// New validates questions and returns a Catalog holding a private copy.
func New(questions []Question) (*Catalog, error) {
	if err := validateQuestions(questions); err != nil {
		return nil, err
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	return &Catalog{questions: qs}, nil
}

// Get returns the question at index.
func (c *Catalog) Get(index int) (Question, error) {
	if index < 0 || index >= len(c.questions) {
		return Question{}, &OutOfBoundsError{Index: index, Len: len(c.questions)}
	}
	return c.questions[index], nil
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}

// First returns the opening question. A valid catalog is never empty.
func (c *Catalog) First() Question {
	return c.questions[0]
}

// All returns a copy of every question in catalog order.
func (c *Catalog) All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}
