package catalog

// seedQuestions is the built-in Python basics quiz.
var seedQuestions = []Question{
	{ID: 0, Text: "Which keyword defines a function in Python?", CorrectAnswer: "def"},
	{ID: 1, Text: "Which built-in function returns the number of items in a list?", CorrectAnswer: "len"},
	{ID: 2, Text: "What does 3 ** 2 evaluate to?", CorrectAnswer: "9"},
	{ID: 3, Text: "Which keyword starts a block that catches exceptions together with except?", CorrectAnswer: "try"},
	{ID: 4, Text: "What does a function return when it has no return statement?", CorrectAnswer: "None"},
	{ID: 5, Text: "Which built-in type is immutable: list or tuple?", CorrectAnswer: "tuple"},
	{ID: 6, Text: "Which statement exits the nearest enclosing loop?", CorrectAnswer: "break"},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	cat, err := New(seedQuestions)
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return cat
}
