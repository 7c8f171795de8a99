package models

// WordItem is a single vocabulary card: the word and its short definition.
type WordItem struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

// Option is one answer choice of a unit question, labeled A through D.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Question is a fill-in-the-blank sentence with four options and the label
// of the correct one.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
	Answer  string   `json:"answer"`
}

// Unit is a graded block of questions. Unit ids key UserRecord.UnitProgress.
type Unit struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}
