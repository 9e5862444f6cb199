package domain

import "time"

// Layer is a named, ordered collection of words
type Layer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Words     []Word    `json:"words"`
	CreatedAt time.Time `json:"createdAt"`
}

// Clone returns a deep copy of the layer
func (l Layer) Clone() Layer {
	words := make([]Word, len(l.Words))
	copy(words, l.Words)
	l.Words = words
	return l
}

// WordIndex returns position of the word with given id, or -1
func (l Layer) WordIndex(wordID string) int {
	for i, w := range l.Words {
		if w.ID == wordID {
			return i
		}
	}
	return -1
}

// CreatedString returns user-friendly creation date
func (l Layer) CreatedString(now time.Time) string {
	date := l.CreatedAt.In(now.Location())

	if sameDay(date, now) {
		return "Today"
	}

	if sameDay(date, now.AddDate(0, 0, -1)) {
		return "Yesterday"
	}

	return date.Format("2 Jan 2006")
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
