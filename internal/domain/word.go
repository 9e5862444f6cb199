package domain

// Word represents an original-translation pair owned by a layer
type Word struct {
	ID          string `json:"id"`
	Original    string `json:"original"`
	Translation string `json:"translation"`
}
