package domain

// Stats summarizes the vocabulary collection
type Stats struct {
	Layers        int
	Words         int
	LargestLayer  string
	LargestSize   int
	ActiveSession *GameSession
}
