package model

// Warning is a legal but suspicious construct. It never blocks a badge.
type Warning struct {
	Location Location
	Title    string
}

// Error is a contract violation. A badge carrying one is not acquired.
type Error struct {
	Location Location
	Title    string
}
