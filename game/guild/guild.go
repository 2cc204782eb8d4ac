package guild

// Member is one roster entry of a loaded guild. Level and Online come
// from live data when the member is connected, otherwise from the last
// persisted character row.
type Member struct {
	Name   string
	Rank   int
	Level  int
	Online bool
}

// Guild is the in-memory guild aggregate: info row plus roster.
type Guild struct {
	Name    string
	Notice  string
	Members []Member
}
