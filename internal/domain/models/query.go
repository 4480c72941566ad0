package models

// Flag values are kept as strings because they are embedded into the query string as is.
const (
	FlagTrue  = "true"
	FlagFalse = "false"
)

type QueryParameters struct {
	Skills   []string
	Budget   string
	PartTime string
	FullTime string
}

func NewQueryParameters() QueryParameters {
	return QueryParameters{
		Skills:   []string{},
		Budget:   "",
		PartTime: FlagFalse,
		FullTime: FlagFalse,
	}
}
