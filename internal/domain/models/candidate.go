package models

type Candidate struct {
	Name                   string   `json:"name"`
	Country                *string  `json:"country"`
	Availability           string   `json:"availability"`
	Skills                 []string `json:"skills"`
	PartTimeSalaryCurrency string   `json:"partTimeSalaryCurrency"`
	PartTimeSalary         string   `json:"partTimeSalary"`
	FullTimeSalaryCurrency string   `json:"fullTimeSalaryCurrency"`
	FullTimeSalary         string   `json:"fullTimeSalary"`
}

func (c Candidate) HasPartTimeSalary() bool {
	return c.PartTimeSalary != ""
}

func (c Candidate) HasFullTimeSalary() bool {
	return c.FullTimeSalary != ""
}
