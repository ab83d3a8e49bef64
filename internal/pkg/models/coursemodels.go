package models

// ClassQuery identifies one course in one term, e.g. CSE 476 in 2257.
type ClassQuery struct {
	Subject       string `json:"subject"`
	CatalogNumber string `json:"catalogNbr"`
	Term          string `json:"term"`
}

// ClassName renders the query back as "SUBJECT NUMBER".
func (q ClassQuery) ClassName() string {
	return q.Subject + " " + q.CatalogNumber
}

type Status string

const (
	StatusOpen Status = "OPEN"
	StatusFull Status = "FULL"
)

// ClassSummary is the display view of one section.
type ClassSummary struct {
	ClassName            string `json:"className"`
	ClassNumber          string `json:"classNumber"`
	Title                string `json:"title"`
	Status               Status `json:"status"`
	Seats                string `json:"seats"`
	Instructor           string `json:"instructor"`
	Schedule             string `json:"schedule"`
	ScheduleAbbreviation string `json:"scheduleAbbreviation"`
}

// SearchResponse is the catalog search payload.
type SearchResponse struct {
	Classes []ClassWrapper `json:"classes"`
}

type ClassWrapper struct {
	CLAS RawClassRecord `json:"CLAS"`
}
