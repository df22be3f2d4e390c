package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SuggestionStatus string

func (s SuggestionStatus) String() string {
	return string(s)
}

func (s SuggestionStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusApproved, SuggestionStatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s SuggestionStatus) IsTerminal() bool {
	return s == SuggestionStatusApproved || s == SuggestionStatusRejected
}

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"

	AnonymousUsername = "anonymous"
)

type Suggestion struct {
	tableName struct{} `pg:"courses_suggestions"`

	ID               int64            `json:"id" pg:",pk"`
	Name             string           `json:"name" pg:",notnull"`
	Description      string           `json:"description" pg:",notnull,use_zero"`
	ProposerUsername string           `json:"proposer_username" pg:",notnull"`
	Status           SuggestionStatus `json:"status" pg:",notnull"`
	Votes            int              `json:"votes" pg:",notnull,use_zero"`
	CreatedAt        time.Time        `json:"created_at" pg:",notnull"`
	UpdatedAt        time.Time        `json:"updated_at" pg:",notnull"`
}
