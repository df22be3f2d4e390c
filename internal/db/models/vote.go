package models

import "time"

type Vote struct {
	tableName struct{} `pg:"votes"`

	ID            int64     `json:"id" pg:",pk"`
	SuggestionID  int64     `json:"suggestion_id" pg:",notnull"`
	VoterUsername string    `json:"voter_username" pg:",notnull"`
	CreatedAt     time.Time `json:"created_at" pg:",notnull"`
}
