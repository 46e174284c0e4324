package dto

import (
	"bytes"
	"encoding/json"

	"guruvela-be/pkg/prediction"
)

// RankValue accepts a rank sent either as a JSON number or as a string.
type RankValue string

func (r *RankValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RankValue(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	*r = RankValue(data)
	return nil
}

type JosaaPredictRequest struct {
	Rank        RankValue `json:"rank"`
	ExamType    string    `json:"exam_type" validate:"required,oneof='JEE Main' 'JEE Advanced'"`
	Category    string    `json:"category" validate:"required"`
	Quota       string    `json:"quota" validate:"omitempty,oneof=AI HS OS GO"`
	Gender      string    `json:"gender"`
	Preparatory bool      `json:"preparatory"`
	State       string    `json:"state"`
}

type CsabPredictRequest struct {
	Rank     RankValue `json:"rank"`
	Category string    `json:"category" validate:"required"`
	Quota    string    `json:"quota" validate:"omitempty,oneof=OS HS GO"`
	Gender   string    `json:"gender"`
	State    string    `json:"state"`
}

type PredictResponse struct {
	Year    int                 `json:"year"`
	Round   int                 `json:"round"`
	Count   int                 `json:"count"`
	Message string              `json:"message,omitempty"`
	Results []prediction.Record `json:"results"`
}
