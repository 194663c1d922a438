package models

import (
	"time"

	"drawcast/domain/core"
	"drawcast/domain/draw"
)

// HistoricalDraw is one confirmed past draw as stored, with numbers and
// stars kept in the canonical "n1,..,n5;s1,s2" split across two columns.
type HistoricalDraw struct {
	ID        core.DrawID `json:"id" db:"id"`
	Date      time.Time   `json:"date" db:"draw_date"`
	Numbers   string      `json:"numbers" db:"numbers"`
	Stars     string      `json:"stars" db:"stars"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// Prediction is one stored guess for a date, later annotated with the
// actual outcome and a match score once the real draw is known.
type Prediction struct {
	ID               core.PredictionID `json:"id" db:"id"`
	Date             time.Time         `json:"date" db:"draw_date"`
	PredictedNumbers string            `json:"predicted_numbers" db:"predicted_numbers"`
	PredictedStars   string            `json:"predicted_stars" db:"predicted_stars"`
	ActualNumbers    *string           `json:"actual_numbers,omitempty" db:"actual_numbers"`
	ActualStars      *string           `json:"actual_stars,omitempty" db:"actual_stars"`
	Score            *string           `json:"score,omitempty" db:"score"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	ScoredAt         *time.Time        `json:"scored_at,omitempty" db:"scored_at"`
}

// ToRecord converts a stored draw into the engine's input shape. The
// stored encoding joins the two columns with the canonical semicolon.
// Rows that fail to decode surface a record error for the caller's
// skip policy.
func (h HistoricalDraw) ToRecord() (draw.DrawRecord, error) {
	set, err := draw.ParseDrawSet(h.Numbers + ";" + h.Stars)
	if err != nil {
		return draw.DrawRecord{}, err
	}
	return draw.DrawRecord{Date: h.Date, Actual: &set}, nil
}

// ToRecord converts a stored prediction into the engine's input shape.
// Both the predicted pair and, when present, the actual pair are decoded;
// an undecodable pair is treated as absent rather than failing the record.
func (p Prediction) ToRecord() draw.DrawRecord {
	rec := draw.DrawRecord{Date: p.Date}
	if set, err := draw.ParseDrawSet(p.PredictedNumbers + ";" + p.PredictedStars); err == nil {
		rec.Predicted = &set
	}
	if p.ActualNumbers != nil && p.ActualStars != nil {
		if set, err := draw.ParseDrawSet(*p.ActualNumbers + ";" + *p.ActualStars); err == nil {
			rec.Actual = &set
		}
	}
	return rec
}
