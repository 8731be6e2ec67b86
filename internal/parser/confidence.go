package parser

import (
	"github.com/joseph-ayodele/receipt-parser/constants"
	"github.com/joseph-ayodele/receipt-parser/internal/entity"
)

// Presence heuristics, not calibrated probabilities: each field gets a fixed
// score when populated and 0.0 when not; items scale with count up to a cap.
const (
	amountConfidence   = 0.9
	dateConfidence     = 0.8
	nameConfidence     = 0.85
	totalConfidence    = 0.9
	itemsConfidenceCap = 0.7
	perItemConfidence  = 0.1
)

// scoreConfidence writes scores for exactly the five evaluated fields.
// Other record fields never get a key; absence means "not evaluated".
func scoreConfidence(rec *entity.Receipt) {
	if rec.ConfidenceScores == nil {
		rec.ConfidenceScores = make(map[string]float64, 5)
	}

	score := func(key string, present bool, value float64) {
		if present {
			rec.ConfidenceScores[key] = value
		} else {
			rec.ConfidenceScores[key] = 0.0
		}
	}
	score(constants.FieldAmount, rec.Amount != nil, amountConfidence)
	score(constants.FieldDate, rec.Date != nil, dateConfidence)
	score(constants.FieldRestaurantName, rec.RestaurantName != "", nameConfidence)
	score(constants.FieldTotal, rec.Total != nil, totalConfidence)

	items := float64(len(rec.Items)) * perItemConfidence
	if items > itemsConfidenceCap {
		items = itemsConfidenceCap
	}
	rec.ConfidenceScores[constants.FieldItems] = items
}
