package entity

import (
	"encoding/json"
	"time"
)

// ToJSONMap converts a Receipt into the wire shape callers serialize:
// money as strings with exactly two decimals, date as ISO "2006-01-02".
// This conversion lives at the caller boundary on purpose; the parser
// itself only ever produces the Receipt value.
func ToJSONMap(r *Receipt) map[string]any {
	m := map[string]any{}

	putMoney := func(key string, v interface{ StringFixed(int32) string }) {
		m[key] = v.StringFixed(2)
	}
	if r.Amount != nil {
		putMoney("amount", r.Amount)
	}
	if r.Subtotal != nil {
		putMoney("subtotal", r.Subtotal)
	}
	if r.Tax != nil {
		putMoney("tax", r.Tax)
	}
	if r.Tip != nil {
		putMoney("tip", r.Tip)
	}
	if r.Total != nil {
		putMoney("total", r.Total)
	}

	if r.Date != nil {
		m["date"] = r.Date.UTC().Format(time.DateOnly)
	}
	putStr := func(key, v string) {
		if v != "" {
			m[key] = v
		}
	}
	putStr("time", r.Time)
	putStr("restaurant_name", r.RestaurantName)
	putStr("restaurant_location_number", r.RestaurantLocationNumber)
	putStr("restaurant_address", r.RestaurantAddress)
	putStr("restaurant_phone", r.RestaurantPhone)
	putStr("restaurant_website", r.RestaurantWebsite)
	putStr("server_name", r.ServerName)
	putStr("customer_name", r.CustomerName)
	putStr("check_number", r.CheckNumber)
	putStr("table_number", r.TableNumber)

	if len(r.Items) > 0 {
		items := make([]map[string]any, 0, len(r.Items))
		for _, it := range r.Items {
			im := map[string]any{
				"name":  it.Name,
				"price": it.Price.StringFixed(2),
			}
			if len(it.Modifiers) > 0 {
				mods := make([]map[string]any, 0, len(it.Modifiers))
				for _, mod := range it.Modifiers {
					mods = append(mods, map[string]any{
						"name":  mod.Name,
						"price": mod.Price.StringFixed(2),
					})
				}
				im["modifiers"] = mods
			}
			items = append(items, im)
		}
		m["items"] = items
	}

	if len(r.ConfidenceScores) > 0 {
		m["confidence_scores"] = r.ConfidenceScores
	}
	return m
}

// ToJSON marshals the wire shape of a Receipt.
func ToJSON(r *Receipt) ([]byte, error) {
	return json.Marshal(ToJSONMap(r))
}
