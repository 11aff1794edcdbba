package aladhan

// Response is the top-level AlAdhan API envelope.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

// Data holds one day's timings plus date metadata.
type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
	Meta    Meta     `json:"meta"`
}

// Timings are HH:MM strings in the location's local time. The API may
// append a timezone suffix like " (BST)" which is stripped during parsing.
type Timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type DateInfo struct {
	Readable string    `json:"readable"`
	Hijri    HijriDate `json:"hijri"`
}

// HijriDate is the Hijri (Islamic) calendar date for the requested day.
type HijriDate struct {
	Date        string           `json:"date"` // "10-08-1447"
	Day         string           `json:"day"`
	Month       HijriMonth       `json:"month"`
	Year        string           `json:"year"`
	Designation HijriDesignation `json:"designation"`
}

type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
	Ar     string `json:"ar"`
}

type HijriDesignation struct {
	Abbreviated string `json:"abbreviated"` // "AH"
}

// Format returns the Hijri date as "DD MonthName YYYY AH".
func (h HijriDate) Format() string {
	if h.Day == "" || h.Month.En == "" || h.Year == "" {
		return ""
	}
	abbr := h.Designation.Abbreviated
	if abbr == "" {
		abbr = "AH"
	}
	return h.Day + " " + h.Month.En + " " + h.Year + " " + abbr
}

// Meta echoes back the parameters the API resolved the request with.
type Meta struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Method    MethodInfo `json:"method"`
}

type MethodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
