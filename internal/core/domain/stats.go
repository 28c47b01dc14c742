package domain

// Допустимые периоды для дашборда
var StatsPeriods = []int{7, 30, 60}

const DefaultStatsDays = 30

type StatsTotals struct {
	Users              int64 `json:"users"`
	VerifiedUsers      int64 `json:"verifiedUsers"`
	Properties         int64 `json:"properties"`
	VerifiedProperties int64 `json:"verifiedProperties"`
	FeaturedProperties int64 `json:"featuredProperties"`
	Emails             int64 `json:"emails"`
}

type TimelinePoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type LabeledValue struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type QueryStats struct {
	Timeline       []TimelinePoint `json:"timeline"`
	ByPropertyType []LabeledValue  `json:"byPropertyType"`
}

// Stats - агрегаты для дашборда
type Stats struct {
	Totals  StatsTotals `json:"totals"`
	Queries QueryStats  `json:"queries"`
}
