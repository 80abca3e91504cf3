package dto

type TimezoneInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Offset string `json:"offset"`
	Region string `json:"region"`
}

type ConvertRequest struct {
	SourceTimezone string  `json:"source_timezone" validate:"required,max=64"`
	TargetDatetime *string `json:"target_datetime" validate:"omitempty"`
}

// HasDatetime reports whether the caller supplied a reading to convert.
func (r *ConvertRequest) HasDatetime() bool {
	return r.TargetDatetime != nil && *r.TargetDatetime != ""
}

type ConversionResult struct {
	SourceTime     string `json:"source_time"`
	SourceDate     string `json:"source_date"`
	SourceTimezone string `json:"source_timezone"`
	SourceOffset   string `json:"source_offset"`
	ISTTime        string `json:"ist_time"`
	ISTDate        string `json:"ist_date"`
	ISTOffset      string `json:"ist_offset"`
}

type TargetTime struct {
	Time     string `json:"time"`
	Date     string `json:"date"`
	Offset   string `json:"offset"`
	Timezone string `json:"timezone"`
}

type ZoneTime struct {
	TimezoneID string `json:"timezone_id"`
	Name       string `json:"name"`
	Time       string `json:"time"`
	Date       string `json:"date"`
	Offset     string `json:"offset"`
}
